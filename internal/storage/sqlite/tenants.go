package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

// CreateTenant inserts a new tenant into the database.
func (s *SQLiteStore) CreateTenant(ctx context.Context, tenant *models.Tenant) error {
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}
	if tenant.CreatedAt == 0 {
		tenant.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tenants (id, name, created_at) VALUES (?, ?, ?)",
		tenant.ID, tenant.Name, tenant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tenant: %w", err)
	}

	return nil
}

// GetTenant retrieves a tenant by ID. Returns (nil, nil) if not found.
func (s *SQLiteStore) GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM tenants WHERE id = ?",
		tenantID,
	).Scan(&tenant.ID, &tenant.Name, &tenant.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return tenant, nil
}

// ListTenants retrieves all tenants, ordered by creation time.
func (s *SQLiteStore) ListTenants(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, created_at FROM tenants ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		tenant := &models.Tenant{}
		if err := rows.Scan(&tenant.ID, &tenant.Name, &tenant.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, tenant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tenants: %w", err)
	}

	return tenants, nil
}

// DeleteTenant removes a tenant. Accounts and transactions cascade at
// the schema level.
func (s *SQLiteStore) DeleteTenant(ctx context.Context, tenantID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tenants WHERE id = ?", tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete tenant: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("tenant not found: %s", tenantID)
	}

	return nil
}

// HasTenants reports whether any tenant row exists. Used as the
// idempotent seeding guard.
func (s *SQLiteStore) HasTenants(ctx context.Context) (bool, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM tenants LIMIT 1").Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check for tenants: %w", err)
	}
	return true, nil
}
