package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

// CreateAccount inserts a new account into the database.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.CreatedAt == 0 {
		account.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, tenant_id, name, balance, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		account.ID, account.TenantID, account.Name, account.Balance.String(), account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// GetAccount retrieves an account by ID. Returns (nil, nil) if not found.
func (s *SQLiteStore) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account := &models.Account{}
	var balance string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, tenant_id, name, balance, created_at FROM accounts WHERE id = ?",
		accountID,
	).Scan(&account.ID, &account.TenantID, &account.Name, &balance, &account.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	account.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account balance: %w", err)
	}

	return account, nil
}

// ListAccountsByTenant retrieves all accounts owned by a tenant.
func (s *SQLiteStore) ListAccountsByTenant(ctx context.Context, tenantID string) ([]*models.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, tenant_id, name, balance, created_at
		 FROM accounts WHERE tenant_id = ? ORDER BY created_at, id`,
		tenantID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account := &models.Account{}
		var balance string
		if err := rows.Scan(&account.ID, &account.TenantID, &account.Name, &balance, &account.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		account.Balance, err = decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("failed to parse account balance: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}
