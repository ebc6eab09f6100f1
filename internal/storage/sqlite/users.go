package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

// CreateUser inserts a new user into the database.
// Fails if the username is already taken within the tenant.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt == 0 {
		user.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, tenant_id, user_name, password_hash, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.TenantID, user.UserName, user.PasswordHash, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID. Returns (nil, nil) if not found.
func (s *SQLiteStore) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.getUser(ctx, "id = ?", userID)
}

// GetUserByName retrieves a user by exact username match.
// Returns (nil, nil) if not found. This is the login lookup path.
func (s *SQLiteStore) GetUserByName(ctx context.Context, userName string) (*models.User, error) {
	return s.getUser(ctx, "user_name = ?", userName)
}

func (s *SQLiteStore) getUser(ctx context.Context, where string, arg any) (*models.User, error) {
	user := &models.User{}
	var role string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, tenant_id, user_name, password_hash, role, created_at FROM users WHERE "+where,
		arg,
	).Scan(&user.ID, &user.TenantID, &user.UserName, &user.PasswordHash, &role, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Role = models.Role(role)
	return user, nil
}
