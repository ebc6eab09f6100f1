// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
	"github.com/shopspring/decimal"
)

// Store defines the persistence operations for all aggregates.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the handler layer.
//
// Point reads return (nil, nil) when the entity does not exist; absence
// is not an error. Writes that span multiple rows are committed
// atomically by the implementation.
type Store interface {
	// CreateTenant persists a new tenant. The ID field is populated if unset.
	CreateTenant(ctx context.Context, tenant *models.Tenant) error

	// GetTenant retrieves a tenant by ID.
	GetTenant(ctx context.Context, tenantID string) (*models.Tenant, error)

	// ListTenants retrieves all tenants across the whole deployment.
	// This is the cross-tenant administrative view.
	ListTenants(ctx context.Context) ([]*models.Tenant, error)

	// DeleteTenant removes a tenant. Deletion cascades to the tenant's
	// accounts and their transactions at the schema level.
	DeleteTenant(ctx context.Context, tenantID string) error

	// HasTenants reports whether any tenant exists (seed guard).
	HasTenants(ctx context.Context) (bool, error)

	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// GetUserByName retrieves a user by exact username match.
	GetUserByName(ctx context.Context, userName string) (*models.User, error)

	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccount retrieves an account by ID.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// ListAccountsByTenant retrieves all accounts owned by a tenant.
	ListAccountsByTenant(ctx context.Context, tenantID string) ([]*models.Account, error)

	// CreateTransaction inserts the transaction and applies balanceDelta
	// to the owning account's balance as one atomic commit. On failure
	// neither write is visible.
	CreateTransaction(ctx context.Context, txn *models.Transaction, balanceDelta decimal.Decimal) error

	// GetTransaction retrieves a transaction by ID.
	GetTransaction(ctx context.Context, txnID string) (*models.Transaction, error)

	// ListTransactionsByAccount retrieves an account's transactions
	// ordered by date descending, ties broken stably (newest insert first).
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]*models.Transaction, error)

	// Close releases any resources held by the store.
	Close() error
}
