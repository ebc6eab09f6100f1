package models

import "github.com/shopspring/decimal"

// Account is a tenant-owned ledger of transactions.
//
// Balance is maintained incrementally: every transaction creation
// applies its signed amount to the balance inside the same storage
// commit. It is NOT re-derived from transaction history (seed data sets
// it directly, with seed transactions acting as historical record only).
type Account struct {
	// ID is the unique identifier for the account (UUID format).
	ID string `json:"id"`

	// TenantID is the owning tenant.
	TenantID string `json:"tenantId"`

	// Name is the display name of the account.
	Name string `json:"name"`

	// Balance is the current balance in exact decimal.
	Balance decimal.Decimal `json:"balance"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"createdAt"`
}
