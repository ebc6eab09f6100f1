package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/auth"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

// Seed populates demo data on first startup. It is idempotent: if any
// tenant already exists it does nothing.
//
// The demo account's balance is set directly to 15000; the seeded
// transactions are a historical record only and are deliberately NOT
// folded into the balance. Runtime transaction creation, by contrast,
// does adjust the balance incrementally.
func Seed(ctx context.Context, store Store) error {
	seeded, err := store.HasTenants(ctx)
	if err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if seeded {
		slog.Debug("Seed skipped, tenants already exist")
		return nil
	}

	tenant := &models.Tenant{Name: "Enterprise Demo Tenant"}
	if err := store.CreateTenant(ctx, tenant); err != nil {
		return fmt.Errorf("failed to seed tenant: %w", err)
	}

	for _, u := range []struct {
		name     string
		password string
		role     models.Role
	}{
		{"admin", "admin123", models.RoleAdmin},
		{"user", "user123", models.RoleUser},
	} {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		user := &models.User{
			UserName:     u.name,
			PasswordHash: hash,
			Role:         u.role,
			TenantID:     tenant.ID,
		}
		if err := store.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.name, err)
		}
	}

	account := &models.Account{
		TenantID: tenant.ID,
		Name:     "Operating Account",
		Balance:  decimal.NewFromInt(15000),
	}
	if err := store.CreateAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to seed account: %w", err)
	}

	for _, t := range []struct {
		amount      int64
		typ         models.TransactionType
		description string
	}{
		{5000, models.TypeCredit, "Initial funding"},
		{1200, models.TypeDebit, "Cloud hosting"},
		{800, models.TypeDebit, "SaaS subscriptions"},
	} {
		txn := &models.Transaction{
			AccountID:   account.ID,
			Amount:      decimal.NewFromInt(t.amount),
			Type:        t.typ,
			Description: t.description,
		}
		// Zero delta: seed transactions never touch the balance.
		if err := store.CreateTransaction(ctx, txn, decimal.Zero); err != nil {
			return fmt.Errorf("failed to seed transaction %q: %w", t.description, err)
		}
	}

	slog.Info("Seeded demo data",
		"tenant_id", tenant.ID,
		"account_id", account.ID,
	)
	return nil
}
