package tenant

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/auth"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

func claimsFor(role models.Role, tenantID string) *auth.Claims {
	return &auth.Claims{Role: role, TenantID: tenantID}
}

func TestResolve(t *testing.T) {
	own := uuid.New().String()
	other := uuid.New().String()

	t.Run("context value short-circuits", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/accounts", nil)
		r.Header.Set(Header, other)

		ctx := WithTenant(context.Background(), own)
		got, err := Resolve(ctx, r, claimsFor(models.RoleUser, own))
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got != own {
			t.Errorf("Expected context value %s, got %s", own, got)
		}
	})

	t.Run("header matching own tenant is honored", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/accounts", nil)
		r.Header.Set(Header, own)

		got, err := Resolve(context.Background(), r, claimsFor(models.RoleUser, own))
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got != own {
			t.Errorf("Expected %s, got %s", own, got)
		}
	})

	t.Run("header for another tenant falls back to claim for non-admins", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/accounts", nil)
		r.Header.Set(Header, other)

		got, err := Resolve(context.Background(), r, claimsFor(models.RoleUser, own))
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got != own {
			t.Errorf("Header must not widen scope: expected %s, got %s", own, got)
		}
	})

	t.Run("admin may select another tenant via header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/accounts", nil)
		r.Header.Set(Header, other)

		got, err := Resolve(context.Background(), r, claimsFor(models.RoleAdmin, own))
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got != other {
			t.Errorf("Expected admin to switch to %s, got %s", other, got)
		}
	})

	t.Run("malformed header is ignored", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/accounts", nil)
		r.Header.Set(Header, "not-a-uuid")

		got, err := Resolve(context.Background(), r, claimsFor(models.RoleUser, own))
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if got != own {
			t.Errorf("Expected claim fallback %s, got %s", own, got)
		}
	})

	t.Run("nothing resolvable is an error", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/accounts", nil)

		_, err := Resolve(context.Background(), r, nil)
		if !errors.Is(err, ErrUnresolved) {
			t.Errorf("Expected ErrUnresolved, got %v", err)
		}
	})
}

func TestFromContextMissing(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("Expected FromContext to report absence on empty context")
	}
}
