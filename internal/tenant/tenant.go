// Package tenant resolves the tenant scope of a request.
//
// Resolution order: an identifier already attached to the request
// context wins, then a valid X-Tenant-ID header, then the tenant_id
// token claim. Header values are honored only when the caller is a
// member of that tenant or an admin; an arbitrary header can not widen
// a caller's scope.
package tenant

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/auth"
)

// Header is the inbound request header carrying a tenant identifier.
const Header = "X-Tenant-ID"

// ErrUnresolved is returned when a tenant-scoped operation runs without
// any resolvable tenant identifier.
var ErrUnresolved = errors.New("tenant context not resolved")

// contextKey is a custom type for context keys to avoid collisions.
type contextKey struct{}

// WithTenant returns a copy of ctx with the tenant ID attached.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, contextKey{}, tenantID)
}

// FromContext extracts the resolved tenant ID from the context.
func FromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(contextKey{}).(string)
	return tenantID, ok && tenantID != ""
}

// Resolve determines the tenant scope for a request.
//
// A previously attached context value short-circuits. A header value
// must parse as a UUID and must match the caller's own tenant claim
// unless the caller is an admin (admins may select any tenant scope).
// Otherwise the tenant_id claim is used. Returns ErrUnresolved when
// nothing yields an identifier.
func Resolve(ctx context.Context, r *http.Request, claims *auth.Claims) (string, error) {
	if tenantID, ok := FromContext(ctx); ok {
		return tenantID, nil
	}

	if header := r.Header.Get(Header); header != "" {
		if id, err := uuid.Parse(header); err == nil {
			tenantID := id.String()
			if claims != nil && (claims.IsAdmin() || claims.TenantID == tenantID) {
				return tenantID, nil
			}
		}
	}

	if claims != nil && claims.TenantID != "" {
		return claims.TenantID, nil
	}

	return "", ErrUnresolved
}
