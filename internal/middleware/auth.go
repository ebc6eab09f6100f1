package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/auth"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/httpx"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/tenant"
)

// claimsKey is a custom type for context keys to avoid collisions.
type claimsKey struct{}

// GetClaims extracts the authenticated token claims from the context.
// Returns nil if the request is unauthenticated.
func GetClaims(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims
}

// RequireAuth validates the Bearer token, attaches the typed claims to
// the request context and resolves the tenant scope where possible.
// Requests without a valid token are rejected with a structured 401.
func RequireAuth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "Authentication required", "Bearer token is missing or invalid")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				httpx.WriteError(w, http.StatusUnauthorized, "Authentication required", "Bearer token is missing or invalid")
				return
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "Invalid or expired token", err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)

			// Tenant scope is resolved once per request, before any
			// route-specific authorization. Handlers that need it call
			// tenant.FromContext; absence there is their 401.
			if tenantID, err := tenant.Resolve(ctx, r, claims); err == nil {
				ctx = tenant.WithTenant(ctx, tenantID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose token does not carry the Admin
// role. Must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r.Context())
		if claims == nil || !claims.IsAdmin() {
			httpx.WriteError(w, http.StatusForbidden, "Forbidden", "Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
