package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrMissingToken       = errors.New("authorization token required")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// JWTManager handles JWT token generation and validation.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

// Claims represents the custom JWT claims for a user session.
// The username travels in the registered "sub" claim; role and tenant
// are custom claims. Claims are validated once here and carried through
// the request as this typed struct, never re-parsed per check.
type Claims struct {
	Role     models.Role `json:"role"`
	TenantID string      `json:"tenant_id"`
	jwt.RegisteredClaims
}

// UserName returns the login name embedded in the token.
func (c *Claims) UserName() string {
	return c.Subject
}

// IsAdmin reports whether the token carries the Admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// NewJWTManager creates a new JWT manager with the given secret and token duration.
// secretKey should be a strong random string (e.g., 32 bytes).
// tokenDuration is how long tokens remain valid.
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
}

// Generate creates a new JWT token for the given user, embedding the
// username, role and tenant id.
func (m *JWTManager) Generate(user *models.User) (string, error) {
	claims := &Claims{
		Role:     user.Role,
		TenantID: user.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UserName,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses and validates a JWT token, returning the claims if valid.
func (m *JWTManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			// Verify the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
