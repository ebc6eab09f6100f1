package models

// Role is the authorization role carried in a user record and in token
// claims. Roles are validated once at authentication time and passed
// around as this typed value, never re-parsed from strings per check.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents an application login belonging to exactly one tenant.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// UserName is the login name. Unique within a tenant.
	UserName string `json:"userName"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized in responses.
	PasswordHash string `json:"-"`

	// Role determines authorization (Admin or User).
	Role Role `json:"role"`

	// TenantID is the tenant this user belongs to.
	TenantID string `json:"tenantId"`

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64 `json:"createdAt"`
}
