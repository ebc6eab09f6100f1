package models

// Tenant represents an isolated customer organization.
// All accounts and users are partitioned by tenant ID; the ID is
// immutable once created.
type Tenant struct {
	// ID is the unique identifier for the tenant (UUID format).
	ID string `json:"id"`

	// Name is the display name of the tenant organization.
	Name string `json:"name"`

	// CreatedAt is the Unix timestamp when the tenant was created.
	CreatedAt int64 `json:"createdAt"`
}
