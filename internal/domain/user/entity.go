package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can approve/reject leave and manage projects
	RoleEmployee Role = "employee" // Regular employee
)

// IsValid reports whether the role belongs to the closed set.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

type User struct {
	ID           string
	EmployeeID   string
	Email        string
	PasswordHash *string
	Role         Role

	OAuthProvider   *string
	OAuthProviderID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin checks if user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Actor is the identity/role pair the session provider attaches to every
// call. Services receive it explicitly; nothing reads it from global state.
type Actor struct {
	EmployeeID string
	Role       Role
}
