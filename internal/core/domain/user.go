package domain

import "time"

// Role is the closed set of access levels a user can hold.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleVendor Role = "vendor"
	RoleUser   Role = "user"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleVendor || r == RoleUser
}

// User is the principal record behind every authenticated request.
// The password hash never leaves the process in any response or log.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
