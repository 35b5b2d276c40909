package model

import (
	"time"
)

// Roles a staff account can carry. Finer-grained authorization is the
// concern of the individual dashboard screens; the core only checks that a
// valid session is present.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User represents a staff account that can log in to the panel.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Username is unique identifier for login
	Username string `gorm:"uniqueIndex" json:"username"`
	// PasswordHash stores a bcrypt hash of the user's password; it never
	// leaves the storage layer
	PasswordHash string `json:"-"`
	// Role is the account's role label, e.g. "admin" or "staff"
	Role string `gorm:"default:staff" json:"role"`
	// DisplayName is optional, for UI friendliness
	DisplayName string `json:"display_name"`
	// Disabled allows soft-disable of a user without deletion
	Disabled bool `json:"disabled"`
}

// UsersStore abstracts CRUD and authentication helpers for staff accounts.
type UsersStore interface {
	// Count returns the number of users present in the store
	Count() (int64, error)
	// List returns all users (without password hashes)
	List() ([]User, error)
	// Get returns a user by username
	Get(username string) (*User, error)
	// Create creates a user; the implementation must hash the password
	Create(username, password, role, displayName string) (*User, error)
	// Update updates role/display name and optionally password
	Update(username string, role, displayName, newPassword *string, disabled *bool) (*User, error)
	// Delete deletes a user by username
	Delete(username string) error
	// Authenticate checks a username/password combo and returns the user.
	// On failure it returns MissingCredentialsError or
	// InvalidCredentialsError; any other error means the store itself
	// failed.
	Authenticate(username, password string) (*User, error)
}
