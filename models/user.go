package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID uuid.UUID `json:"id"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt hash of the user's password.
	// It is never serialized and must never leave the persistence layer.
	HashedPassword string `json:"-"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// Role determines which operations the user is permitted to perform.
	Role Role `json:"role"`

	// DepartmentID links the user to a department. Users without a
	// department (e.g. central finance staff) carry an invalid NullUUID.
	DepartmentID uuid.NullUUID `json:"department_id"`

	// IsActive marks whether the account may authenticate.
	// Deactivated accounts keep their history but are rejected at login.
	IsActive bool `json:"is_active"`

	// LastLogin records the most recent successful authentication.
	LastLogin *time.Time `json:"last_login,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
