package models

import (
	"time"

	"github.com/google/uuid"
)

// Department is a basic organizational unit of the university. Departments
// own fiscal-year budgets and are the anchor for department-scoped access
// control.
type Department struct {
	ID uuid.UUID `json:"id"`

	// Name is the unique human-readable department name.
	Name string `json:"name"`

	// Code is the unique short identifier used in accounting documents
	// (e.g. "CS", "MATH-01").
	Code string `json:"code"`

	Description string `json:"description,omitempty"`

	// HeadUserID references the department head, when one is assigned.
	HeadUserID uuid.NullUUID `json:"head_user_id"`

	// IsActive marks whether the department participates in the current
	// financial workflow. Inactive departments keep their history.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Department model.
func (d Department) TableName() string {
	return "departments"
}
