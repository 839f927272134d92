package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded for mutations and authentication events.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
	AuditActionLogin  = "LOGIN"
)

// Audited resource types.
const (
	AuditResourceUser        = "USER"
	AuditResourceDepartment  = "DEPARTMENT"
	AuditResourceBudget      = "BUDGET"
	AuditResourceTransaction = "TRANSACTION"
)

// AuditLog records a single sensitive action for compliance review.
// Entries are written best-effort: a failed audit write never fails the
// operation it describes.
type AuditLog struct {
	ID uuid.UUID `json:"id"`

	// UserID identifies the actor. Invalid for unauthenticated events.
	UserID uuid.NullUUID `json:"user_id"`

	Action       string `json:"action"`
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id,omitempty"`

	// Details carries the action-specific change set, stored as JSON.
	Details map[string]any `json:"details,omitempty"`

	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// AuditMeta is the request attribution attached to recorded audit entries.
// The auth middleware stores it in the request context.
type AuditMeta struct {
	UserID    uuid.NullUUID
	IPAddress string
	UserAgent string
}

// AuditFilter narrows audit log listings. Zero-valued fields are ignored.
type AuditFilter struct {
	UserID       uuid.NullUUID
	Action       string
	ResourceType string
	From         time.Time
	To           time.Time
}

// AuditStats summarizes audit activity for the stats endpoint.
type AuditStats struct {
	Total      int64            `json:"total"`
	ByAction   map[string]int64 `json:"by_action"`
	ByResource map[string]int64 `json:"by_resource"`
}

// TableName returns the name of the database table
// associated with the AuditLog model.
func (a AuditLog) TableName() string {
	return "audit_logs"
}
