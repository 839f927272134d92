// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and pagination.
package utils

import (
	"context"

	"github.com/google/uuid"

	"github.com/unifin/finapi/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user's identifier
// in the context. Used together with GetUserIDFromContext for type-safe
// retrieval.
var UserIDCtxKey = contextKey("userID")

// RoleCtxKey is the key used to store the authenticated user's role in the
// context. Populated by the auth middleware from the token's role claim.
var RoleCtxKey = contextKey("role")

// GetUserIDFromContext retrieves the authenticated user's identifier from
// the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found and has the correct uuid.UUID type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	return userID, ok
}

// GetRoleFromContext retrieves the authenticated user's role from the
// context, with the same ok-flag convention as GetUserIDFromContext.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}

// AuditMetaCtxKey is the key used to store request attribution (actor,
// client IP, user agent) consumed when audit entries are recorded.
var AuditMetaCtxKey = contextKey("auditMeta")

// WithAuditMeta returns a child context carrying the request attribution.
func WithAuditMeta(ctx context.Context, meta models.AuditMeta) context.Context {
	return context.WithValue(ctx, AuditMetaCtxKey, meta)
}

// GetAuditMetaFromContext retrieves the request attribution from the
// context, with the same ok-flag convention as GetUserIDFromContext.
func GetAuditMetaFromContext(ctx context.Context) (models.AuditMeta, bool) {
	meta, ok := ctx.Value(AuditMetaCtxKey).(models.AuditMeta)
	return meta, ok
}
