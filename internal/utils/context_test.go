package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/unifin/finapi/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	want := uuid.New()
	ctx := context.WithValue(context.Background(), UserIDCtxKey, want)

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != want {
		t.Errorf("expected userID=%s, got %s", want, userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	if _, ok := GetUserIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-a-uuid")

	if _, ok := GetUserIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetRoleFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), RoleCtxKey, models.RoleFinanceManager)

	role, ok := GetRoleFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if role != models.RoleFinanceManager {
		t.Errorf("expected finance_manager, got %s", role)
	}
}

func TestAuditMeta_RoundTrip(t *testing.T) {
	meta := models.AuditMeta{
		UserID:    uuid.NullUUID{UUID: uuid.New(), Valid: true},
		IPAddress: "192.0.2.10",
		UserAgent: "finapi-test/1.0",
	}

	ctx := WithAuditMeta(context.Background(), meta)

	got, ok := GetAuditMetaFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != meta {
		t.Errorf("expected %+v, got %+v", meta, got)
	}
}

func TestGetAuditMetaFromContext_Missing(t *testing.T) {
	if _, ok := GetAuditMetaFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}
