package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/store"
	"github.com/unifin/finapi/models"
)

func newTestBudgetSvc(t *testing.T, ctrl *gomock.Controller) (BudgetService, *MockBudgetRepository, *MockDepartmentRepository) {
	t.Helper()
	mockBudgets := NewMockBudgetRepository(ctrl)
	mockDepartments := NewMockDepartmentRepository(ctrl)
	mockAudit := NewMockAuditRepository(ctrl)
	mockAudit.EXPECT().InsertAuditLog(gomock.Any(), gomock.Any()).Return(models.AuditLog{}, nil).AnyTimes()

	auditSvc := NewAuditService(mockAudit, logger.Nop())
	svc := NewBudgetService(mockBudgets, mockDepartments, auditSvc, logger.Nop())

	return svc, mockBudgets, mockDepartments
}

func TestBudgetService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBudgets, mockDepartments := newTestBudgetSvc(t, ctrl)
	ctx := context.Background()

	req := models.BudgetCreateRequest{
		DepartmentID: uuid.New(),
		FiscalYear:   "2026-2027",
		TotalAmount:  decimal.NewFromInt(250_000),
	}

	mockDepartments.EXPECT().GetDepartmentByID(ctx, req.DepartmentID).Return(models.Department{ID: req.DepartmentID}, nil)
	mockBudgets.EXPECT().CreateBudget(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Budget) (models.Budget, error) {
			assert.True(t, b.SpentAmount.IsZero(), "a fresh budget starts unspent")
			assert.True(t, b.RemainingAmount.Equal(req.TotalAmount))
			return b, nil
		},
	)

	created, err := svc.CreateBudget(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, req.FiscalYear, created.FiscalYear)
}

func TestBudgetService_Create_BadFiscalYear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestBudgetSvc(t, ctrl)

	req := models.BudgetCreateRequest{
		DepartmentID: uuid.New(),
		FiscalYear:   "FY26",
		TotalAmount:  decimal.NewFromInt(250_000),
	}

	_, err := svc.CreateBudget(context.Background(), req)
	require.ErrorIs(t, err, models.ErrValidation)
}

func TestBudgetService_Create_UnknownDepartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockDepartments := newTestBudgetSvc(t, ctrl)

	req := models.BudgetCreateRequest{
		DepartmentID: uuid.New(),
		FiscalYear:   "2026-2027",
		TotalAmount:  decimal.NewFromInt(250_000),
	}

	mockDepartments.EXPECT().GetDepartmentByID(gomock.Any(), req.DepartmentID).
		Return(models.Department{}, store.ErrDepartmentNotFound)

	_, err := svc.CreateBudget(context.Background(), req)
	require.ErrorIs(t, err, store.ErrDepartmentNotFound)
}

func TestBudgetService_Update_RecomputesRemaining(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBudgets, _ := newTestBudgetSvc(t, ctrl)
	ctx := context.Background()

	existing := models.Budget{
		ID:              uuid.New(),
		DepartmentID:    uuid.New(),
		FiscalYear:      "2026-2027",
		TotalAmount:     decimal.NewFromInt(100_000),
		SpentAmount:     decimal.NewFromInt(40_000),
		RemainingAmount: decimal.NewFromInt(60_000),
	}
	newTotal := decimal.NewFromInt(150_000)

	mockBudgets.EXPECT().GetBudgetByID(ctx, existing.ID).Return(existing, nil)
	mockBudgets.EXPECT().UpdateBudget(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Budget) (models.Budget, error) {
			assert.True(t, b.TotalAmount.Equal(newTotal))
			assert.True(t, b.RemainingAmount.Equal(decimal.NewFromInt(110_000)))
			return b, nil
		},
	)

	_, err := svc.UpdateBudget(ctx, existing.ID, models.BudgetUpdateRequest{TotalAmount: &newTotal})
	require.NoError(t, err)
}

func TestBudgetService_Update_TotalBelowSpent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBudgets, _ := newTestBudgetSvc(t, ctrl)

	existing := models.Budget{
		ID:          uuid.New(),
		TotalAmount: decimal.NewFromInt(100_000),
		SpentAmount: decimal.NewFromInt(40_000),
	}
	newTotal := decimal.NewFromInt(30_000)

	mockBudgets.EXPECT().GetBudgetByID(gomock.Any(), existing.ID).Return(existing, nil)

	_, err := svc.UpdateBudget(context.Background(), existing.ID, models.BudgetUpdateRequest{TotalAmount: &newTotal})
	require.ErrorIs(t, err, ErrBudgetExhausted)
}

func TestBudgetService_Delete_Referenced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBudgets, _ := newTestBudgetSvc(t, ctrl)

	id := uuid.New()
	mockBudgets.EXPECT().DeleteBudget(gomock.Any(), id).Return(store.ErrReferencedRows)

	err := svc.DeleteBudget(context.Background(), id)
	require.ErrorIs(t, err, store.ErrReferencedRows)
}
