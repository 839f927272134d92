package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/store"
	"github.com/unifin/finapi/models"
)

// budgetService is the concrete implementation of BudgetService.
type budgetService struct {
	budgetRepository     store.BudgetRepository
	departmentRepository store.DepartmentRepository
	auditService         AuditService
	logger               *logger.Logger
}

// NewBudgetService constructs a BudgetService wired to the given
// repositories.
func NewBudgetService(budgetRepository store.BudgetRepository, departmentRepository store.DepartmentRepository, auditService AuditService, logger *logger.Logger) BudgetService {
	return &budgetService{
		budgetRepository:     budgetRepository,
		departmentRepository: departmentRepository,
		auditService:         auditService,
		logger:               logger,
	}
}

// CreateBudget allocates a fiscal-year budget for a department. A new
// budget starts unspent with remaining equal to the total allocation.
//
// Returns [store.ErrDepartmentNotFound] for an unknown department and
// [store.ErrBudgetAlreadyExists] when the department already has a budget
// for that fiscal year.
func (s *budgetService) CreateBudget(ctx context.Context, req models.BudgetCreateRequest) (models.Budget, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		return models.Budget{}, err
	}

	if _, err := s.departmentRepository.GetDepartmentByID(ctx, req.DepartmentID); err != nil {
		return models.Budget{}, fmt.Errorf("finding department ended with error: %w", err)
	}

	now := time.Now().UTC()
	budget := models.Budget{
		ID:              uuid.New(),
		DepartmentID:    req.DepartmentID,
		FiscalYear:      req.FiscalYear,
		TotalAmount:     req.TotalAmount,
		SpentAmount:     decimal.Zero,
		RemainingAmount: req.TotalAmount,
		Description:     req.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.budgetRepository.CreateBudget(ctx, budget)
	if err != nil {
		log.Err(err).Str("fiscal_year", req.FiscalYear).Msg("budget creation ended with error")
		return models.Budget{}, fmt.Errorf("budget creation ended with error: %w", err)
	}

	s.auditService.Record(ctx, models.AuditActionCreate, models.AuditResourceBudget, created.ID.String(),
		map[string]any{"fiscal_year": created.FiscalYear, "total_amount": created.TotalAmount.String()})

	return created, nil
}

// GetBudget retrieves one budget.
func (s *budgetService) GetBudget(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	budget, err := s.budgetRepository.GetBudgetByID(ctx, id)
	if err != nil {
		return models.Budget{}, fmt.Errorf("finding budget ended with error: %w", err)
	}
	return budget, nil
}

// ListBudgets returns one page of budgets, optionally restricted to a
// department.
func (s *budgetService) ListBudgets(ctx context.Context, departmentID uuid.NullUUID, page models.PageParams) (models.Paginated[models.Budget], error) {
	budgets, total, err := s.budgetRepository.ListBudgets(ctx, departmentID, page)
	if err != nil {
		return models.Paginated[models.Budget]{}, fmt.Errorf("listing budgets ended with error: %w", err)
	}

	return models.Paginated[models.Budget]{
		Items:  budgets,
		Total:  total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

// UpdateBudget changes the total allocation or description of a budget.
// The remaining amount is recomputed against the already spent amount.
//
// Returns [ErrBudgetExhausted] when the new total is below what the budget
// has already spent.
func (s *budgetService) UpdateBudget(ctx context.Context, id uuid.UUID, req models.BudgetUpdateRequest) (models.Budget, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		return models.Budget{}, err
	}

	budget, err := s.budgetRepository.GetBudgetByID(ctx, id)
	if err != nil {
		return models.Budget{}, fmt.Errorf("finding budget ended with error: %w", err)
	}

	changes := map[string]any{}
	if req.TotalAmount != nil && !req.TotalAmount.Equal(budget.TotalAmount) {
		if req.TotalAmount.LessThan(budget.SpentAmount) {
			return models.Budget{}, ErrBudgetExhausted
		}
		changes["total_amount"] = req.TotalAmount.String()
		budget.TotalAmount = *req.TotalAmount
		budget.RemainingAmount = budget.TotalAmount.Sub(budget.SpentAmount)
	}
	if req.Description != nil {
		budget.Description = *req.Description
	}

	updated, err := s.budgetRepository.UpdateBudget(ctx, budget)
	if err != nil {
		log.Err(err).Str("budget_id", id.String()).Msg("budget update ended with error")
		return models.Budget{}, fmt.Errorf("budget update ended with error: %w", err)
	}

	if len(changes) > 0 {
		s.auditService.Record(ctx, models.AuditActionUpdate, models.AuditResourceBudget, id.String(), changes)
	}

	return updated, nil
}

// DeleteBudget removes a budget.
// Returns [store.ErrReferencedRows] when transactions are posted against it.
func (s *budgetService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.budgetRepository.DeleteBudget(ctx, id); err != nil {
		if !errors.Is(err, store.ErrReferencedRows) {
			log.Err(err).Str("budget_id", id.String()).Msg("budget deletion ended with error")
		}
		return fmt.Errorf("budget deletion ended with error: %w", err)
	}

	s.auditService.Record(ctx, models.AuditActionDelete, models.AuditResourceBudget, id.String(), nil)
	return nil
}
