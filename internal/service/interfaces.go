package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/unifin/finapi/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error
}

// UserService manages user accounts on behalf of administrators.
type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	ListUsers(ctx context.Context, page models.PageParams) (models.Paginated[models.User], error)
	UpdateUser(ctx context.Context, id uuid.UUID, req models.UserUpdateRequest) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// DepartmentService manages organizational units.
type DepartmentService interface {
	CreateDepartment(ctx context.Context, req models.DepartmentCreateRequest) (models.Department, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (models.Department, error)
	ListDepartments(ctx context.Context, activeOnly bool, page models.PageParams) (models.Paginated[models.Department], error)
	UpdateDepartment(ctx context.Context, id uuid.UUID, req models.DepartmentUpdateRequest) (models.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
}

// BudgetService manages fiscal-year budget allocations.
type BudgetService interface {
	CreateBudget(ctx context.Context, req models.BudgetCreateRequest) (models.Budget, error)
	GetBudget(ctx context.Context, id uuid.UUID) (models.Budget, error)
	ListBudgets(ctx context.Context, departmentID uuid.NullUUID, page models.PageParams) (models.Paginated[models.Budget], error)
	UpdateBudget(ctx context.Context, id uuid.UUID, req models.BudgetUpdateRequest) (models.Budget, error)
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

// TransactionService posts financial transactions against budgets and keeps
// the budget's spent and remaining amounts consistent.
type TransactionService interface {
	CreateTransaction(ctx context.Context, req models.TransactionCreateRequest) (models.Transaction, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter, page models.PageParams) (models.Paginated[models.Transaction], error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, req models.TransactionUpdateRequest) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// AuditService records and serves the audit trail. Record is best-effort:
// a failed audit write never fails the operation it describes.
type AuditService interface {
	Record(ctx context.Context, action, resourceType, resourceID string, details map[string]any)
	GetAuditLog(ctx context.Context, id uuid.UUID) (models.AuditLog, error)
	ListAuditLogs(ctx context.Context, filter models.AuditFilter, page models.PageParams) (models.Paginated[models.AuditLog], error)
	DeleteAuditLog(ctx context.Context, id uuid.UUID) error
	Actions(ctx context.Context) ([]string, error)
	ResourceTypes(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (models.AuditStats, error)
}

// ReportService serves the read-only financial reports and CSV exports.
type ReportService interface {
	BudgetVsActual(ctx context.Context, fiscalYear string) ([]models.BudgetVsActualRow, error)
	DepartmentSpending(ctx context.Context, fiscalYear string) ([]models.DepartmentSpendingRow, error)
	MonthlySpendingTrend(ctx context.Context, months int) ([]models.MonthlySpendingRow, error)
	TransactionTypeTotals(ctx context.Context) ([]models.TransactionTypeTotalsRow, error)
	TransactionsCSV(ctx context.Context, filter models.TransactionFilter) ([]byte, error)
	BudgetsCSV(ctx context.Context, fiscalYear string) ([]byte, error)
}

// Notifier delivers budget utilization alerts to an external webhook.
// Delivery is fire-and-forget.
type Notifier interface {
	BudgetThresholdCrossed(ctx context.Context, budget models.Budget)
}
