package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unifin/finapi/models"
)

//go:generate mockgen -source=interfaces.go -destination=../service/mock_store_test.go -package=service

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context, page models.PageParams) ([]models.User, int64, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// DepartmentRepository persists and retrieves departments.
type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, department models.Department) (models.Department, error)
	GetDepartmentByID(ctx context.Context, id uuid.UUID) (models.Department, error)
	GetDepartmentByCode(ctx context.Context, code string) (models.Department, error)
	ListDepartments(ctx context.Context, activeOnly bool, page models.PageParams) ([]models.Department, int64, error)
	UpdateDepartment(ctx context.Context, department models.Department) (models.Department, error)
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
}

// BudgetRepository persists and retrieves fiscal-year budgets.
type BudgetRepository interface {
	CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error)
	GetBudgetByID(ctx context.Context, id uuid.UUID) (models.Budget, error)
	GetBudgetByDepartmentAndFiscalYear(ctx context.Context, departmentID uuid.UUID, fiscalYear string) (models.Budget, error)
	ListBudgets(ctx context.Context, departmentID uuid.NullUUID, page models.PageParams) ([]models.Budget, int64, error)
	UpdateBudget(ctx context.Context, budget models.Budget) (models.Budget, error)
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository persists transactions and keeps the owning budget's
// spent/remaining amounts in sync. The *WithCascade methods run the row
// mutation and the budget adjustment inside a single database transaction.
type TransactionRepository interface {
	CreateTransactionWithCascade(ctx context.Context, txn models.Transaction) (models.Transaction, error)
	GetTransactionByID(ctx context.Context, id uuid.UUID) (models.Transaction, error)
	GetTransactionByReferenceNumber(ctx context.Context, referenceNumber string) (models.Transaction, error)
	ListTransactions(ctx context.Context, filter models.TransactionFilter, page models.PageParams) ([]models.Transaction, int64, error)
	UpdateTransactionWithCascade(ctx context.Context, txn models.Transaction, spentDelta decimal.Decimal) (models.Transaction, error)
	DeleteTransactionWithCascade(ctx context.Context, txn models.Transaction) error
}

// AuditRepository persists and retrieves audit log entries.
type AuditRepository interface {
	InsertAuditLog(ctx context.Context, entry models.AuditLog) (models.AuditLog, error)
	GetAuditLogByID(ctx context.Context, id uuid.UUID) (models.AuditLog, error)
	ListAuditLogs(ctx context.Context, filter models.AuditFilter, page models.PageParams) ([]models.AuditLog, int64, error)
	DeleteAuditLog(ctx context.Context, id uuid.UUID) error
	DistinctActions(ctx context.Context) ([]string, error)
	DistinctResourceTypes(ctx context.Context) ([]string, error)
	AuditStats(ctx context.Context) (models.AuditStats, error)
}

// ReportRepository runs the read-only aggregation queries behind the report
// endpoints.
type ReportRepository interface {
	BudgetVsActual(ctx context.Context, fiscalYear string) ([]models.BudgetVsActualRow, error)
	DepartmentSpending(ctx context.Context, fiscalYear string) ([]models.DepartmentSpendingRow, error)
	MonthlySpendingTrend(ctx context.Context, months int) ([]models.MonthlySpendingRow, error)
	TransactionTypeTotals(ctx context.Context) ([]models.TransactionTypeTotalsRow, error)
}
