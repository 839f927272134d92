package http

import (
	"context"

	"github.com/google/uuid"

	"github.com/unifin/finapi/models"
)

// Func-field mocks for the service layer. Each method field can be
// overridden per test case; calling an unset method panics, which makes
// unexpected service calls fail loudly.

type mockAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error)
	refreshFn        func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	parseTokenFn     func(ctx context.Context, tokenString string) (models.Token, error)
	changePasswordFn func(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, models.TokenPair, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return m.refreshFn(ctx, refreshToken)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID uuid.UUID, req models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, userID, req)
}

type mockUserService struct {
	getUserFn    func(ctx context.Context, id uuid.UUID) (models.User, error)
	listUsersFn  func(ctx context.Context, page models.PageParams) (models.Paginated[models.User], error)
	updateUserFn func(ctx context.Context, id uuid.UUID, req models.UserUpdateRequest) (models.User, error)
	deleteUserFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context, page models.PageParams) (models.Paginated[models.User], error) {
	return m.listUsersFn(ctx, page)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id uuid.UUID, req models.UserUpdateRequest) (models.User, error) {
	return m.updateUserFn(ctx, id, req)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.deleteUserFn(ctx, id)
}

type mockDepartmentService struct {
	createFn func(ctx context.Context, req models.DepartmentCreateRequest) (models.Department, error)
	getFn    func(ctx context.Context, id uuid.UUID) (models.Department, error)
	listFn   func(ctx context.Context, activeOnly bool, page models.PageParams) (models.Paginated[models.Department], error)
	updateFn func(ctx context.Context, id uuid.UUID, req models.DepartmentUpdateRequest) (models.Department, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockDepartmentService) CreateDepartment(ctx context.Context, req models.DepartmentCreateRequest) (models.Department, error) {
	return m.createFn(ctx, req)
}

func (m *mockDepartmentService) GetDepartment(ctx context.Context, id uuid.UUID) (models.Department, error) {
	return m.getFn(ctx, id)
}

func (m *mockDepartmentService) ListDepartments(ctx context.Context, activeOnly bool, page models.PageParams) (models.Paginated[models.Department], error) {
	return m.listFn(ctx, activeOnly, page)
}

func (m *mockDepartmentService) UpdateDepartment(ctx context.Context, id uuid.UUID, req models.DepartmentUpdateRequest) (models.Department, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockDepartmentService) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockBudgetService struct {
	createFn func(ctx context.Context, req models.BudgetCreateRequest) (models.Budget, error)
	getFn    func(ctx context.Context, id uuid.UUID) (models.Budget, error)
	listFn   func(ctx context.Context, departmentID uuid.NullUUID, page models.PageParams) (models.Paginated[models.Budget], error)
	updateFn func(ctx context.Context, id uuid.UUID, req models.BudgetUpdateRequest) (models.Budget, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockBudgetService) CreateBudget(ctx context.Context, req models.BudgetCreateRequest) (models.Budget, error) {
	return m.createFn(ctx, req)
}

func (m *mockBudgetService) GetBudget(ctx context.Context, id uuid.UUID) (models.Budget, error) {
	return m.getFn(ctx, id)
}

func (m *mockBudgetService) ListBudgets(ctx context.Context, departmentID uuid.NullUUID, page models.PageParams) (models.Paginated[models.Budget], error) {
	return m.listFn(ctx, departmentID, page)
}

func (m *mockBudgetService) UpdateBudget(ctx context.Context, id uuid.UUID, req models.BudgetUpdateRequest) (models.Budget, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockBudgetService) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockTransactionService struct {
	createFn func(ctx context.Context, req models.TransactionCreateRequest) (models.Transaction, error)
	getFn    func(ctx context.Context, id uuid.UUID) (models.Transaction, error)
	listFn   func(ctx context.Context, filter models.TransactionFilter, page models.PageParams) (models.Paginated[models.Transaction], error)
	updateFn func(ctx context.Context, id uuid.UUID, req models.TransactionUpdateRequest) (models.Transaction, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, req models.TransactionCreateRequest) (models.Transaction, error) {
	return m.createFn(ctx, req)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (models.Transaction, error) {
	return m.getFn(ctx, id)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, filter models.TransactionFilter, page models.PageParams) (models.Paginated[models.Transaction], error) {
	return m.listFn(ctx, filter, page)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, req models.TransactionUpdateRequest) (models.Transaction, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

type mockAuditService struct {
	recordFn        func(ctx context.Context, action, resourceType, resourceID string, details map[string]any)
	getFn           func(ctx context.Context, id uuid.UUID) (models.AuditLog, error)
	listFn          func(ctx context.Context, filter models.AuditFilter, page models.PageParams) (models.Paginated[models.AuditLog], error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	actionsFn       func(ctx context.Context) ([]string, error)
	resourceTypesFn func(ctx context.Context) ([]string, error)
	statsFn         func(ctx context.Context) (models.AuditStats, error)
}

func (m *mockAuditService) Record(ctx context.Context, action, resourceType, resourceID string, details map[string]any) {
	if m.recordFn != nil {
		m.recordFn(ctx, action, resourceType, resourceID, details)
	}
}

func (m *mockAuditService) GetAuditLog(ctx context.Context, id uuid.UUID) (models.AuditLog, error) {
	return m.getFn(ctx, id)
}

func (m *mockAuditService) ListAuditLogs(ctx context.Context, filter models.AuditFilter, page models.PageParams) (models.Paginated[models.AuditLog], error) {
	return m.listFn(ctx, filter, page)
}

func (m *mockAuditService) DeleteAuditLog(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

func (m *mockAuditService) Actions(ctx context.Context) ([]string, error) {
	return m.actionsFn(ctx)
}

func (m *mockAuditService) ResourceTypes(ctx context.Context) ([]string, error) {
	return m.resourceTypesFn(ctx)
}

func (m *mockAuditService) Stats(ctx context.Context) (models.AuditStats, error) {
	return m.statsFn(ctx)
}

type mockReportService struct {
	budgetVsActualFn     func(ctx context.Context, fiscalYear string) ([]models.BudgetVsActualRow, error)
	departmentSpendingFn func(ctx context.Context, fiscalYear string) ([]models.DepartmentSpendingRow, error)
	monthlyTrendFn       func(ctx context.Context, months int) ([]models.MonthlySpendingRow, error)
	typeTotalsFn         func(ctx context.Context) ([]models.TransactionTypeTotalsRow, error)
	transactionsCSVFn    func(ctx context.Context, filter models.TransactionFilter) ([]byte, error)
	budgetsCSVFn         func(ctx context.Context, fiscalYear string) ([]byte, error)
}

func (m *mockReportService) BudgetVsActual(ctx context.Context, fiscalYear string) ([]models.BudgetVsActualRow, error) {
	return m.budgetVsActualFn(ctx, fiscalYear)
}

func (m *mockReportService) DepartmentSpending(ctx context.Context, fiscalYear string) ([]models.DepartmentSpendingRow, error) {
	return m.departmentSpendingFn(ctx, fiscalYear)
}

func (m *mockReportService) MonthlySpendingTrend(ctx context.Context, months int) ([]models.MonthlySpendingRow, error) {
	return m.monthlyTrendFn(ctx, months)
}

func (m *mockReportService) TransactionTypeTotals(ctx context.Context) ([]models.TransactionTypeTotalsRow, error) {
	return m.typeTotalsFn(ctx)
}

func (m *mockReportService) TransactionsCSV(ctx context.Context, filter models.TransactionFilter) ([]byte, error) {
	return m.transactionsCSVFn(ctx, filter)
}

func (m *mockReportService) BudgetsCSV(ctx context.Context, fiscalYear string) ([]byte, error) {
	return m.budgetsCSVFn(ctx, fiscalYear)
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}
