package service

import (
	"github.com/unifin/finapi/internal/config"
	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/store"
)

// Services bundles every service behind a single dependency for the HTTP
// transport.
type Services struct {
	AuthService        AuthService
	UserService        UserService
	DepartmentService  DepartmentService
	BudgetService      BudgetService
	TransactionService TransactionService
	AuditService       AuditService
	ReportService      ReportService
}

// NewServices wires the service layer on top of the repositories.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	auditService := NewAuditService(storages.AuditRepository, logger)
	notifier := NewWebhookNotifier(cfg.Notifier, logger)

	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, auditService, cfg.Security, logger),
		UserService:        NewUserService(storages.UserRepository, auditService, logger),
		DepartmentService:  NewDepartmentService(storages.DepartmentRepository, auditService, logger),
		BudgetService:      NewBudgetService(storages.BudgetRepository, storages.DepartmentRepository, auditService, logger),
		TransactionService: NewTransactionService(storages.TransactionRepository, storages.BudgetRepository, auditService, notifier, logger),
		AuditService:       auditService,
		ReportService:      NewReportService(storages.ReportRepository, storages.TransactionRepository, logger),
	}
}
