package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/unifin/finapi/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/token", h.login)
		r.Post("/api/auth/refresh", h.refresh)
	})

	// routes requiring a valid access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Post("/api/auth/change-password", h.changePassword)

		r.Route("/api/users", func(r chi.Router) {
			r.With(h.requirePermission(models.PermReadUser)).Get("/", h.listUsers)
			r.With(h.requirePermission(models.PermReadUser)).Get("/{userID}", h.getUser)
			r.Put("/{userID}", h.updateUser)
			r.With(h.requirePermission(models.PermDeleteUser)).Delete("/{userID}", h.deleteUser)
		})

		r.Route("/api/departments", func(r chi.Router) {
			r.With(h.requirePermission(models.PermCreateDepartment)).Post("/", h.createDepartment)
			r.With(h.requirePermission(models.PermReadDepartment)).Get("/", h.listDepartments)
			r.With(h.requirePermission(models.PermReadDepartment)).Get("/{departmentID}", h.getDepartment)
			r.With(h.requirePermission(models.PermUpdateDepartment)).Put("/{departmentID}", h.updateDepartment)
			r.With(h.requirePermission(models.PermDeleteDepartment)).Delete("/{departmentID}", h.deleteDepartment)
		})

		r.Route("/api/budgets", func(r chi.Router) {
			r.With(h.requirePermission(models.PermCreateBudget)).Post("/", h.createBudget)
			r.With(h.requirePermission(models.PermReadBudget)).Get("/", h.listBudgets)
			r.With(h.requirePermission(models.PermReadBudget)).Get("/{budgetID}", h.getBudget)
			r.With(h.requirePermission(models.PermUpdateBudget)).Put("/{budgetID}", h.updateBudget)
			r.With(h.requirePermission(models.PermDeleteBudget)).Delete("/{budgetID}", h.deleteBudget)
		})

		r.Route("/api/transactions", func(r chi.Router) {
			r.With(h.requirePermission(models.PermCreateTransaction)).Post("/", h.createTransaction)
			r.With(h.requirePermission(models.PermReadTransaction)).Get("/", h.listTransactions)
			r.With(h.requirePermission(models.PermReadTransaction)).Get("/{transactionID}", h.getTransaction)
			r.With(h.requirePermission(models.PermUpdateTransaction)).Put("/{transactionID}", h.updateTransaction)
			r.With(h.requirePermission(models.PermDeleteTransaction)).Delete("/{transactionID}", h.deleteTransaction)
		})

		r.Route("/api/audit", func(r chi.Router) {
			r.With(h.requirePermission(models.PermReadAudit)).Get("/", h.listAuditLogs)
			r.With(h.requirePermission(models.PermReadAudit)).Get("/stats", h.auditStats)
			r.With(h.requirePermission(models.PermReadAudit)).Get("/actions", h.auditActions)
			r.With(h.requirePermission(models.PermReadAudit)).Get("/resource-types", h.auditResourceTypes)
			r.With(h.requirePermission(models.PermReadAudit)).Get("/{auditID}", h.getAuditLog)
			r.With(h.requirePermission(models.PermManageAudit)).Delete("/{auditID}", h.deleteAuditLog)
		})

		r.Route("/api/reports", func(r chi.Router) {
			r.Use(h.requirePermission(models.PermReadReport))

			r.Get("/budget-vs-actual", h.budgetVsActualReport)
			r.Get("/department-spending", h.departmentSpendingReport)
			r.Get("/monthly-trend", h.monthlyTrendReport)
			r.Get("/transaction-types", h.transactionTypeReport)
		})

		r.Route("/api/exports", func(r chi.Router) {
			r.Use(h.requirePermission(models.PermReadReport))

			r.Get("/transactions.csv", h.exportTransactionsCSV)
			r.Get("/budgets.csv", h.exportBudgetsCSV)
		})
	})

	return router
}
