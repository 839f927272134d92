package http

import (
	"net/http"
	"strconv"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
)

func (h *Handler) budgetVsActualReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fiscalYear := r.URL.Query().Get("fiscal_year")
	if fiscalYear == "" {
		log.Warn().Msg("missing fiscal_year")
		utils.WriteError(w, "fiscal_year is required", http.StatusBadRequest)
		return
	}

	rows, err := h.services.ReportService.BudgetVsActual(ctx, fiscalYear)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) departmentSpendingReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fiscalYear := r.URL.Query().Get("fiscal_year")
	if fiscalYear == "" {
		log.Warn().Msg("missing fiscal_year")
		utils.WriteError(w, "fiscal_year is required", http.StatusBadRequest)
		return
	}

	rows, err := h.services.ReportService.DepartmentSpending(ctx, fiscalYear)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) monthlyTrendReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var months int
	if raw := r.URL.Query().Get("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			log.Warn().Str("months", raw).Msg("invalid months parameter")
			utils.WriteError(w, "months must be a positive integer", http.StatusBadRequest)
			return
		}
		months = parsed
	}

	rows, err := h.services.ReportService.MonthlySpendingTrend(ctx, months)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}

func (h *Handler) transactionTypeReport(w http.ResponseWriter, r *http.Request) {
	rows, err := h.services.ReportService.TransactionTypeTotals(r.Context())
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, rows, http.StatusOK)
}
