package http

import (
	"net/http"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
)

func writeCSV(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // nothing left to do if the response writer fails
	w.Write(data)
}

func (h *Handler) exportTransactionsCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := parseTransactionFilter(r)
	if err != nil {
		log.Err(err).Msg("invalid transaction filter")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.services.ReportService.TransactionsCSV(ctx, filter)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	writeCSV(w, "transactions.csv", data)
}

func (h *Handler) exportBudgetsCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	fiscalYear := r.URL.Query().Get("fiscal_year")
	if fiscalYear == "" {
		log.Warn().Msg("missing fiscal_year")
		utils.WriteError(w, "fiscal_year is required", http.StatusBadRequest)
		return
	}

	data, err := h.services.ReportService.BudgetsCSV(ctx, fiscalYear)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	writeCSV(w, "budgets.csv", data)
}
