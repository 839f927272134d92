package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

// parseTransactionFilter reads the transaction list query parameters.
// Date filters accept RFC 3339 timestamps or plain "2006-01-02" dates.
func parseTransactionFilter(r *http.Request) (models.TransactionFilter, error) {
	var filter models.TransactionFilter
	query := r.URL.Query()

	if raw := query.Get("budget_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid budget_id: %w", err)
		}
		filter.BudgetID = uuid.NullUUID{UUID: id, Valid: true}
	}
	if raw := query.Get("department_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid department_id: %w", err)
		}
		filter.DepartmentID = uuid.NullUUID{UUID: id, Valid: true}
	}
	if raw := query.Get("type"); raw != "" {
		txnType := models.TransactionType(raw)
		if !txnType.Valid() {
			return filter, fmt.Errorf("unknown transaction type %q", raw)
		}
		filter.Type = txnType
	}

	var err error
	if raw := query.Get("from"); raw != "" {
		if filter.From, err = parseDateParam(raw); err != nil {
			return filter, fmt.Errorf("invalid from date: %w", err)
		}
	}
	if raw := query.Get("to"); raw != "" {
		if filter.To, err = parseDateParam(raw); err != nil {
			return filter, fmt.Errorf("invalid to date: %w", err)
		}
	}

	return filter, nil
}

func parseDateParam(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TransactionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	txn, err := h.services.TransactionService.CreateTransaction(ctx, req)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, txn, http.StatusCreated)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := parseTransactionFilter(r)
	if err != nil {
		log.Err(err).Msg("invalid transaction filter")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	transactions, err := h.services.TransactionService.ListTransactions(ctx, filter, utils.ParsePageParams(r))
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "transactionID")
	if err != nil {
		log.Err(err).Msg("invalid transaction id")
		utils.WriteError(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	txn, err := h.services.TransactionService.GetTransaction(ctx, id)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, txn, http.StatusOK)
}

func (h *Handler) updateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "transactionID")
	if err != nil {
		log.Err(err).Msg("invalid transaction id")
		utils.WriteError(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	var req models.TransactionUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	txn, err := h.services.TransactionService.UpdateTransaction(ctx, id, req)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, txn, http.StatusOK)
}

func (h *Handler) deleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "transactionID")
	if err != nil {
		log.Err(err).Msg("invalid transaction id")
		utils.WriteError(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	if err = h.services.TransactionService.DeleteTransaction(ctx, id); err != nil {
		writeMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
