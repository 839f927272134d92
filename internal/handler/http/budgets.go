package http

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

func (h *Handler) createBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.BudgetCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	budget, err := h.services.BudgetService.CreateBudget(ctx, req)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, budget, http.StatusCreated)
}

func (h *Handler) listBudgets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var departmentID uuid.NullUUID
	if raw := r.URL.Query().Get("department_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			log.Err(err).Msg("invalid department id filter")
			utils.WriteError(w, "invalid department_id", http.StatusBadRequest)
			return
		}
		departmentID = uuid.NullUUID{UUID: id, Valid: true}
	}

	budgets, err := h.services.BudgetService.ListBudgets(ctx, departmentID, utils.ParsePageParams(r))
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, budgets, http.StatusOK)
}

func (h *Handler) getBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "budgetID")
	if err != nil {
		log.Err(err).Msg("invalid budget id")
		utils.WriteError(w, "invalid budget id", http.StatusBadRequest)
		return
	}

	budget, err := h.services.BudgetService.GetBudget(ctx, id)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, budget, http.StatusOK)
}

func (h *Handler) updateBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "budgetID")
	if err != nil {
		log.Err(err).Msg("invalid budget id")
		utils.WriteError(w, "invalid budget id", http.StatusBadRequest)
		return
	}

	var req models.BudgetUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	budget, err := h.services.BudgetService.UpdateBudget(ctx, id, req)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, budget, http.StatusOK)
}

func (h *Handler) deleteBudget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "budgetID")
	if err != nil {
		log.Err(err).Msg("invalid budget id")
		utils.WriteError(w, "invalid budget id", http.StatusBadRequest)
		return
	}

	if err = h.services.BudgetService.DeleteBudget(ctx, id); err != nil {
		writeMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
