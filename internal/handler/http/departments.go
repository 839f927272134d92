package http

import (
	"encoding/json"
	"net/http"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

func (h *Handler) createDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DepartmentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	department, err := h.services.DepartmentService.CreateDepartment(ctx, req)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, department, http.StatusCreated)
}

func (h *Handler) listDepartments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activeOnly := r.URL.Query().Get("active") == "true"

	departments, err := h.services.DepartmentService.ListDepartments(ctx, activeOnly, utils.ParsePageParams(r))
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, departments, http.StatusOK)
}

func (h *Handler) getDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "departmentID")
	if err != nil {
		log.Err(err).Msg("invalid department id")
		utils.WriteError(w, "invalid department id", http.StatusBadRequest)
		return
	}

	department, err := h.services.DepartmentService.GetDepartment(ctx, id)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, department, http.StatusOK)
}

func (h *Handler) updateDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "departmentID")
	if err != nil {
		log.Err(err).Msg("invalid department id")
		utils.WriteError(w, "invalid department id", http.StatusBadRequest)
		return
	}

	var req models.DepartmentUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	department, err := h.services.DepartmentService.UpdateDepartment(ctx, id, req)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, department, http.StatusOK)
}

func (h *Handler) deleteDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "departmentID")
	if err != nil {
		log.Err(err).Msg("invalid department id")
		utils.WriteError(w, "invalid department id", http.StatusBadRequest)
		return
	}

	if err = h.services.DepartmentService.DeleteDepartment(ctx, id); err != nil {
		writeMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
