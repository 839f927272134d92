package http

import (
	"encoding/json"
	"net/http"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.UserService.ListUsers(ctx, utils.ParsePageParams(r))
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "userID")
	if err != nil {
		log.Err(err).Msg("invalid user id")
		utils.WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "userID")
	if err != nil {
		log.Err(err).Msg("invalid user id")
		utils.WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	actorID, _ := utils.GetUserIDFromContext(ctx)
	role, _ := utils.GetRoleFromContext(ctx)
	if !role.CanModifyUser(actorID.String(), id.String()) {
		log.Warn().Str("target", id.String()).Msg("user modification denied")
		utils.WriteError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	var req models.UserUpdateRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Role and activation changes are reserved for administrators even when
	// a user edits their own account.
	if role != models.RoleAdmin && (req.Role != nil || req.IsActive != nil) {
		log.Warn().Str("target", id.String()).Msg("role change denied")
		utils.WriteError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	user, err := h.services.UserService.UpdateUser(ctx, id, req)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "userID")
	if err != nil {
		log.Err(err).Msg("invalid user id")
		utils.WriteError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	// Deleting your own account is rejected to keep at least one usable
	// administrator session alive.
	if actorID, ok := utils.GetUserIDFromContext(ctx); ok && actorID == id {
		log.Warn().Msg("self-deletion rejected")
		utils.WriteError(w, "cannot delete own account", http.StatusConflict)
		return
	}

	if err = h.services.UserService.DeleteUser(ctx, id); err != nil {
		writeMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
