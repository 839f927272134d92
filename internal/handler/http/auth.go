package http

import (
	"encoding/json"
	"net/http"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	log.Debug().Str("id", registeredUser.ID.String()).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, pair, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	log.Debug().Str("id", user.ID.String()).Msg("user successfully logged in")

	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeMappedError(w, r, err)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, req); err != nil {
		writeMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
