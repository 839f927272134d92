package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

// parseAuditFilter reads the audit list query parameters. Date filters accept
// RFC 3339 timestamps or plain "2006-01-02" dates.
func parseAuditFilter(r *http.Request) (models.AuditFilter, error) {
	var filter models.AuditFilter
	query := r.URL.Query()

	if raw := query.Get("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid user_id: %w", err)
		}
		filter.UserID = uuid.NullUUID{UUID: id, Valid: true}
	}
	filter.Action = query.Get("action")
	filter.ResourceType = query.Get("resource_type")

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

func (h *Handler) listAuditLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := parseAuditFilter(r)
	if err != nil {
		log.Err(err).Msg("invalid audit filter")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	logs, err := h.services.AuditService.ListAuditLogs(ctx, filter, utils.ParsePageParams(r))
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, logs, http.StatusOK)
}

func (h *Handler) getAuditLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "auditID")
	if err != nil {
		log.Err(err).Msg("invalid audit log id")
		utils.WriteError(w, "invalid audit log id", http.StatusBadRequest)
		return
	}

	entry, err := h.services.AuditService.GetAuditLog(ctx, id)
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) deleteAuditLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := uuidParam(r, "auditID")
	if err != nil {
		log.Err(err).Msg("invalid audit log id")
		utils.WriteError(w, "invalid audit log id", http.StatusBadRequest)
		return
	}

	if err = h.services.AuditService.DeleteAuditLog(ctx, id); err != nil {
		writeMappedError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) auditActions(w http.ResponseWriter, r *http.Request) {
	actions, err := h.services.AuditService.Actions(r.Context())
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, actions, http.StatusOK)
}

func (h *Handler) auditResourceTypes(w http.ResponseWriter, r *http.Request) {
	resourceTypes, err := h.services.AuditService.ResourceTypes(r.Context())
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, resourceTypes, http.StatusOK)
}

func (h *Handler) auditStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.AuditService.Stats(r.Context())
	if err != nil {
		writeMappedError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
