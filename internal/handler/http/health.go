package http

import (
	"net/http"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
)

// healthResponse is the body of GET /api/health.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resp := healthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK

	if err := h.pinger.Ping(ctx); err != nil {
		log.Err(err).Msg("database ping failed")
		resp.Status = "degraded"
		resp.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, resp, status)
}
