package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/service"
)

// Pinger reports backend connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	pinger   Pinger

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pinger:   pinger,
		logger:   logger,
	}
}

// uuidParam parses the named chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
