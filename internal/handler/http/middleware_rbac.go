package http

import (
	"net/http"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

// requirePermission returns an HTTP middleware that allows the request
// through only when the authenticated role grants the given permission.
// It must be mounted after the auth middleware, which populates the role
// in the request context. Requests without a role (or with a role that
// does not hold the permission) are rejected with HTTP 403 Forbidden.
func (h *Handler) requirePermission(permission models.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok || !role.Can(permission) {
				log.Warn().
					Str("role", string(role)).
					Str("permission", string(permission)).
					Msg("permission denied")
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
