package http

import (
	"errors"
	"net/http"

	"github.com/unifin/finapi/internal/logger"
	"github.com/unifin/finapi/internal/service"
	"github.com/unifin/finapi/internal/store"
	"github.com/unifin/finapi/internal/utils"
	"github.com/unifin/finapi/models"
)

var errorStatusMap = map[error]int{
	models.ErrValidation:           http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrWrongTokenType:      http.StatusUnauthorized,
	service.ErrUserInactive:        http.StatusForbidden,
	service.ErrBudgetExhausted:     http.StatusUnprocessableEntity,

	store.ErrUserNotFound:            http.StatusNotFound,
	store.ErrDepartmentNotFound:      http.StatusNotFound,
	store.ErrBudgetNotFound:          http.StatusNotFound,
	store.ErrTransactionNotFound:     http.StatusNotFound,
	store.ErrAuditLogNotFound:        http.StatusNotFound,
	store.ErrUserAlreadyExists:       http.StatusConflict,
	store.ErrDepartmentAlreadyExists: http.StatusConflict,
	store.ErrBudgetAlreadyExists:     http.StatusConflict,
	store.ErrReferencedRows:          http.StatusConflict,
	store.ErrInsufficientFunds:       http.StatusUnprocessableEntity,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeMappedError resolves the HTTP status for a service or store error and
// writes the JSON error body. Internal errors are logged with the original
// cause but reported to the client as a generic 500 message.
func writeMappedError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	log.Err(err).Int("status", status).Send()

	if status == http.StatusInternalServerError {
		utils.WriteError(w, http.StatusText(status), status)
		return
	}
	utils.WriteError(w, err.Error(), status)
}
