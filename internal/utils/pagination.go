package utils

import (
	"net/http"
	"strconv"

	"github.com/unifin/finapi/models"
)

// Pagination bounds applied to every list endpoint.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// ParsePageParams reads the "limit" and "offset" query parameters of a list
// request. Missing or malformed values fall back to the defaults; limit is
// capped at MaxPageLimit and offset is clamped at zero.
func ParsePageParams(r *http.Request) models.PageParams {
	params := models.PageParams{Limit: DefaultPageLimit}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = min(limit, MaxPageLimit)
		}
	}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			params.Offset = offset
		}
	}

	return params
}
