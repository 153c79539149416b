// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/gridiron/internal/domain/ownership"
)

// OwnershipDependencies defines the interface for ownership table lookups.
type OwnershipDependencies interface {
	Ownership(ctx context.Context, season, query string, minTotal int) ([]ownership.Entry, error)
}

// OwnershipHandler handles ownership table requests.
type OwnershipHandler struct {
	deps OwnershipDependencies
}

// NewOwnershipHandler creates a new ownership handler.
func NewOwnershipHandler(deps OwnershipDependencies) *OwnershipHandler {
	return &OwnershipHandler{deps: deps}
}

// HandleGetOwnership handles GET /ownership?season=YYYY&q=name&min=N requests.
// season defaults to the newest one; min at zero falls back to the configured
// default.
func (h *OwnershipHandler) HandleGetOwnership(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q := r.URL.Query()
	minTotal := 0
	if raw := q.Get("min"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		minTotal = n
	}

	entries, err := h.deps.Ownership(r.Context(), q.Get("season"), q.Get("q"), minTotal)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
