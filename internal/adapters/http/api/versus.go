// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/okian/gridiron/internal/domain/headtohead"
)

// VersusDependencies defines the interface for head-to-head lookups.
type VersusDependencies interface {
	Versus(ctx context.Context, manager string) (headtohead.Result, error)
}

// VersusHandler handles head-to-head requests.
type VersusHandler struct {
	deps VersusDependencies
}

// NewVersusHandler creates a new versus handler.
func NewVersusHandler(deps VersusDependencies) *VersusHandler {
	return &VersusHandler{deps: deps}
}

// HandleGetVersus handles GET /h2h/{manager} requests. Manager names may
// contain spaces, so the path segment is URL-decoded.
func (h *VersusHandler) HandleGetVersus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/h2h/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	manager, err := url.PathUnescape(path)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	result, err := h.deps.Versus(r.Context(), manager)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
