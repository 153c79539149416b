// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/gridiron/internal/domain/draftboard"
)

// DraftDependencies defines the interface for draft views.
type DraftDependencies interface {
	DraftBoard(ctx context.Context, year string) ([]draftboard.Round, error)
	ManagerDraftHistory(ctx context.Context, name string) ([]draftboard.BoardRow, error)
	PlayerDraftSearch(ctx context.Context, query string) ([]draftboard.BoardRow, error)
}

// DraftHandler handles draft board requests.
type DraftHandler struct {
	deps DraftDependencies
}

// NewDraftHandler creates a new draft handler.
func NewDraftHandler(deps DraftDependencies) *DraftHandler {
	return &DraftHandler{deps: deps}
}

// HandleGetBoard handles GET /draft?year=YYYY requests.
func (h *DraftHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	year := r.URL.Query().Get("year")
	if year == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	rounds, err := h.deps.DraftBoard(r.Context(), year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rounds)
}

// HandleGetManagerHistory handles GET /draft/manager?name=... requests.
func (h *DraftHandler) HandleGetManagerHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	rows, err := h.deps.ManagerDraftHistory(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// HandleSearchPlayer handles GET /draft/player?q=... requests. An empty query
// is a valid request that matches nothing.
func (h *DraftHandler) HandleSearchPlayer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.PlayerDraftSearch(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
