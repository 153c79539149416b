// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/gridiron/internal/domain/records"
)

// RecordsDependencies defines the interface for record-book views.
type RecordsDependencies interface {
	AllTimeRecords(ctx context.Context) ([]records.Section, error)
	SeasonRecords(ctx context.Context, year, category string) ([]records.Section, error)
	ExtraTeamPoints(ctx context.Context, year string) ([]records.Section, error)
}

// RecordsHandler handles record-book requests.
type RecordsHandler struct {
	deps RecordsDependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps RecordsDependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandleGetAllTime handles GET /records/alltime requests.
func (h *RecordsHandler) HandleGetAllTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sections, err := h.deps.AllTimeRecords(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

// HandleGetSeason handles GET /records/season?year=YYYY&category=... requests.
func (h *RecordsHandler) HandleGetSeason(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	year := q.Get("year")
	if year == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	sections, err := h.deps.SeasonRecords(r.Context(), year, q.Get("category"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

// HandleGetExtraTeamPoints handles GET /records/teampoints-extra?year=YYYY
// requests; without a year every season is scanned.
func (h *RecordsHandler) HandleGetExtraTeamPoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	sections, err := h.deps.ExtraTeamPoints(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}
