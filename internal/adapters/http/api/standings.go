// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	service "github.com/okian/gridiron/internal/app"
	"github.com/okian/gridiron/internal/domain/standings"
)

// StandingsDependencies defines the interface for career table operations.
type StandingsDependencies interface {
	Standings(ctx context.Context) ([]standings.ManagerTotals, error)
	HallOfFame(ctx context.Context) (service.HallOfFame, error)
}

// StandingsHandler handles career table and hall-of-fame requests.
type StandingsHandler struct {
	deps StandingsDependencies
}

// NewStandingsHandler creates a new standings handler.
func NewStandingsHandler(deps StandingsDependencies) *StandingsHandler {
	return &StandingsHandler{deps: deps}
}

// HandleGetStandings handles GET /standings requests.
func (h *StandingsHandler) HandleGetStandings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	totals, err := h.deps.Standings(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

// HandleGetHallOfFame handles GET /halloffame requests.
func (h *StandingsHandler) HandleGetHallOfFame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	hof, err := h.deps.HallOfFame(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hof)
}
