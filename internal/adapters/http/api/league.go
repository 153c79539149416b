// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/gridiron/internal/adapters/assets"
)

// LeagueDependencies defines the interface for season-level documents.
type LeagueDependencies interface {
	Seasons(ctx context.Context) ([]assets.ManifestSeason, error)
	Champions(ctx context.Context) ([]assets.Champion, error)
	SeasonStandings(ctx context.Context, season string) ([]assets.TeamStanding, error)
}

// LeagueHandler handles season index, champion and final standings requests.
type LeagueHandler struct {
	deps LeagueDependencies
}

// NewLeagueHandler creates a new league handler.
func NewLeagueHandler(deps LeagueDependencies) *LeagueHandler {
	return &LeagueHandler{deps: deps}
}

// HandleGetSeasons handles GET /seasons requests.
func (h *LeagueHandler) HandleGetSeasons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	seasons, err := h.deps.Seasons(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}

// HandleGetChampions handles GET /champions requests.
func (h *LeagueHandler) HandleGetChampions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	champs, err := h.deps.Champions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, champs)
}

// HandleGetSeasonStandings handles GET /league-standings?season=YYYY requests.
func (h *LeagueHandler) HandleGetSeasonStandings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	season := r.URL.Query().Get("season")
	if season == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	standings, err := h.deps.SeasonStandings(r.Context(), season)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, standings)
}
