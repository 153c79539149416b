// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/gridiron/internal/adapters/assets"
	service "github.com/okian/gridiron/internal/app"
	"github.com/okian/gridiron/internal/domain/draftboard"
	"github.com/okian/gridiron/internal/domain/headtohead"
	"github.com/okian/gridiron/internal/domain/ownership"
	"github.com/okian/gridiron/internal/domain/records"
	"github.com/okian/gridiron/internal/domain/standings"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Standings(ctx context.Context) ([]standings.ManagerTotals, error)
	HallOfFame(ctx context.Context) (service.HallOfFame, error)
	Versus(ctx context.Context, manager string) (headtohead.Result, error)
	Ownership(ctx context.Context, season, query string, minTotal int) ([]ownership.Entry, error)
	AllTimeRecords(ctx context.Context) ([]records.Section, error)
	SeasonRecords(ctx context.Context, year, category string) ([]records.Section, error)
	ExtraTeamPoints(ctx context.Context, year string) ([]records.Section, error)
	DraftBoard(ctx context.Context, year string) ([]draftboard.Round, error)
	ManagerDraftHistory(ctx context.Context, name string) ([]draftboard.BoardRow, error)
	PlayerDraftSearch(ctx context.Context, query string) ([]draftboard.BoardRow, error)
	Seasons(ctx context.Context) ([]assets.ManifestSeason, error)
	Champions(ctx context.Context) ([]assets.Champion, error)
	SeasonStandings(ctx context.Context, season string) ([]assets.TeamStanding, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	standingsHandler *StandingsHandler
	versusHandler    *VersusHandler
	ownershipHandler *OwnershipHandler
	recordsHandler   *RecordsHandler
	draftHandler     *DraftHandler
	leagueHandler    *LeagueHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		standingsHandler: NewStandingsHandler(deps),
		versusHandler:    NewVersusHandler(deps),
		ownershipHandler: NewOwnershipHandler(deps),
		recordsHandler:   NewRecordsHandler(deps),
		draftHandler:     NewDraftHandler(deps),
		leagueHandler:    NewLeagueHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/standings", MetricsMiddleware(s.standingsHandler.HandleGetStandings, "standings"))
	mux.HandleFunc("/halloffame", MetricsMiddleware(s.standingsHandler.HandleGetHallOfFame, "halloffame"))
	mux.HandleFunc("/h2h/", MetricsMiddleware(s.versusHandler.HandleGetVersus, "h2h"))
	mux.HandleFunc("/ownership", MetricsMiddleware(s.ownershipHandler.HandleGetOwnership, "ownership"))
	mux.HandleFunc("/records/alltime", MetricsMiddleware(s.recordsHandler.HandleGetAllTime, "records_alltime"))
	mux.HandleFunc("/records/season", MetricsMiddleware(s.recordsHandler.HandleGetSeason, "records_season"))
	mux.HandleFunc("/records/teampoints-extra", MetricsMiddleware(s.recordsHandler.HandleGetExtraTeamPoints, "records_extra"))
	mux.HandleFunc("/draft", MetricsMiddleware(s.draftHandler.HandleGetBoard, "draft"))
	mux.HandleFunc("/draft/manager", MetricsMiddleware(s.draftHandler.HandleGetManagerHistory, "draft_manager"))
	mux.HandleFunc("/draft/player", MetricsMiddleware(s.draftHandler.HandleSearchPlayer, "draft_player"))
	mux.HandleFunc("/seasons", MetricsMiddleware(s.leagueHandler.HandleGetSeasons, "seasons"))
	mux.HandleFunc("/champions", MetricsMiddleware(s.leagueHandler.HandleGetChampions, "champions"))
	mux.HandleFunc("/league-standings", MetricsMiddleware(s.leagueHandler.HandleGetSeasonStandings, "league_standings"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError maps service failures onto the API's status taxonomy:
// unknown names are 404, bad parameters 400, broken upstream documents 502.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownManager), errors.Is(err, service.ErrUnknownSeason):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, service.ErrUnknownCategory), errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, assets.ErrFetch), errors.Is(err, assets.ErrDecode):
		writeError(w, http.StatusBadGateway, "upstream_error", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
