// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/okian/gridiron/internal/adapters/assets"
	"github.com/okian/gridiron/internal/domain/draftboard"
	"github.com/okian/gridiron/internal/domain/headtohead"
	"github.com/okian/gridiron/internal/domain/ownership"
	"github.com/okian/gridiron/internal/domain/records"
	"github.com/okian/gridiron/internal/domain/standings"
	"github.com/okian/gridiron/pkg/logger"
	"github.com/okian/gridiron/pkg/metrics"
)

// Record-book category names as exported in records.json.
const (
	CategoryHeadToHead = "head_to_head"
	CategoryTeamPoints = "team_points"
	CategoryTeamStats  = "team_stats"
)

// Service aggregates the league's static data documents into the read views
// served by the HTTP API. Every operation fetches what it needs through the
// asset client; freshness is the cache layer's concern.
type Service struct {
	mu sync.RWMutex

	client *assets.Client

	// Configuration
	hidden            map[string]struct{}
	minSeasons        int
	minOwnershipTotal int
	maxTableLimit     int

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithHiddenManagers hides the named managers from standings and versus views.
func WithHiddenManagers(names []string) Option {
	return func(s *Service) {
		for _, n := range names {
			if n != "" {
				s.hidden[n] = struct{}{}
			}
		}
	}
}

// WithMinSeasons sets the season count gating the best-average-finish table.
func WithMinSeasons(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minSeasons = n
		}
	}
}

// WithMinOwnershipTotal sets the default acquisition count for ownership rows.
func WithMinOwnershipTotal(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.minOwnershipTotal = n
		}
	}
}

// WithMaxTableLimit caps the row count of unbounded views.
func WithMaxTableLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTableLimit = n
		}
	}
}

// New constructs a new Service reading through the given asset client.
func New(client *assets.Client, opts ...Option) *Service {
	s := &Service{
		client:            client,
		hidden:            make(map[string]struct{}),
		minSeasons:        3,
		minOwnershipTotal: ownership.DefaultMinTotal,
		maxTableLimit:     500,
		logger:            nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start prepares the service for use.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.started = true
	s.logger.Info(ctx, "history service started",
		logger.Int("hiddenManagers", len(s.hidden)),
		logger.Int("minSeasons", s.minSeasons),
		logger.Int("minOwnershipTotal", s.minOwnershipTotal),
	)

	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "history service stopped")
}

func (s *Service) checkStarted() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

func observeAggregation(kind string, start time.Time) {
	metrics.RecordAggregation(kind)
	metrics.RecordAggregationLatency(float64(time.Since(start).Milliseconds()))
}

// Standings returns the all-time career table, win percentages merged from
// the head-to-head grid. A missing grid degrades to zero percentages rather
// than failing the whole table.
func (s *Service) Standings(ctx context.Context) ([]standings.ManagerTotals, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("standings", time.Now())

	table, err := s.client.Finishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("standings: %w", err)
	}

	recs := standings.FromTable(table)
	kept := recs[:0]
	for _, r := range recs {
		if _, ok := s.hidden[r.Manager]; ok {
			continue
		}
		kept = append(kept, r)
	}
	totals := standings.Aggregate(kept)

	if doc, err := s.client.HeadToHead(ctx); err != nil {
		s.logger.Warn(ctx, "win percentages unavailable", logger.Error(err))
	} else {
		standings.MergeWinPct(totals, headtohead.WinPctByManager(doc.Pairs))
	}

	return totals, nil
}

// HallOfFame is the pair of honor tables derived from the career standings.
type HallOfFame struct {
	TitleHolders []standings.ManagerTotals `json:"title_holders"`
	BestAverage  []standings.ManagerTotals `json:"best_average"`
}

// HallOfFame returns the title holders and the best-average-finish table.
func (s *Service) HallOfFame(ctx context.Context) (HallOfFame, error) {
	totals, err := s.Standings(ctx)
	if err != nil {
		return HallOfFame{}, err
	}
	defer observeAggregation("halloffame", time.Now())

	return HallOfFame{
		TitleHolders: standings.TitleHolders(totals),
		BestAverage:  standings.BestAverageFinish(totals, s.minSeasons),
	}, nil
}

// Versus returns one manager's record against every visible opponent plus
// their overall line. Unknown managers are rejected.
func (s *Service) Versus(ctx context.Context, manager string) (headtohead.Result, error) {
	if err := s.checkStarted(); err != nil {
		return headtohead.Result{}, err
	}
	defer observeAggregation("versus", time.Now())

	doc, err := s.client.HeadToHead(ctx)
	if err != nil {
		return headtohead.Result{}, fmt.Errorf("versus: %w", err)
	}

	known := false
	for _, m := range doc.Managers {
		if m == manager {
			known = true
			break
		}
	}
	if !known {
		return headtohead.Result{}, fmt.Errorf("%w: %s", ErrUnknownManager, manager)
	}

	return headtohead.Versus(manager, doc.Pairs, doc.Managers, s.hidden), nil
}

// Ownership returns the player ownership table for one season. An empty
// season selects the newest manifest season; minTotal at or below zero falls
// back to the configured default.
func (s *Service) Ownership(ctx context.Context, season, query string, minTotal int) ([]ownership.Entry, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("ownership", time.Now())

	if season == "" {
		latest, err := s.latestSeason(ctx)
		if err != nil {
			return nil, fmt.Errorf("ownership: %w", err)
		}
		season = latest
	}

	entry, err := s.manifestSeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("ownership: %w", err)
	}

	picks, err := s.client.DraftResults(ctx, entry.Draft)
	if err != nil {
		s.logger.Warn(ctx, "draft results unavailable for ownership",
			logger.String("season", season), logger.Error(err))
		picks = nil
	}

	var events []ownership.TransactionEvent
	if doc, err := s.client.Transactions(ctx, season); err != nil {
		s.logger.Warn(ctx, "transaction log unavailable",
			logger.String("season", season), logger.Error(err))
	} else {
		events = doc.Rows
	}

	if minTotal <= 0 {
		minTotal = s.minOwnershipTotal
	}
	entries := ownership.Filter(ownership.Build(picks, events), minTotal, query)
	return s.capEntries(entries), nil
}

// AllTimeRecords collapses every season's record book into the all-time
// leaderboards.
func (s *Service) AllTimeRecords(ctx context.Context) ([]records.Section, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("records_alltime", time.Now())

	doc, err := s.client.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("all-time records: %w", err)
	}

	sections := make([]records.Section, 0)
	for _, year := range sortedYears(doc.Years) {
		ry := doc.Years[year]
		sections = append(sections, ry.HeadToHead...)
		sections = append(sections, ry.TeamPoints...)
		sections = append(sections, ry.TeamStats...)
	}
	return records.AllTime(sections), nil
}

// SeasonRecords returns one season's record book, filtered and deduplicated
// for display. An empty category selects every category in export order.
func (s *Service) SeasonRecords(ctx context.Context, year, category string) ([]records.Section, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("records_season", time.Now())

	doc, err := s.client.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("season records: %w", err)
	}

	ry, ok := doc.Years[year]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSeason, year)
	}

	var sections []records.Section
	switch category {
	case "":
		sections = append(sections, ry.HeadToHead...)
		sections = append(sections, ry.TeamPoints...)
		sections = append(sections, ry.TeamStats...)
	case CategoryHeadToHead:
		sections = ry.HeadToHead
	case CategoryTeamPoints:
		sections = ry.TeamPoints
	case CategoryTeamStats:
		sections = ry.TeamStats
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	return records.Seasonal(sections), nil
}

// ExtraTeamPoints returns the waiver and draft points sections pulled out of
// the team-points record book. An empty year scans every season.
func (s *Service) ExtraTeamPoints(ctx context.Context, year string) ([]records.Section, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("records_extra", time.Now())

	doc, err := s.client.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("extra team points: %w", err)
	}

	sections := make([]records.Section, 0)
	if year != "" {
		ry, ok := doc.Years[year]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSeason, year)
		}
		sections = ry.TeamPoints
	} else {
		for _, y := range sortedYears(doc.Years) {
			sections = append(sections, doc.Years[y].TeamPoints...)
		}
	}
	return records.ExtraTeamPoints(sections), nil
}

// DraftBoard returns one season's draft grouped by round.
func (s *Service) DraftBoard(ctx context.Context, year string) ([]draftboard.Round, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("draft_board", time.Now())

	entry, err := s.manifestSeason(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("draft board: %w", err)
	}

	picks, err := s.client.DraftResults(ctx, entry.Draft)
	if err != nil {
		return nil, fmt.Errorf("draft board: %w", err)
	}
	return draftboard.ByRound(picks), nil
}

// ManagerDraftHistory returns every pick one manager has made, newest season
// first with separators between seasons.
func (s *Service) ManagerDraftHistory(ctx context.Context, name string) ([]draftboard.BoardRow, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("draft_manager", time.Now())

	seasons, err := s.allSeasonPicks(ctx)
	if err != nil {
		return nil, fmt.Errorf("manager draft history: %w", err)
	}
	return s.capRows(draftboard.ForManager(seasons, name)), nil
}

// PlayerDraftSearch returns every pick across seasons whose player name
// matches the query.
func (s *Service) PlayerDraftSearch(ctx context.Context, query string) ([]draftboard.BoardRow, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("draft_player", time.Now())

	seasons, err := s.allSeasonPicks(ctx)
	if err != nil {
		return nil, fmt.Errorf("player draft search: %w", err)
	}
	return s.capRows(draftboard.SearchPlayer(seasons, query)), nil
}

// Seasons returns the manifest's season index, newest first.
func (s *Service) Seasons(ctx context.Context) ([]assets.ManifestSeason, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}

	m, err := s.client.Manifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("seasons: %w", err)
	}

	seasons := make([]assets.ManifestSeason, len(m.Seasons))
	copy(seasons, m.Seasons)
	sort.Slice(seasons, func(i, j int) bool {
		return seasons[i].Year > seasons[j].Year
	})
	return seasons, nil
}

// Champions returns each season's winner with their final roster, newest
// season first.
func (s *Service) Champions(ctx context.Context) ([]assets.Champion, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("champions", time.Now())

	champs, err := s.client.Champions(ctx)
	if err != nil {
		return nil, fmt.Errorf("champions: %w", err)
	}
	sort.SliceStable(champs, func(i, j int) bool {
		return champs[i].Season > champs[j].Season
	})
	return champs, nil
}

// SeasonStandings returns one season's final regular-season table.
func (s *Service) SeasonStandings(ctx context.Context, season string) ([]assets.TeamStanding, error) {
	if err := s.checkStarted(); err != nil {
		return nil, err
	}
	defer observeAggregation("season_standings", time.Now())

	table, err := s.client.SeasonStandings(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("season standings: %w", err)
	}
	return table, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"started":           s.started,
		"hiddenManagers":    len(s.hidden),
		"minSeasons":        s.minSeasons,
		"minOwnershipTotal": s.minOwnershipTotal,
		"maxTableLimit":     s.maxTableLimit,
	}
}

// allSeasonPicks fetches every season's draft results concurrently. A season
// whose file fails to fetch is logged and dropped; the others still serve.
func (s *Service) allSeasonPicks(ctx context.Context) ([]draftboard.SeasonPicks, error) {
	m, err := s.client.Manifest(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		seasons = make([]draftboard.SeasonPicks, 0, len(m.Seasons))
	)
	for _, entry := range m.Seasons {
		wg.Add(1)
		go func(entry assets.ManifestSeason) {
			defer wg.Done()

			picks, err := s.client.DraftResults(ctx, entry.Draft)
			if err != nil {
				s.logger.Warn(ctx, "skipping season draft file",
					logger.Int("year", entry.Year), logger.Error(err))
				return
			}

			mu.Lock()
			seasons = append(seasons, draftboard.SeasonPicks{
				Season: strconv.Itoa(entry.Year),
				Picks:  picks,
			})
			mu.Unlock()
		}(entry)
	}
	wg.Wait()

	return seasons, nil
}

func (s *Service) latestSeason(ctx context.Context) (string, error) {
	m, err := s.client.Manifest(ctx)
	if err != nil {
		return "", err
	}
	latest := 0
	for _, entry := range m.Seasons {
		if entry.Year > latest {
			latest = entry.Year
		}
	}
	if latest == 0 {
		return "", ErrUnknownSeason
	}
	return strconv.Itoa(latest), nil
}

func (s *Service) manifestSeason(ctx context.Context, season string) (assets.ManifestSeason, error) {
	m, err := s.client.Manifest(ctx)
	if err != nil {
		return assets.ManifestSeason{}, err
	}
	for _, entry := range m.Seasons {
		if strconv.Itoa(entry.Year) == season {
			return entry, nil
		}
	}
	return assets.ManifestSeason{}, fmt.Errorf("%w: %s", ErrUnknownSeason, season)
}

func sortedYears(years map[string]assets.RecordYear) []string {
	keys := make([]string, 0, len(years))
	for y := range years {
		keys = append(keys, y)
	}
	sort.Strings(keys)
	return keys
}

func (s *Service) capRows(rows []draftboard.BoardRow) []draftboard.BoardRow {
	if len(rows) > s.maxTableLimit {
		return rows[:s.maxTableLimit]
	}
	return rows
}

func (s *Service) capEntries(entries []ownership.Entry) []ownership.Entry {
	if len(entries) > s.maxTableLimit {
		return entries[:s.maxTableLimit]
	}
	return entries
}
