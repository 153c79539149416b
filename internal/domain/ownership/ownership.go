// Package ownership merges a season's draft results with its transaction log
// to reconstruct, per player, how many times they were acquired and by whom.
package ownership

import (
	"sort"
	"strings"
	"time"

	"github.com/okian/gridiron/internal/domain/draftboard"
)

// Acquisition describes how a team came to own a player.
type Acquisition string

const (
	AcquiredDraft  Acquisition = "drafted"
	AcquiredWaiver Acquisition = "waiver"
	AcquiredTrade  Acquisition = "trade"
)

// DefaultMinTotal is the acquisition floor applied when the caller passes no
// explicit minimum.
const DefaultMinTotal = 2

// TransactionEvent mirrors one row of the season transaction log.
type TransactionEvent struct {
	Season   string `json:"season"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Player   string `json:"player"`
	Position string `json:"position"`
	NFLTeam  string `json:"nfl"`
	FromTeam string `json:"from_team"`
	ToTeam   string `json:"to_team"`
	Note     string `json:"note"`
}

// Owner is one team in a player's ownership sequence.
type Owner struct {
	Team        string      `json:"team"`
	Acquisition Acquisition `json:"acquisition"`
}

// Entry is a player's accumulated ownership line for one season.
type Entry struct {
	Player   string  `json:"player"`
	Position string  `json:"position"`
	NFLTeam  string  `json:"nfl_team"`
	Drafted  int     `json:"drafted"`
	Adds     int     `json:"adds"`
	Total    int     `json:"total"`
	Owners   []Owner `json:"owners"`
}

// Build folds draft picks first and then "add" transactions in date order
// into per-player entries. The drafting team leads the ownership sequence;
// later adds append in chronological order, tagged trade when the event note
// says so and waiver otherwise. Player names join on exact trimmed text: a
// capitalization mismatch between the draft file and the transaction log
// yields two entries for the same person.
func Build(picks []draftboard.Pick, events []TransactionEvent) []Entry {
	entries := make(map[string]*Entry)
	order := make([]string, 0)

	get := func(player string) *Entry {
		e, ok := entries[player]
		if !ok {
			e = &Entry{Player: player, Owners: []Owner{}}
			entries[player] = e
			order = append(order, player)
		}
		return e
	}

	fillMeta := func(e *Entry, position, nflTeam string) {
		if e.Position == "" {
			e.Position = strings.TrimSpace(position)
		}
		if e.NFLTeam == "" {
			e.NFLTeam = strings.TrimSpace(nflTeam)
		}
	}

	for _, p := range picks {
		player := strings.TrimSpace(p.Player)
		if player == "" {
			continue
		}
		e := get(player)
		e.Drafted++
		e.Total++
		fillMeta(e, p.Position, p.NFLTeam)
		if p.Manager != "" {
			e.Owners = append([]Owner{{Team: p.Manager, Acquisition: AcquiredDraft}}, e.Owners...)
		}
	}

	for _, ev := range sortByDate(events) {
		if ev.Type != "add" {
			continue
		}
		team := strings.TrimSpace(ev.ToTeam)
		if team == "" {
			continue
		}
		player := strings.TrimSpace(ev.Player)
		if player == "" {
			continue
		}
		e := get(player)
		e.Adds++
		e.Total++
		fillMeta(e, ev.Position, ev.NFLTeam)
		acq := AcquiredWaiver
		if ev.Note == "Trade" {
			acq = AcquiredTrade
		}
		e.Owners = append(e.Owners, Owner{Team: team, Acquisition: acq})
	}

	out := make([]Entry, 0, len(order))
	for _, player := range order {
		out = append(out, *entries[player])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Player < out[j].Player
	})
	return out
}

// Filter keeps entries with at least minTotal acquisitions, optionally
// matching a case-insensitive substring query against the player name or any
// owning team. Order is preserved.
func Filter(entries []Entry, minTotal int, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Total < minTotal {
			continue
		}
		if q != "" && !matches(e, q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matches(e Entry, q string) bool {
	if strings.Contains(strings.ToLower(e.Player), q) {
		return true
	}
	for _, o := range e.Owners {
		if strings.Contains(strings.ToLower(o.Team), q) {
			return true
		}
	}
	return false
}

// Transaction dates come out of the exporter in a handful of human formats.
var dateLayouts = []string{
	"2006-01-02",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Jan 2",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sortByDate orders events ascending by parsed date. Unparseable dates sort
// first and keep their source order, which matches the log's own ordering.
func sortByDate(events []TransactionEvent) []TransactionEvent {
	out := make([]TransactionEvent, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		ti, _ := parseDate(out[i].Date)
		tj, _ := parseDate(out[j].Date)
		return ti.Before(tj)
	})
	return out
}
