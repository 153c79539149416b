// Package draftboard groups draft results into round boards and flattened
// per-manager or per-player views across seasons.
package draftboard

import (
	"sort"
	"strconv"
	"strings"

	"github.com/okian/gridiron/internal/domain/tabular"
)

// Pick is one selection from a season's draft results file. Round, pick and
// ADP keep their raw text alongside parsed values so unparseable numbers stay
// visibly absent instead of collapsing to zero.
type Pick struct {
	Round    string `json:"round"`
	Pick     string `json:"pick"`
	Manager  string `json:"manager"`
	Player   string `json:"player"`
	Position string `json:"position"`
	NFLTeam  string `json:"nfl_team"`
	ADP      string `json:"adp"`
}

// FromTable decodes draft picks from a parsed draft results document.
func FromTable(t tabular.Table) []Pick {
	picks := make([]Pick, 0, len(t.Rows))
	for _, row := range t.Rows {
		picks = append(picks, Pick{
			Round:    row.Get("round"),
			Pick:     row.Get("pick"),
			Manager:  strings.TrimSpace(row.Get("manager")),
			Player:   strings.TrimSpace(row.Get("player")),
			Position: row.Get("position"),
			NFLTeam:  row.Get("editorial_team_abbr"),
			ADP:      row.Get("adp"),
		})
	}
	return picks
}

// RoundNumber parses the pick's round, defaulting to 0 for non-numeric values.
func (p Pick) RoundNumber() int {
	n, err := strconv.Atoi(strings.TrimSpace(p.Round))
	if err != nil {
		return 0
	}
	return n
}

// PickNumber parses the overall pick number. ok is false when absent.
func (p Pick) PickNumber() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(p.Pick))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ADPDiff computes actual pick number minus average draft position. ok is
// false when either side is non-numeric.
func (p Pick) ADPDiff() (float64, bool) {
	pick, ok := p.PickNumber()
	if !ok {
		return 0, false
	}
	adp, err := strconv.ParseFloat(strings.TrimSpace(p.ADP), 64)
	if err != nil {
		return 0, false
	}
	return float64(pick) - adp, true
}

// Round is one draft round with its picks in source order.
type Round struct {
	Number int    `json:"number"`
	Picks  []Pick `json:"picks"`
}

// ByRound groups a season's picks by round number, rounds ascending, picks in
// source order within a round.
func ByRound(picks []Pick) []Round {
	groups := make(map[int][]Pick)
	numbers := make([]int, 0)
	for _, p := range picks {
		n := p.RoundNumber()
		if _, ok := groups[n]; !ok {
			numbers = append(numbers, n)
		}
		groups[n] = append(groups[n], p)
	}
	sort.Ints(numbers)

	rounds := make([]Round, 0, len(numbers))
	for _, n := range numbers {
		rounds = append(rounds, Round{Number: n, Picks: groups[n]})
	}
	return rounds
}

// SeasonPicks is one season's draft results, keyed by the manifest year.
type SeasonPicks struct {
	Season string
	Picks  []Pick
}

// BoardRow is one line of a flattened multi-season view. Separator rows mark
// a season boundary and carry no pick.
type BoardRow struct {
	Season    string `json:"season"`
	Separator bool   `json:"separator,omitempty"`
	Pick      *Pick  `json:"pick,omitempty"`
}

// ForManager flattens every season's picks for one manager, sorted by season
// desc, round asc, pick asc, with separator rows on season change.
func ForManager(seasons []SeasonPicks, manager string) []BoardRow {
	return flatten(seasons, func(p Pick) bool {
		return p.Manager == manager
	})
}

// SearchPlayer flattens every season's picks whose player name contains the
// query, case-insensitively, with the same ordering and separators.
func SearchPlayer(seasons []SeasonPicks, query string) []BoardRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []BoardRow{}
	}
	return flatten(seasons, func(p Pick) bool {
		return strings.Contains(strings.ToLower(p.Player), q)
	})
}

type seasonPick struct {
	season string
	pick   Pick
}

func flatten(seasons []SeasonPicks, keep func(Pick) bool) []BoardRow {
	flat := make([]seasonPick, 0)
	for _, sp := range seasons {
		for _, p := range sp.Picks {
			if keep(p) {
				flat = append(flat, seasonPick{season: sp.Season, pick: p})
			}
		}
	}

	sort.SliceStable(flat, func(i, j int) bool {
		a, b := flat[i], flat[j]
		if a.season != b.season {
			return a.season > b.season
		}
		if ar, br := a.pick.RoundNumber(), b.pick.RoundNumber(); ar != br {
			return ar < br
		}
		an, aok := a.pick.PickNumber()
		bn, bok := b.pick.PickNumber()
		if aok && bok && an != bn {
			return an < bn
		}
		// Absent pick numbers sort after present ones.
		return aok && !bok
	})

	rows := make([]BoardRow, 0, len(flat))
	lastSeason := ""
	for i := range flat {
		if flat[i].season != lastSeason {
			rows = append(rows, BoardRow{Season: flat[i].season, Separator: true})
			lastSeason = flat[i].season
		}
		rows = append(rows, BoardRow{Season: flat[i].season, Pick: &flat[i].pick})
	}
	return rows
}
