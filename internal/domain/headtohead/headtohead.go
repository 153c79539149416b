// Package headtohead resolves precomputed pairwise manager records into
// per-manager tables and summaries.
package headtohead

import (
	"sort"
)

// PairRecord is the symmetric won-loss-tied record between two managers as
// exported in h2h.json. Exactly one record exists per unordered pair; a
// manager's view of it depends on which side they occupy.
type PairRecord struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	AWins      int     `json:"a_wins"`
	BWins      int     `json:"b_wins"`
	Ties       int     `json:"ties"`
	APointsFor float64 `json:"a_points_for"`
	BPointsFor float64 `json:"b_points_for"`
}

// Record is a won-loss-tied line from one manager's perspective.
type Record struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	WinPct        float64 `json:"win_pct"`
}

// Games returns the total meetings in the record.
func (r Record) Games() int {
	return r.Wins + r.Losses + r.Ties
}

// VersusRow is one opponent line in a manager's head-to-head table.
type VersusRow struct {
	Opponent string `json:"opponent"`
	Record
}

// Result is a manager's full head-to-head view. Overall counts every meeting,
// including opponents hidden from the per-opponent rows.
type Result struct {
	Manager string      `json:"manager"`
	Rows    []VersusRow `json:"rows"`
	Overall Record      `json:"overall"`
}

// WinPct computes (wins + 0.5*ties) / games, or 0 when there are no games.
func WinPct(wins, losses, ties int) float64 {
	games := wins + losses + ties
	if games == 0 {
		return 0
	}
	return (float64(wins) + 0.5*float64(ties)) / float64(games)
}

// orient returns the pair from the named manager's perspective, with the
// opponent name. ok is false when the manager is on neither side.
func orient(manager string, p PairRecord) (opponent string, rec Record, ok bool) {
	switch manager {
	case p.A:
		return p.B, Record{
			Wins:          p.AWins,
			Losses:        p.BWins,
			Ties:          p.Ties,
			PointsFor:     p.APointsFor,
			PointsAgainst: p.BPointsFor,
		}, true
	case p.B:
		return p.A, Record{
			Wins:          p.BWins,
			Losses:        p.AWins,
			Ties:          p.Ties,
			PointsFor:     p.BPointsFor,
			PointsAgainst: p.APointsFor,
		}, true
	}
	return "", Record{}, false
}

// Versus builds a manager's head-to-head table. Per-opponent rows keep only
// opponents present in roster and not hidden; the overall summary counts
// every pair touching the manager regardless of either filter.
func Versus(manager string, pairs []PairRecord, roster []string, hidden map[string]struct{}) Result {
	known := make(map[string]struct{}, len(roster))
	for _, name := range roster {
		known[name] = struct{}{}
	}

	res := Result{Manager: manager, Rows: []VersusRow{}}
	for _, p := range pairs {
		opponent, rec, ok := orient(manager, p)
		if !ok {
			continue
		}

		res.Overall.Wins += rec.Wins
		res.Overall.Losses += rec.Losses
		res.Overall.Ties += rec.Ties
		res.Overall.PointsFor += rec.PointsFor
		res.Overall.PointsAgainst += rec.PointsAgainst

		if _, ok := known[opponent]; !ok {
			continue
		}
		if _, ok := hidden[opponent]; ok {
			continue
		}
		rec.WinPct = WinPct(rec.Wins, rec.Losses, rec.Ties)
		res.Rows = append(res.Rows, VersusRow{Opponent: opponent, Record: rec})
	}
	res.Overall.WinPct = WinPct(res.Overall.Wins, res.Overall.Losses, res.Overall.Ties)

	sort.SliceStable(res.Rows, func(i, j int) bool {
		a, b := res.Rows[i], res.Rows[j]
		if a.WinPct != b.WinPct {
			return a.WinPct > b.WinPct
		}
		if a.Games() != b.Games() {
			return a.Games() > b.Games()
		}
		return a.Opponent < b.Opponent
	})

	return res
}

// SummaryByManager folds every pair into one overall record per manager,
// used to merge win percentages into the standings table.
func SummaryByManager(pairs []PairRecord) map[string]Record {
	out := make(map[string]Record)
	add := func(name string, rec Record) {
		cur := out[name]
		cur.Wins += rec.Wins
		cur.Losses += rec.Losses
		cur.Ties += rec.Ties
		cur.PointsFor += rec.PointsFor
		cur.PointsAgainst += rec.PointsAgainst
		out[name] = cur
	}
	for _, p := range pairs {
		add(p.A, Record{Wins: p.AWins, Losses: p.BWins, Ties: p.Ties, PointsFor: p.APointsFor, PointsAgainst: p.BPointsFor})
		add(p.B, Record{Wins: p.BWins, Losses: p.AWins, Ties: p.Ties, PointsFor: p.BPointsFor, PointsAgainst: p.APointsFor})
	}
	for name, rec := range out {
		rec.WinPct = WinPct(rec.Wins, rec.Losses, rec.Ties)
		out[name] = rec
	}
	return out
}

// WinPctByManager reduces SummaryByManager to the win-percentage map used by
// the standings aggregator.
func WinPctByManager(pairs []PairRecord) map[string]float64 {
	summaries := SummaryByManager(pairs)
	out := make(map[string]float64, len(summaries))
	for name, rec := range summaries {
		out[name] = rec.WinPct
	}
	return out
}
