// Package standings folds per-season finish records into career totals and
// the hall-of-fame tables derived from them.
package standings

import (
	"sort"
	"strconv"
	"strings"

	"github.com/okian/gridiron/internal/domain/tabular"
)

// Points awarded per finishing place.
const (
	pointsGold   = 3
	pointsSilver = 2
	pointsBronze = 1
)

// maxCountedPlace is the exporter's sentinel for teams without a real rank.
const maxCountedPlace = 9000

// playoffCutoff is the worst place that still made the playoffs.
const playoffCutoff = 4

// bestAverageTableSize bounds the best-average-finish table.
const bestAverageTableSize = 5

// FinishRecord is one manager's finishing place in one season.
type FinishRecord struct {
	Manager string
	Season  string
	Place   int
}

// ManagerTotals is a manager's career line, recomputed from finish records on
// every load and never persisted.
type ManagerTotals struct {
	Manager      string  `json:"manager"`
	Seasons      int     `json:"seasons"`
	Gold         int     `json:"gold"`
	Silver       int     `json:"silver"`
	Bronze       int     `json:"bronze"`
	Podiums      int     `json:"podiums"`
	Points       int     `json:"points"`
	AvgFinish    float64 `json:"avg_finish"`
	PlayoffsMade int     `json:"playoffs_made"`
	WinPct       float64 `json:"win_pct"`
}

// FromTable decodes finish records from a parsed finishes document. Rows with
// an unparseable place are dropped rather than counted as place zero.
func FromTable(t tabular.Table) []FinishRecord {
	records := make([]FinishRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		place, err := strconv.Atoi(strings.TrimSpace(row.Get("place")))
		if err != nil {
			continue
		}
		records = append(records, FinishRecord{
			Manager: strings.TrimSpace(row.Get("manager")),
			Season:  strings.TrimSpace(row.Get("season")),
			Place:   place,
		})
	}
	return records
}

// Aggregate folds finish records into one totals line per manager, ranked by
// points desc, then gold desc, then average finish asc, then name.
//
// Every qualifying record counts toward points and medals; a manager with
// multiple entries in one season contributes only the best (lowest) place of
// that season to seasons-played, average finish, and playoff counts.
func Aggregate(records []FinishRecord) []ManagerTotals {
	totals := make(map[string]*ManagerTotals)
	bestPlace := make(map[string]map[string]int) // manager -> season -> best place

	for _, rec := range records {
		if rec.Manager == "" || rec.Season == "" {
			continue
		}
		if rec.Place <= 0 || rec.Place >= maxCountedPlace {
			continue
		}

		mt, ok := totals[rec.Manager]
		if !ok {
			mt = &ManagerTotals{Manager: rec.Manager}
			totals[rec.Manager] = mt
			bestPlace[rec.Manager] = make(map[string]int)
		}

		switch rec.Place {
		case 1:
			mt.Gold++
			mt.Points += pointsGold
		case 2:
			mt.Silver++
			mt.Points += pointsSilver
		case 3:
			mt.Bronze++
			mt.Points += pointsBronze
		}

		seasons := bestPlace[rec.Manager]
		if best, ok := seasons[rec.Season]; !ok || rec.Place < best {
			seasons[rec.Season] = rec.Place
		}
	}

	out := make([]ManagerTotals, 0, len(totals))
	for manager, mt := range totals {
		seasons := bestPlace[manager]
		mt.Seasons = len(seasons)
		mt.Podiums = mt.Gold + mt.Silver + mt.Bronze

		sum := 0
		for _, place := range seasons {
			sum += place
			if place <= playoffCutoff {
				mt.PlayoffsMade++
			}
		}
		if mt.Seasons > 0 {
			mt.AvgFinish = float64(sum) / float64(mt.Seasons)
		}

		out = append(out, *mt)
	}

	sortTotals(out)
	return out
}

// MergeWinPct fills win percentages, keyed by manager name, into totals.
func MergeWinPct(totals []ManagerTotals, winPct map[string]float64) {
	for i := range totals {
		totals[i].WinPct = winPct[totals[i].Manager]
	}
}

// TitleHolders returns the managers with at least one championship, in the
// same order as the main table.
func TitleHolders(totals []ManagerTotals) []ManagerTotals {
	out := make([]ManagerTotals, 0, len(totals))
	for _, mt := range totals {
		if mt.Gold > 0 {
			out = append(out, mt)
		}
	}
	return out
}

// BestAverageFinish returns up to five managers with the lowest average
// finish among those with at least minSeasons seasons played.
func BestAverageFinish(totals []ManagerTotals, minSeasons int) []ManagerTotals {
	out := make([]ManagerTotals, 0, len(totals))
	for _, mt := range totals {
		if mt.Seasons >= minSeasons {
			out = append(out, mt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgFinish != out[j].AvgFinish {
			return out[i].AvgFinish < out[j].AvgFinish
		}
		return out[i].Manager < out[j].Manager
	})
	if len(out) > bestAverageTableSize {
		out = out[:bestAverageTableSize]
	}
	return out
}

func sortTotals(totals []ManagerTotals) {
	sort.SliceStable(totals, func(i, j int) bool {
		a, b := totals[i], totals[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Gold != b.Gold {
			return a.Gold > b.Gold
		}
		if a.AvgFinish != b.AvgFinish {
			return a.AvgFinish < b.AvgFinish
		}
		return a.Manager < b.Manager
	})
}
