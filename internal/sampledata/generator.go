// Package sampledata generates a synthetic static data tree for local
// development: finishes, drafts, transactions, head-to-head grids, record
// books and champion rosters shaped like the real export.
package sampledata

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/okian/gridiron/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	gamesPerPairing    = 2
	maxADPNoise        = 3.0
)

// randInt returns a random int in [0, n) using crypto/rand.
func randInt(n int) int {
	if n <= 1 {
		return 0
	}
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// randFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func randFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// shuffled returns a random permutation of 0..n-1.
func shuffled(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := randInt(i + 1)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx
}

type seasonData struct {
	year    int
	finish  []int // manager indices ordered by place
	picks   []pickRow
	txns    []txnRow
	points  map[int]float64 // season points by manager index
	highest float64
}

type pickRow struct {
	round, pick   int
	managerIdx    int
	playerIdx     int
	adp           float64
}

type txnRow struct {
	date     string
	kind     string
	playerIdx int
	fromTeam string
	toTeam   string
	note     string
}

// Generate builds the full synthetic data tree under cfg.OutDir.
func Generate(ctx context.Context, cfg *Config) (Stats, error) {
	if cfg.Teams < 2 || cfg.Teams > len(managerPool) {
		return Stats{}, fmt.Errorf("teams must be between 2 and %d", len(managerPool))
	}
	if cfg.Seasons < 1 {
		return Stats{}, fmt.Errorf("at least one season is required")
	}
	if cfg.Rounds < 1 || cfg.Rounds*cfg.Teams > len(playerPool) {
		return Stats{}, fmt.Errorf("rounds*teams must be between %d and %d", cfg.Teams, len(playerPool))
	}

	log := logger.Get()
	log.Info(ctx, "generating sample league",
		logger.Int("seasons", cfg.Seasons),
		logger.Int("teams", cfg.Teams),
		logger.Int("rounds", cfg.Rounds),
	)

	seasons := make([]seasonData, 0, cfg.Seasons)
	for i := 0; i < cfg.Seasons; i++ {
		select {
		case <-ctx.Done():
			return Stats{}, fmt.Errorf("generation cancelled: %w", ctx.Err())
		default:
		}
		seasons = append(seasons, generateSeason(cfg, cfg.StartYear+i))
	}

	stats, err := writeTree(cfg, seasons)
	if err != nil {
		return Stats{}, err
	}

	log.Info(ctx, "sample league written",
		logger.String("dir", cfg.OutDir),
		logger.Int("files", stats.FilesWritten),
		logger.Int("picks", stats.DraftPicks),
	)
	return stats, nil
}

func generateSeason(cfg *Config, year int) seasonData {
	s := seasonData{
		year:   year,
		finish: shuffled(cfg.Teams),
		points: make(map[int]float64),
	}

	// Draft: snake order over a shuffled player pool.
	players := shuffled(len(playerPool))
	overall := 0
	for round := 1; round <= cfg.Rounds; round++ {
		for slot := 0; slot < cfg.Teams; slot++ {
			managerSlot := slot
			if round%2 == 0 {
				managerSlot = cfg.Teams - 1 - slot
			}
			overall++
			s.picks = append(s.picks, pickRow{
				round:      round,
				pick:       overall,
				managerIdx: s.finish[managerSlot],
				playerIdx:  players[overall-1],
				adp:        float64(overall) + (randFloat()*2-1)*maxADPNoise,
			})
		}
	}

	// Season points: better finishes score more, with noise.
	for place, m := range s.finish {
		pts := 1700 - float64(place)*45 + randFloat()*60
		s.points[m] = pts
		if game := pts/10 + randFloat()*40; game > s.highest {
			s.highest = game
		}
	}

	// Transactions: a handful of waiver adds and one trade over the fall.
	undrafted := players[cfg.Rounds*cfg.Teams:]
	date := time.Date(year, time.September, 5, 0, 0, 0, 0, time.UTC)
	for i, playerIdx := range undrafted {
		if i >= cfg.Teams {
			break
		}
		date = date.AddDate(0, 0, 3+randInt(5))
		team := managerPool[s.finish[randInt(cfg.Teams)]].Team
		s.txns = append(s.txns,
			txnRow{date: date.Format("2006-01-02"), kind: "add", playerIdx: playerIdx, toTeam: team},
			txnRow{date: date.AddDate(0, 0, 14+randInt(21)).Format("2006-01-02"), kind: "drop", playerIdx: playerIdx, fromTeam: team},
		)
	}
	if len(s.picks) > 0 && cfg.Teams >= 2 {
		traded := s.picks[randInt(len(s.picks))]
		from := managerPool[traded.managerIdx].Team
		to := managerPool[s.finish[0]].Team
		if from != to {
			s.txns = append(s.txns, txnRow{
				date:      time.Date(year, time.November, 1+randInt(20), 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
				kind:      "add",
				playerIdx: traded.playerIdx,
				fromTeam:  from,
				toTeam:    to,
				note:      "Trade",
			})
		}
	}

	return s
}

// pairTotals accumulates an all-time head-to-head pair across seasons.
type pairTotals struct {
	a, b             int // manager indices, a < b
	aWins, bWins, ties int
	aPoints, bPoints float64
}

func buildPairs(cfg *Config, seasons []seasonData) []*pairTotals {
	pairs := make([]*pairTotals, 0)
	index := make(map[[2]int]*pairTotals)

	for _, s := range seasons {
		for i := 0; i < cfg.Teams; i++ {
			for j := i + 1; j < cfg.Teams; j++ {
				a, b := s.finish[i], s.finish[j]
				if a > b {
					a, b = b, a
				}
				key := [2]int{a, b}
				p := index[key]
				if p == nil {
					p = &pairTotals{a: a, b: b}
					index[key] = p
					pairs = append(pairs, p)
				}
				for g := 0; g < gamesPerPairing; g++ {
					switch randInt(20) {
					case 0:
						p.ties++
					default:
						// Better finishers win more often.
						if s.points[a] > s.points[b] == (randInt(4) != 0) {
							p.aWins++
						} else {
							p.bWins++
						}
					}
				}
				p.aPoints += s.points[a] / 7
				p.bPoints += s.points[b] / 7
			}
		}
	}
	return pairs
}
