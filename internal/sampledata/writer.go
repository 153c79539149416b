package sampledata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// File permission constants.
const (
	dirPermission  = 0o755
	filePermission = 0o644
)

func writeTree(cfg *Config, seasons []seasonData) (Stats, error) {
	if err := os.MkdirAll(cfg.OutDir, dirPermission); err != nil {
		return Stats{}, fmt.Errorf("create output dir: %w", err)
	}

	stats := Stats{Seasons: len(seasons)}
	leagueID := 10000 + randInt(90000)
	teamKey := func(year, managerIdx int) string {
		return fmt.Sprintf("%d.l.%d.t.%d", 300+year-2000, leagueID, managerIdx+1)
	}
	updatedAt := time.Now().UTC().Format("2006-01-02")

	write := func(name string, body []byte) error {
		if err := os.WriteFile(filepath.Join(cfg.OutDir, name), body, filePermission); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		stats.FilesWritten++
		return nil
	}
	writeJSON := func(name string, v any) error {
		body, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		return write(name, append(body, '\n'))
	}

	// finishes.csv
	var finishes strings.Builder
	finishes.WriteString("season,manager,place,team_key,team_name,name_source\n")
	for _, s := range seasons {
		for place, m := range s.finish {
			fmt.Fprintf(&finishes, "%d,%s,%d,%s,%s,team\n",
				s.year, managerPool[m].Manager, place+1, teamKey(s.year, m), managerPool[m].Team)
		}
	}
	if err := write("finishes.csv", []byte(finishes.String())); err != nil {
		return Stats{}, err
	}

	// manifest.json and per-season draft files
	type manifestSeason struct {
		Year  int    `json:"year"`
		Draft string `json:"draft"`
	}
	manifest := struct {
		Seasons []manifestSeason `json:"seasons"`
	}{Seasons: []manifestSeason{}}

	for _, s := range seasons {
		name := fmt.Sprintf("draft_results_%d.csv", s.year)
		manifest.Seasons = append(manifest.Seasons, manifestSeason{Year: s.year, Draft: "/data/" + name})

		var draft strings.Builder
		draft.WriteString("round,pick,manager,player,position,editorial_team_abbr,adp,adp_diff\n")
		for _, p := range s.picks {
			player := playerPool[p.playerIdx]
			fmt.Fprintf(&draft, "%d,%d,%s,%s,%s,%s,%.1f,%.1f\n",
				p.round, p.pick, managerPool[p.managerIdx].Manager,
				player.Name, player.Position, player.NFL,
				p.adp, float64(p.pick)-p.adp)
		}
		if err := write(name, []byte(draft.String())); err != nil {
			return Stats{}, err
		}
		stats.DraftPicks += len(s.picks)
	}
	if err := writeJSON("manifest.json", manifest); err != nil {
		return Stats{}, err
	}

	// waiver_transactions_<year>.json
	for _, s := range seasons {
		type row struct {
			Season   int    `json:"season"`
			Date     string `json:"date"`
			Type     string `json:"type"`
			Player   string `json:"player"`
			Position string `json:"position"`
			NFL      string `json:"nfl"`
			FromTeam string `json:"from_team"`
			ToTeam   string `json:"to_team"`
			Note     string `json:"note"`
		}
		rows := make([]row, 0, len(s.txns))
		for _, t := range s.txns {
			player := playerPool[t.playerIdx]
			rows = append(rows, row{
				Season: s.year, Date: t.date, Type: t.kind,
				Player: player.Name, Position: player.Position, NFL: player.NFL,
				FromTeam: t.fromTeam, ToTeam: t.toTeam, Note: t.note,
			})
		}
		doc := struct {
			Season    int    `json:"season"`
			Rows      []row  `json:"rows"`
			UpdatedAt string `json:"updated_at"`
		}{Season: s.year, Rows: rows, UpdatedAt: updatedAt}
		if err := writeJSON(fmt.Sprintf("waiver_transactions_%d.json", s.year), doc); err != nil {
			return Stats{}, err
		}
		stats.Transactions += len(rows)
	}

	// h2h.json
	pairs := buildPairs(cfg, seasons)
	type pairDoc struct {
		A        string  `json:"a"`
		B        string  `json:"b"`
		AWins    int     `json:"a_wins"`
		BWins    int     `json:"b_wins"`
		Ties     int     `json:"ties"`
		APointsF float64 `json:"a_points_for"`
		BPointsF float64 `json:"b_points_for"`
	}
	h2h := struct {
		Managers  []string  `json:"managers"`
		Pairs     []pairDoc `json:"pairs"`
		UpdatedAt string    `json:"updated_at"`
	}{Managers: []string{}, Pairs: []pairDoc{}, UpdatedAt: updatedAt}
	for i := 0; i < cfg.Teams; i++ {
		h2h.Managers = append(h2h.Managers, managerPool[i].Manager)
	}
	for _, p := range pairs {
		h2h.Pairs = append(h2h.Pairs, pairDoc{
			A: managerPool[p.a].Manager, B: managerPool[p.b].Manager,
			AWins: p.aWins, BWins: p.bWins, Ties: p.ties,
			APointsF: p.aPoints, BPointsF: p.bPoints,
		})
	}
	if err := writeJSON("h2h.json", h2h); err != nil {
		return Stats{}, err
	}

	// records.json
	type section struct {
		Section string              `json:"section"`
		Headers []string            `json:"headers"`
		Rows    []map[string]string `json:"rows"`
	}
	type recordYear struct {
		HeadToHead []section `json:"head_to_head"`
		TeamPoints []section `json:"team_points"`
		TeamStats  []section `json:"team_stats"`
	}
	years := make(map[string]recordYear)
	bestWins := 0
	bestWinsHolder := ""
	for _, s := range seasons {
		champ := managerPool[s.finish[0]]
		seasonWins := 8 + randInt(6)
		if seasonWins > bestWins {
			bestWins = seasonWins
			bestWinsHolder = champ.Manager
		}
		years[strconv.Itoa(s.year)] = recordYear{
			HeadToHead: []section{
				{
					Section: fmt.Sprintf("Most Wins - Season %d", s.year),
					Headers: []string{"Manager", "Record Holder", "Wins"},
					Rows: []map[string]string{
						{"Manager": champ.Manager, "Record Holder": champ.Team, "Wins": strconv.Itoa(seasonWins)},
					},
				},
				{
					Section: "Most Wins (All Time)",
					Headers: []string{"Manager", "Record Holder", "Wins"},
					Rows: []map[string]string{
						{"Manager": bestWinsHolder, "Record Holder": bestWinsHolder + " - All Time", "Wins": strconv.Itoa(bestWins)},
					},
				},
			},
			TeamPoints: []section{
				{
					Section: "Most Points From Waiver Pickups",
					Headers: []string{"Team", "Points"},
					Rows: []map[string]string{
						{"Team": champ.Team, "Points": fmt.Sprintf("%.1f", 80+randFloat()*90)},
					},
				},
				{
					Section: "Most Points From Draft Picks",
					Headers: []string{"Team", "Points"},
					Rows: []map[string]string{
						{"Team": champ.Team, "Points": fmt.Sprintf("%.1f", s.points[s.finish[0]])},
					},
				},
			},
			TeamStats: []section{
				{
					Section: fmt.Sprintf("Highest Single Game Score - Season %d", s.year),
					Headers: []string{"Team", "Record", "Points"},
					Rows: []map[string]string{
						{"Team": champ.Team, "Record": champ.Manager, "Points": fmt.Sprintf("%.1f", s.highest)},
					},
				},
			},
		}
	}
	records := struct {
		Years map[string]recordYear `json:"years"`
	}{Years: years}
	if err := writeJSON("records.json", records); err != nil {
		return Stats{}, err
	}

	// champion_rosters.json
	type rosterSlot struct {
		Name     string `json:"name"`
		Position string `json:"position"`
	}
	type champion struct {
		Season   int          `json:"season"`
		Manager  string       `json:"manager"`
		TeamName string       `json:"team_name"`
		Roster   []rosterSlot `json:"roster"`
	}
	champions := struct {
		UpdatedAt string     `json:"updated_at"`
		Champions []champion `json:"champions"`
	}{UpdatedAt: updatedAt, Champions: []champion{}}
	for _, s := range seasons {
		winner := s.finish[0]
		roster := []rosterSlot{}
		for _, p := range s.picks {
			if p.managerIdx == winner {
				player := playerPool[p.playerIdx]
				roster = append(roster, rosterSlot{Name: player.Name, Position: player.Position})
			}
		}
		champions.Champions = append(champions.Champions, champion{
			Season:   s.year,
			Manager:  managerPool[winner].Manager,
			TeamName: managerPool[winner].Team,
			Roster:   roster,
		})
	}
	if err := writeJSON("champion_rosters.json", champions); err != nil {
		return Stats{}, err
	}

	// end_season_<year>.json
	for _, s := range seasons {
		type standing struct {
			Rank     int    `json:"rank"`
			Manager  string `json:"manager"`
			TeamName string `json:"team_name"`
			TeamKey  string `json:"team_key"`
		}
		standings := make([]standing, 0, len(s.finish))
		for place, m := range s.finish {
			standings = append(standings, standing{
				Rank: place + 1, Manager: managerPool[m].Manager,
				TeamName: managerPool[m].Team, TeamKey: teamKey(s.year, m),
			})
		}
		doc := struct {
			League struct {
				Season    string     `json:"season"`
				Standings []standing `json:"standings"`
			} `json:"league"`
		}{}
		doc.League.Season = strconv.Itoa(s.year)
		doc.League.Standings = standings
		if err := writeJSON(fmt.Sprintf("end_season_%d.json", s.year), doc); err != nil {
			return Stats{}, err
		}
	}

	return stats, nil
}
