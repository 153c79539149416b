package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/okian/gridiron/internal/domain/draftboard"
	"github.com/okian/gridiron/internal/domain/headtohead"
	"github.com/okian/gridiron/internal/domain/ownership"
	"github.com/okian/gridiron/internal/domain/records"
	"github.com/okian/gridiron/internal/domain/tabular"
)

// FlexString decodes a JSON string or number into its text form. The
// exporters are inconsistent about quoting seasons and ranks.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = FlexString(v)
		return nil
	}
	*f = FlexString(s)
	return nil
}

func (f FlexString) String() string { return string(f) }

// Manifest maps season years to their draft results files.
type Manifest struct {
	Seasons []ManifestSeason `json:"seasons"`
}

// ManifestSeason is one entry of manifest.json.
type ManifestSeason struct {
	Year  int    `json:"year"`
	Draft string `json:"draft"`
}

// HeadToHeadDocument mirrors h2h.json.
type HeadToHeadDocument struct {
	Managers  []string                `json:"managers"`
	Pairs     []headtohead.PairRecord `json:"pairs"`
	UpdatedAt string                  `json:"updated_at"`
}

// TransactionsDocument is one season's transaction log.
type TransactionsDocument struct {
	Season    string
	Rows      []ownership.TransactionEvent
	UpdatedAt string
}

// RecordYear holds one season's record-book categories.
type RecordYear struct {
	HeadToHead []records.Section `json:"head_to_head"`
	TeamPoints []records.Section `json:"team_points"`
	TeamStats  []records.Section `json:"team_stats"`
}

// RecordsDocument mirrors records.json, keyed by year.
type RecordsDocument struct {
	Years map[string]RecordYear `json:"years"`
}

// RosterSlot is one player on a champion's final roster.
type RosterSlot struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}

// Champion is one season's winner with their final roster.
type Champion struct {
	Season   int          `json:"season"`
	Manager  string       `json:"manager"`
	TeamName string       `json:"team_name"`
	Roster   []RosterSlot `json:"roster"`
}

// TeamStanding is one team's final line in a season standings document.
type TeamStanding struct {
	Rank     FlexString `json:"rank"`
	Manager  string     `json:"manager"`
	TeamName string     `json:"team_name"`
	TeamKey  string     `json:"team_key"`
}

func decodeJSON(name string, body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, name, err)
	}
	return nil
}

// Finishes fetches and parses finishes.csv.
func (c *Client) Finishes(ctx context.Context) (tabular.Table, error) {
	body, err := c.fetch(ctx, "finishes.csv", "finishes")
	if err != nil {
		return tabular.Table{}, err
	}
	return tabular.Parse(string(body)), nil
}

// Manifest fetches manifest.json, the season-to-draft-file index.
func (c *Client) Manifest(ctx context.Context) (Manifest, error) {
	body, err := c.fetch(ctx, "manifest.json", "manifest")
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := decodeJSON("manifest.json", body, &m); err != nil {
		return Manifest{}, err
	}
	if m.Seasons == nil {
		m.Seasons = []ManifestSeason{}
	}
	return m, nil
}

// DraftResults fetches and parses one season's draft results. manifestPath is
// the site-rooted path recorded in the manifest (e.g. "/data/draft_results_2024.csv");
// only its final element matters since the client is rooted at the data tree.
func (c *Client) DraftResults(ctx context.Context, manifestPath string) ([]draftboard.Pick, error) {
	name := path.Base(manifestPath)
	body, err := c.fetch(ctx, name, "draft_results")
	if err != nil {
		return nil, err
	}
	return draftboard.FromTable(tabular.Parse(string(body))), nil
}

// HeadToHead fetches h2h.json.
func (c *Client) HeadToHead(ctx context.Context) (HeadToHeadDocument, error) {
	body, err := c.fetch(ctx, "h2h.json", "h2h")
	if err != nil {
		return HeadToHeadDocument{}, err
	}
	var doc HeadToHeadDocument
	if err := decodeJSON("h2h.json", body, &doc); err != nil {
		return HeadToHeadDocument{}, err
	}
	if doc.Managers == nil {
		doc.Managers = []string{}
	}
	if doc.Pairs == nil {
		doc.Pairs = []headtohead.PairRecord{}
	}
	return doc, nil
}

// txnRow is the wire form of a transaction log row; season arrives as a bare
// number from the exporter.
type txnRow struct {
	Season   FlexString `json:"season"`
	Date     string     `json:"date"`
	Type     string     `json:"type"`
	Player   string     `json:"player"`
	Position string     `json:"position"`
	NFL      string     `json:"nfl"`
	FromTeam string     `json:"from_team"`
	ToTeam   string     `json:"to_team"`
	Note     string     `json:"note"`
}

// Transactions fetches one season's waiver_transactions_<season>.json.
func (c *Client) Transactions(ctx context.Context, season string) (TransactionsDocument, error) {
	name := fmt.Sprintf("waiver_transactions_%s.json", season)
	body, err := c.fetch(ctx, name, "transactions")
	if err != nil {
		return TransactionsDocument{}, err
	}

	var wire struct {
		Season    FlexString `json:"season"`
		Rows      []txnRow   `json:"rows"`
		UpdatedAt string     `json:"updated_at"`
	}
	if err := decodeJSON(name, body, &wire); err != nil {
		return TransactionsDocument{}, err
	}

	rows := make([]ownership.TransactionEvent, 0, len(wire.Rows))
	for _, r := range wire.Rows {
		rows = append(rows, ownership.TransactionEvent{
			Season:   r.Season.String(),
			Date:     r.Date,
			Type:     r.Type,
			Player:   r.Player,
			Position: r.Position,
			NFLTeam:  r.NFL,
			FromTeam: r.FromTeam,
			ToTeam:   r.ToTeam,
			Note:     r.Note,
		})
	}
	return TransactionsDocument{
		Season:    wire.Season.String(),
		Rows:      rows,
		UpdatedAt: wire.UpdatedAt,
	}, nil
}

// Records fetches records.json, the combined record-book document.
func (c *Client) Records(ctx context.Context) (RecordsDocument, error) {
	body, err := c.fetch(ctx, "records.json", "records")
	if err != nil {
		return RecordsDocument{}, err
	}
	var doc RecordsDocument
	if err := decodeJSON("records.json", body, &doc); err != nil {
		return RecordsDocument{}, err
	}
	if doc.Years == nil {
		doc.Years = map[string]RecordYear{}
	}
	return doc, nil
}

// Champions fetches champion_rosters.json, accepting either a bare array or
// the {champions: [...]} wrapper.
func (c *Client) Champions(ctx context.Context) ([]Champion, error) {
	body, err := c.fetch(ctx, "champion_rosters.json", "champions")
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var champs []Champion
		if err := decodeJSON("champion_rosters.json", body, &champs); err != nil {
			return nil, err
		}
		return champs, nil
	}

	var wrapper struct {
		Champions []Champion `json:"champions"`
	}
	if err := decodeJSON("champion_rosters.json", body, &wrapper); err != nil {
		return nil, err
	}
	if wrapper.Champions == nil {
		return []Champion{}, nil
	}
	return wrapper.Champions, nil
}

// leagueDocument is one season standings object.
type leagueDocument struct {
	League struct {
		Season    FlexString     `json:"season"`
		Standings []TeamStanding `json:"standings"`
	} `json:"league"`
}

// SeasonStandings fetches end_season_<season>.json, accepting a single league
// object or an array of them; in the array form the entry matching season
// wins, falling back to the first entry.
func (c *Client) SeasonStandings(ctx context.Context, season string) ([]TeamStanding, error) {
	name := fmt.Sprintf("end_season_%s.json", season)
	body, err := c.fetch(ctx, name, "season_standings")
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var docs []leagueDocument
		if err := decodeJSON(name, body, &docs); err != nil {
			return nil, err
		}
		for _, doc := range docs {
			if doc.League.Season.String() == season {
				return orEmpty(doc.League.Standings), nil
			}
		}
		if len(docs) > 0 {
			return orEmpty(docs[0].League.Standings), nil
		}
		return []TeamStanding{}, nil
	}

	var doc leagueDocument
	if err := decodeJSON(name, body, &doc); err != nil {
		return nil, err
	}
	return orEmpty(doc.League.Standings), nil
}

func orEmpty(standings []TeamStanding) []TeamStanding {
	if standings == nil {
		return []TeamStanding{}
	}
	return standings
}
