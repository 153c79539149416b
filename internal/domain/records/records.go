// Package records merges the per-season record-book tables into all-time
// leaderboards and deduplicated seasonal views.
package records

import (
	"strings"

	"github.com/okian/gridiron/internal/domain/tabular"
)

// Section is one record-book table as exported in records.json.
type Section struct {
	Title   string        `json:"section"`
	Headers []string      `json:"headers"`
	Rows    []tabular.Row `json:"rows"`
}

func (s Section) firstColumn() string {
	if len(s.Headers) == 0 {
		return ""
	}
	return s.Headers[0]
}

func (s Section) lastColumn() string {
	if len(s.Headers) == 0 {
		return ""
	}
	return s.Headers[len(s.Headers)-1]
}

// holderColumn returns the header naming the record holder: the first header
// containing "holder", falling back to the literal "Record" column.
func (s Section) holderColumn() string {
	for _, h := range s.Headers {
		if strings.Contains(strings.ToLower(h), "holder") {
			return h
		}
	}
	return "Record"
}

// AllTime collapses sections from every season into all-time leaderboards.
// Only rows explicitly tagged "all time" participate; excluded section kinds
// are suppressed entirely. Within a group of rows sharing a normalized
// section title and entrant, the row with the best value in the last column
// survives: the maximum, unless the section title asks for the least.
func AllTime(sections []Section) []Section {
	type group struct {
		sectionKey string
		row        tabular.Row
		value      float64
	}

	groups := make(map[string]*group)
	groupOrder := make([]string, 0)

	type outSection struct {
		section Section
		keys    []string
	}
	outs := make(map[string]*outSection)
	outOrder := make([]string, 0)

	for _, sec := range sections {
		normTitle := Normalize(sec.Title)
		if isExcluded(normTitle) {
			continue
		}
		minWins := bestIsMinimum(normTitle)
		firstCol, lastCol := sec.firstColumn(), sec.lastColumn()

		for _, row := range sec.Rows {
			if !taggedAllTime(row) {
				continue
			}
			value, ok := firstNumber(row.Get(lastCol))
			if !ok {
				continue
			}

			key := normTitle + "::" + Normalize(row.Get(firstCol))
			g, seen := groups[key]
			if !seen {
				groups[key] = &group{sectionKey: normTitle, row: row, value: value}
				groupOrder = append(groupOrder, key)

				if _, ok := outs[normTitle]; !ok {
					outs[normTitle] = &outSection{section: Section{Title: sec.Title, Headers: sec.Headers}}
					outOrder = append(outOrder, normTitle)
				}
				outs[normTitle].keys = append(outs[normTitle].keys, key)
				continue
			}
			if (minWins && value < g.value) || (!minWins && value > g.value) {
				g.row = row
				g.value = value
			}
		}
	}

	result := make([]Section, 0, len(outOrder))
	for _, normTitle := range outOrder {
		o := outs[normTitle]
		rows := make([]tabular.Row, 0, len(o.keys))
		for _, key := range o.keys {
			rows = append(rows, groups[key].row)
		}
		o.section.Rows = rows
		result = append(result, o.section)
	}
	sortSections(result)
	return result
}

// Seasonal filters one season's sections for display: excluded kinds are
// suppressed, rows tagged "all time" are dropped (they live on the all-time
// view), and near-duplicate rows collapse to their first occurrence. The
// dedup signature combines the normalized section title, the entrant, every
// numeric substring of the value column, and the normalized holder cell.
func Seasonal(sections []Section) []Section {
	result := make([]Section, 0, len(sections))
	for _, sec := range sections {
		normTitle := Normalize(sec.Title)
		if isExcluded(normTitle) {
			continue
		}
		rows := dedupRows(sec, normTitle)
		if len(rows) == 0 {
			continue
		}
		result = append(result, Section{Title: sec.Title, Headers: sec.Headers, Rows: rows})
	}
	sortSections(result)
	return result
}

func dedupRows(sec Section, normTitle string) []tabular.Row {
	firstCol, lastCol := sec.firstColumn(), sec.lastColumn()
	holderCol := sec.holderColumn()

	seen := make(map[string]struct{})
	rows := make([]tabular.Row, 0, len(sec.Rows))
	for _, row := range sec.Rows {
		if taggedAllTime(row) {
			continue
		}
		sig := strings.Join([]string{
			normTitle,
			Normalize(row.Get(firstCol)),
			numericSignature(row.Get(lastCol)),
			Normalize(row.Get(holderCol)),
		}, "::")
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		rows = append(rows, row)
	}
	return rows
}

// ExtraTeamPoints surfaces the waiver-wire-pickup and drafted-player points
// subsections as standalone seasonal tables, waiver pickups first.
func ExtraTeamPoints(sections []Section) []Section {
	result := make([]Section, 0, len(extraTeamPoints))
	for _, r := range extraTeamPoints {
		for _, sec := range sections {
			normTitle := Normalize(sec.Title)
			if !r.matches(normTitle) || isExcluded(normTitle) {
				continue
			}
			rows := dedupRows(sec, normTitle)
			if len(rows) == 0 {
				continue
			}
			result = append(result, Section{Title: sec.Title, Headers: sec.Headers, Rows: rows})
		}
	}
	return result
}
