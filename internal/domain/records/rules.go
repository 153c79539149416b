package records

import (
	"sort"
	"strings"
)

// rule is a token set matched against a normalized section title; it applies
// when every token appears as a substring.
type rule []string

func (r rule) matches(normTitle string) bool {
	for _, token := range r {
		if !strings.Contains(normTitle, token) {
			return false
		}
	}
	return true
}

// excludedSections suppresses tables that never belong on a leaderboard,
// regardless of tagging: booby-prize stats and draft-value minimums.
var excludedSections = []rule{
	{"least", "touchdowns"},
	{"fewest", "touchdowns"},
	{"margin", "defeat"},
	{"least", "points", "draft"},
	{"fewest", "points", "draft"},
}

func isExcluded(normTitle string) bool {
	for _, r := range excludedSections {
		if r.matches(normTitle) {
			return true
		}
	}
	return false
}

// minimumWins flags sections ranked toward the smallest value.
var minimumWins = []string{"least", "easiest", "smallest"}

func bestIsMinimum(normTitle string) bool {
	for _, token := range minimumWins {
		if strings.Contains(normTitle, token) {
			return true
		}
	}
	return false
}

// sectionPriority fixes the display order of record sections. First matching
// rule wins; titles matching no rule rank after all matched ones and
// tie-break lexicographically.
var sectionPriority = []rule{
	{"win", "most"},
	{"win", "streak"},
	{"win", "margin"},
	{"loss", "most"},
	{"loss", "streak"},
	{"team points", "most"},
	{"team points", "least"},
	{"points", "most"},
	{"points", "least"},
	{"touchdowns", "most"},
	{"moves", "most"},
	{"trades", "most"},
}

func sectionRank(normTitle string) int {
	for i, r := range sectionPriority {
		if r.matches(normTitle) {
			return i
		}
	}
	return len(sectionPriority)
}

// sortSections orders sections by the priority table, then by title.
func sortSections(sections []Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		ri, rj := sectionRank(Normalize(sections[i].Title)), sectionRank(Normalize(sections[j].Title))
		if ri != rj {
			return ri < rj
		}
		return sections[i].Title < sections[j].Title
	})
}

// extraTeamPoints names the two team-points subsections surfaced on their own
// seasonal tables, in display order: waiver pickups first.
var extraTeamPoints = []rule{
	{"most points", "waiver"},
	{"most points", "draft"},
}
