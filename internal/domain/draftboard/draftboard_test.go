package draftboard_test

import (
	"testing"

	"github.com/okian/gridiron/internal/domain/draftboard"
	"github.com/okian/gridiron/internal/domain/tabular"
	. "github.com/smartystreets/goconvey/convey"
)

func TestByRound(t *testing.T) {
	Convey("Given a season's picks across rounds", t, func() {
		picks := []draftboard.Pick{
			{Round: "2", Pick: "13", Player: "RB One"},
			{Round: "1", Pick: "1", Player: "WR One"},
			{Round: "1", Pick: "2", Player: "WR Two"},
			{Round: "supplemental", Pick: "", Player: "FA Guy"},
		}

		rounds := draftboard.ByRound(picks)

		Convey("Then rounds should be ascending with non-numeric rounds in group 0", func() {
			So(rounds, ShouldHaveLength, 3)
			So(rounds[0].Number, ShouldEqual, 0)
			So(rounds[0].Picks[0].Player, ShouldEqual, "FA Guy")
			So(rounds[1].Number, ShouldEqual, 1)
			So(rounds[2].Number, ShouldEqual, 2)
		})

		Convey("And picks within a round should keep source order", func() {
			So(rounds[1].Picks[0].Player, ShouldEqual, "WR One")
			So(rounds[1].Picks[1].Player, ShouldEqual, "WR Two")
		})
	})

	Convey("Given no picks", t, func() {
		So(draftboard.ByRound(nil), ShouldBeEmpty)
	})
}

func TestForManager(t *testing.T) {
	Convey("Given picks across two seasons", t, func() {
		seasons := []draftboard.SeasonPicks{
			{Season: "2023", Picks: []draftboard.Pick{
				{Round: "2", Pick: "14", Manager: "Alice", Player: "RB Early"},
				{Round: "1", Pick: "3", Manager: "Alice", Player: "WR Star"},
				{Round: "1", Pick: "4", Manager: "Bob", Player: "TE Guy"},
			}},
			{Season: "2024", Picks: []draftboard.Pick{
				{Round: "1", Pick: "7", Manager: "Alice", Player: "QB New"},
			}},
		}

		rows := draftboard.ForManager(seasons, "Alice")

		Convey("Then seasons should run newest first with separators on change", func() {
			So(rows, ShouldHaveLength, 5)
			So(rows[0].Separator, ShouldBeTrue)
			So(rows[0].Season, ShouldEqual, "2024")
			So(rows[1].Pick.Player, ShouldEqual, "QB New")
			So(rows[2].Separator, ShouldBeTrue)
			So(rows[2].Season, ShouldEqual, "2023")
		})

		Convey("And picks within a season should sort by round then pick", func() {
			So(rows[3].Pick.Player, ShouldEqual, "WR Star")
			So(rows[4].Pick.Player, ShouldEqual, "RB Early")
		})

		Convey("And other managers' picks should be excluded", func() {
			for _, row := range rows {
				if row.Pick != nil {
					So(row.Pick.Manager, ShouldEqual, "Alice")
				}
			}
		})
	})
}

func TestSearchPlayer(t *testing.T) {
	Convey("Given picks across seasons", t, func() {
		seasons := []draftboard.SeasonPicks{
			{Season: "2023", Picks: []draftboard.Pick{
				{Round: "1", Pick: "1", Player: "Justin Jefferson"},
				{Round: "3", Pick: "30", Player: "Justin Fields"},
				{Round: "2", Pick: "15", Player: "Saquon Barkley"},
			}},
		}

		Convey("When searching case-insensitively", func() {
			rows := draftboard.SearchPlayer(seasons, "JUSTIN")

			Convey("Then only matching players should appear after the separator", func() {
				So(rows, ShouldHaveLength, 3)
				So(rows[0].Separator, ShouldBeTrue)
				So(rows[1].Pick.Player, ShouldEqual, "Justin Jefferson")
				So(rows[2].Pick.Player, ShouldEqual, "Justin Fields")
			})
		})

		Convey("When searching with an empty query", func() {
			So(draftboard.SearchPlayer(seasons, "  "), ShouldBeEmpty)
		})
	})
}

func TestPickParsing(t *testing.T) {
	Convey("Given a draft results table", t, func() {
		table := tabular.Parse("round,pick,manager,player,position,editorial_team_abbr,adp,adp_diff\n1,3, Alice , WR Star ,WR,Min,5.2,-2.2\n")
		picks := draftboard.FromTable(table)

		Convey("Then fields should decode with trimmed names", func() {
			So(picks, ShouldHaveLength, 1)
			So(picks[0].Manager, ShouldEqual, "Alice")
			So(picks[0].Player, ShouldEqual, "WR Star")
			So(picks[0].NFLTeam, ShouldEqual, "Min")
		})

		Convey("And the ADP differential should compute from pick and ADP", func() {
			diff, ok := picks[0].ADPDiff()
			So(ok, ShouldBeTrue)
			So(diff, ShouldAlmostEqual, -2.2, 1e-9)
		})
	})

	Convey("Given non-numeric pick or ADP values", t, func() {
		p := draftboard.Pick{Round: "1", Pick: "n/a", ADP: "5.0"}

		Convey("Then the differential should be absent, not zero", func() {
			_, ok := p.ADPDiff()
			So(ok, ShouldBeFalse)
		})

		Convey("And a missing ADP should also be absent", func() {
			q := draftboard.Pick{Pick: "10", ADP: ""}
			_, ok := q.ADPDiff()
			So(ok, ShouldBeFalse)
		})
	})
}
