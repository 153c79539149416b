package standings_test

import (
	"testing"

	"github.com/okian/gridiron/internal/domain/standings"
	"github.com/okian/gridiron/internal/domain/tabular"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAggregate(t *testing.T) {
	Convey("Given finishes of 1st, 2nd, 1st across three seasons", t, func() {
		records := []standings.FinishRecord{
			{Manager: "Alice", Season: "2021", Place: 1},
			{Manager: "Alice", Season: "2022", Place: 2},
			{Manager: "Alice", Season: "2023", Place: 1},
		}

		totals := standings.Aggregate(records)

		Convey("Then totals should match the medal and point arithmetic", func() {
			So(totals, ShouldHaveLength, 1)
			alice := totals[0]
			So(alice.Points, ShouldEqual, 8)
			So(alice.Gold, ShouldEqual, 2)
			So(alice.Silver, ShouldEqual, 1)
			So(alice.Podiums, ShouldEqual, 3)
			So(alice.Seasons, ShouldEqual, 3)
			So(alice.AvgFinish, ShouldAlmostEqual, 4.0/3.0, 1e-9)
		})
	})

	Convey("Given two finishes in the same season", t, func() {
		records := []standings.FinishRecord{
			{Manager: "Bob", Season: "2023", Place: 1},
			{Manager: "Bob", Season: "2023", Place: 5},
		}

		totals := standings.Aggregate(records)

		Convey("Then only the best place counts for seasons, average, and playoffs", func() {
			bob := totals[0]
			So(bob.Seasons, ShouldEqual, 1)
			So(bob.AvgFinish, ShouldEqual, 1.0)
			So(bob.PlayoffsMade, ShouldEqual, 1)
		})
	})

	Convey("Given the Alice end-to-end scenario", t, func() {
		records := []standings.FinishRecord{
			{Manager: "Alice", Season: "2023", Place: 1},
			{Manager: "Alice", Season: "2024", Place: 3},
		}

		totals := standings.Aggregate(records)

		Convey("Then the career line should match exactly", func() {
			So(totals, ShouldHaveLength, 1)
			alice := totals[0]
			So(alice.Manager, ShouldEqual, "Alice")
			So(alice.Seasons, ShouldEqual, 2)
			So(alice.Gold, ShouldEqual, 1)
			So(alice.Bronze, ShouldEqual, 1)
			So(alice.Points, ShouldEqual, 4)
			So(alice.AvgFinish, ShouldEqual, 2.0)
			So(alice.PlayoffsMade, ShouldEqual, 2)
			So(alice.WinPct, ShouldEqual, 0)
		})
	})

	Convey("Given records that should not be counted", t, func() {
		records := []standings.FinishRecord{
			{Manager: "", Season: "2023", Place: 1},
			{Manager: "Carol", Season: "", Place: 1},
			{Manager: "Carol", Season: "2023", Place: 0},
			{Manager: "Carol", Season: "2023", Place: 9999},
			{Manager: "Carol", Season: "2023", Place: -2},
		}

		Convey("Then aggregation should ignore them all", func() {
			So(standings.Aggregate(records), ShouldBeEmpty)
		})
	})

	Convey("Given an empty input", t, func() {
		Convey("Then aggregation should yield an empty table, never an error", func() {
			So(standings.Aggregate(nil), ShouldBeEmpty)
		})
	})

	Convey("Given managers with equal points", t, func() {
		records := []standings.FinishRecord{
			// Dana: one gold (3 pts), avg 1
			{Manager: "Dana", Season: "2022", Place: 1},
			// Erin: silver + bronze (3 pts), avg 2.5
			{Manager: "Erin", Season: "2022", Place: 2},
			{Manager: "Erin", Season: "2023", Place: 3},
			// Frank: one gold (3 pts), avg 1 — ties Dana down to the name
			{Manager: "Frank", Season: "2023", Place: 1},
		}

		totals := standings.Aggregate(records)

		Convey("Then ranking should break ties by gold, then average finish, then name", func() {
			So(totals[0].Manager, ShouldEqual, "Dana")
			So(totals[1].Manager, ShouldEqual, "Frank")
			So(totals[2].Manager, ShouldEqual, "Erin")
		})
	})
}

func TestFromTable(t *testing.T) {
	Convey("Given a parsed finishes document", t, func() {
		table := tabular.Parse("season,manager,place\n2023,Alice,1\n2023,Bob,oops\n2024, Carol ,2\n")

		records := standings.FromTable(table)

		Convey("Then unparseable places should be dropped and names trimmed", func() {
			So(records, ShouldHaveLength, 2)
			So(records[0], ShouldResemble, standings.FinishRecord{Manager: "Alice", Season: "2023", Place: 1})
			So(records[1].Manager, ShouldEqual, "Carol")
		})
	})
}

func TestHallOfFame(t *testing.T) {
	Convey("Given an aggregated standings table", t, func() {
		records := []standings.FinishRecord{
			{Manager: "Alice", Season: "2021", Place: 1},
			{Manager: "Alice", Season: "2022", Place: 4},
			{Manager: "Alice", Season: "2023", Place: 2},
			{Manager: "Bob", Season: "2021", Place: 2},
			{Manager: "Bob", Season: "2022", Place: 2},
			{Manager: "Bob", Season: "2023", Place: 3},
			{Manager: "Carol", Season: "2022", Place: 8},
			{Manager: "Carol", Season: "2023", Place: 9},
		}
		totals := standings.Aggregate(records)

		Convey("When selecting title holders", func() {
			holders := standings.TitleHolders(totals)

			Convey("Then only managers with gold should appear, in table order", func() {
				So(holders, ShouldHaveLength, 1)
				So(holders[0].Manager, ShouldEqual, "Alice")
			})
		})

		Convey("When selecting best average finish with a three-season minimum", func() {
			best := standings.BestAverageFinish(totals, 3)

			Convey("Then Carol should be gated out and the rest sorted by average", func() {
				So(best, ShouldHaveLength, 2)
				So(best[0].Manager, ShouldEqual, "Alice")
				So(best[1].Manager, ShouldEqual, "Bob")
			})
		})
	})
}

func TestMergeWinPct(t *testing.T) {
	Convey("Given totals and a win percentage map", t, func() {
		totals := []standings.ManagerTotals{{Manager: "Alice"}, {Manager: "Bob"}}
		standings.MergeWinPct(totals, map[string]float64{"Alice": 0.625})

		Convey("Then matching managers get their win pct and the rest stay zero", func() {
			So(totals[0].WinPct, ShouldEqual, 0.625)
			So(totals[1].WinPct, ShouldEqual, 0)
		})
	})
}
