package headtohead_test

import (
	"testing"

	"github.com/okian/gridiron/internal/domain/headtohead"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVersus(t *testing.T) {
	Convey("Given a pair record between X and Y", t, func() {
		pairs := []headtohead.PairRecord{
			{A: "X", B: "Y", AWins: 3, BWins: 1, Ties: 1, APointsFor: 512.5, BPointsFor: 498.0},
		}
		roster := []string{"X", "Y"}

		Convey("When resolving from Y's perspective", func() {
			res := headtohead.Versus("Y", pairs, roster, nil)

			Convey("Then the record should be oriented to Y", func() {
				So(res.Rows, ShouldHaveLength, 1)
				row := res.Rows[0]
				So(row.Opponent, ShouldEqual, "X")
				So(row.Wins, ShouldEqual, 1)
				So(row.Losses, ShouldEqual, 3)
				So(row.Ties, ShouldEqual, 1)
				So(row.WinPct, ShouldAlmostEqual, 0.3, 1e-9)
				So(row.PointsFor, ShouldEqual, 498.0)
				So(row.PointsAgainst, ShouldEqual, 512.5)
			})
		})

		Convey("When resolving from X's perspective", func() {
			res := headtohead.Versus("X", pairs, roster, nil)

			Convey("Then the same pair should read as a winning record", func() {
				So(res.Rows[0].Wins, ShouldEqual, 3)
				So(res.Rows[0].WinPct, ShouldAlmostEqual, 0.7, 1e-9)
			})
		})
	})

	Convey("Given a hidden opponent", t, func() {
		pairs := []headtohead.PairRecord{
			{A: "X", B: "Y", AWins: 2, BWins: 0},
			{A: "X", B: "Ghost", AWins: 0, BWins: 4},
		}
		roster := []string{"X", "Y", "Ghost"}
		hidden := map[string]struct{}{"Ghost": {}}

		res := headtohead.Versus("X", pairs, roster, hidden)

		Convey("Then the hidden opponent should be dropped from the rows", func() {
			So(res.Rows, ShouldHaveLength, 1)
			So(res.Rows[0].Opponent, ShouldEqual, "Y")
		})

		Convey("But still counted in the overall summary", func() {
			So(res.Overall.Wins, ShouldEqual, 2)
			So(res.Overall.Losses, ShouldEqual, 4)
			So(res.Overall.WinPct, ShouldAlmostEqual, 2.0/6.0, 1e-9)
		})
	})

	Convey("Given an opponent missing from the roster", t, func() {
		pairs := []headtohead.PairRecord{
			{A: "X", B: "Unknown", AWins: 1, BWins: 1},
		}

		res := headtohead.Versus("X", pairs, []string{"X"}, nil)

		Convey("Then the row is dropped but the summary still counts it", func() {
			So(res.Rows, ShouldBeEmpty)
			So(res.Overall.Games(), ShouldEqual, 2)
		})
	})

	Convey("Given several opponents", t, func() {
		pairs := []headtohead.PairRecord{
			{A: "X", B: "Low", AWins: 1, BWins: 3},
			{A: "X", B: "ShortHistory", AWins: 1, BWins: 0},
			{A: "LongHistory", B: "X", AWins: 0, BWins: 4},
		}
		roster := []string{"X", "Low", "ShortHistory", "LongHistory"}

		res := headtohead.Versus("X", pairs, roster, nil)

		Convey("Then rows should sort by win pct desc, then games desc, then name", func() {
			So(res.Rows[0].Opponent, ShouldEqual, "LongHistory") // 1.000 over 4 games
			So(res.Rows[1].Opponent, ShouldEqual, "ShortHistory")
			So(res.Rows[2].Opponent, ShouldEqual, "Low")
		})
	})

	Convey("Given no pairs at all", t, func() {
		res := headtohead.Versus("X", nil, nil, nil)

		Convey("Then the result should be empty with a zero win pct", func() {
			So(res.Rows, ShouldBeEmpty)
			So(res.Overall.WinPct, ShouldEqual, 0)
		})
	})
}

func TestWinPct(t *testing.T) {
	Convey("Given win percentage inputs", t, func() {
		Convey("Then ties should count as half a win", func() {
			So(headtohead.WinPct(1, 3, 1), ShouldAlmostEqual, 0.3, 1e-9)
		})
		Convey("And an empty record should be zero, not NaN", func() {
			So(headtohead.WinPct(0, 0, 0), ShouldEqual, 0)
		})
	})
}

func TestSummaryByManager(t *testing.T) {
	Convey("Given pairs spanning three managers", t, func() {
		pairs := []headtohead.PairRecord{
			{A: "X", B: "Y", AWins: 3, BWins: 1, Ties: 0, APointsFor: 100, BPointsFor: 90},
			{A: "Y", B: "Z", AWins: 2, BWins: 2, Ties: 2, APointsFor: 80, BPointsFor: 85},
		}

		summaries := headtohead.SummaryByManager(pairs)

		Convey("Then each manager should accumulate all touching pairs", func() {
			So(summaries["Y"].Wins, ShouldEqual, 3)
			So(summaries["Y"].Losses, ShouldEqual, 5)
			So(summaries["Y"].Ties, ShouldEqual, 2)
			So(summaries["Y"].PointsFor, ShouldEqual, 170.0)
			So(summaries["X"].WinPct, ShouldAlmostEqual, 0.75, 1e-9)
		})

		Convey("And the win-pct reduction should agree", func() {
			pct := headtohead.WinPctByManager(pairs)
			So(pct["X"], ShouldAlmostEqual, 0.75, 1e-9)
			So(pct["Z"], ShouldAlmostEqual, (2.0+1.0)/6.0, 1e-9)
		})
	})
}
