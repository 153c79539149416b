package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/gridiron/internal/adapters/assets"
	"github.com/okian/gridiron/internal/adapters/http/api"
	service "github.com/okian/gridiron/internal/app"
	"github.com/okian/gridiron/internal/domain/draftboard"
	"github.com/okian/gridiron/internal/domain/headtohead"
	"github.com/okian/gridiron/internal/domain/ownership"
	"github.com/okian/gridiron/internal/domain/records"
	"github.com/okian/gridiron/internal/domain/standings"
)

// stubDeps serves canned responses so handler behavior can be tested without
// a live data tree.
type stubDeps struct {
	err error
}

func (s *stubDeps) Standings(ctx context.Context) ([]standings.ManagerTotals, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []standings.ManagerTotals{{Manager: "Alice", Gold: 2, Points: 8}}, nil
}

func (s *stubDeps) HallOfFame(ctx context.Context) (service.HallOfFame, error) {
	if s.err != nil {
		return service.HallOfFame{}, s.err
	}
	return service.HallOfFame{
		TitleHolders: []standings.ManagerTotals{{Manager: "Alice", Gold: 2}},
		BestAverage:  []standings.ManagerTotals{{Manager: "Alice", AvgFinish: 1.5}},
	}, nil
}

func (s *stubDeps) Versus(ctx context.Context, manager string) (headtohead.Result, error) {
	if s.err != nil {
		return headtohead.Result{}, s.err
	}
	if manager != "Alice" {
		return headtohead.Result{}, service.ErrUnknownManager
	}
	return headtohead.Result{
		Manager: manager,
		Rows:    []headtohead.VersusRow{{Opponent: "Bob", Record: headtohead.Record{Wins: 3, Losses: 1}}},
		Overall: headtohead.Record{Wins: 3, Losses: 1},
	}, nil
}

func (s *stubDeps) Ownership(ctx context.Context, season, query string, minTotal int) ([]ownership.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []ownership.Entry{{Player: "Justin Jefferson", Total: 3}}, nil
}

func (s *stubDeps) AllTimeRecords(ctx context.Context) ([]records.Section, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []records.Section{{Title: "Most Wins"}}, nil
}

func (s *stubDeps) SeasonRecords(ctx context.Context, year, category string) ([]records.Section, error) {
	if s.err != nil {
		return nil, s.err
	}
	if year == "1999" {
		return nil, service.ErrUnknownSeason
	}
	if category == "bogus" {
		return nil, service.ErrUnknownCategory
	}
	return []records.Section{{Title: "Longest Win Streak"}}, nil
}

func (s *stubDeps) ExtraTeamPoints(ctx context.Context, year string) ([]records.Section, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []records.Section{{Title: "Most Points From Waiver Pickups"}}, nil
}

func (s *stubDeps) DraftBoard(ctx context.Context, year string) ([]draftboard.Round, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []draftboard.Round{{Number: 1}}, nil
}

func (s *stubDeps) ManagerDraftHistory(ctx context.Context, name string) ([]draftboard.BoardRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []draftboard.BoardRow{{Season: "2024", Separator: true}}, nil
}

func (s *stubDeps) PlayerDraftSearch(ctx context.Context, query string) ([]draftboard.BoardRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []draftboard.BoardRow{}, nil
}

func (s *stubDeps) Seasons(ctx context.Context) ([]assets.ManifestSeason, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []assets.ManifestSeason{{Year: 2024, Draft: "/data/draft_results_2024.csv"}}, nil
}

func (s *stubDeps) Champions(ctx context.Context) ([]assets.Champion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []assets.Champion{{Season: 2024, Manager: "Bob"}}, nil
}

func (s *stubDeps) SeasonStandings(ctx context.Context, season string) ([]assets.TeamStanding, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []assets.TeamStanding{{Manager: "Bob"}}, nil
}

func (s *stubDeps) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

func newTestMux(deps *stubDeps) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, deps).Register(context.Background(), mux)
	return mux
}

func get(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestReadEndpoints(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newTestMux(&stubDeps{})

		Convey("When the read endpoints are hit", func() {
			paths := []string{
				"/standings",
				"/halloffame",
				"/h2h/Alice",
				"/ownership",
				"/records/alltime",
				"/records/season?year=2024",
				"/records/teampoints-extra",
				"/draft?year=2024",
				"/draft/manager?name=Alice",
				"/draft/player?q=jefferson",
				"/seasons",
				"/champions",
				"/league-standings?season=2024",
				"/stats",
			}

			Convey("Then each returns OK with a JSON body", func() {
				for _, path := range paths {
					rec := get(mux, path)
					So(rec.Code, ShouldEqual, http.StatusOK)
					So(rec.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")
				}
			})
		})

		Convey("When a response body is decoded", func() {
			rec := get(mux, "/standings")

			var totals []standings.ManagerTotals
			err := json.Unmarshal(rec.Body.Bytes(), &totals)

			Convey("Then the payload round-trips", func() {
				So(err, ShouldBeNil)
				So(totals, ShouldHaveLength, 1)
				So(totals[0].Manager, ShouldEqual, "Alice")
			})
		})

		Convey("When a request id is supplied", func() {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/standings", nil)
			req.Header.Set("X-Request-ID", "req-123")
			mux.ServeHTTP(rec, req)

			Convey("Then it is echoed back", func() {
				So(rec.Header().Get("X-Request-ID"), ShouldEqual, "req-123")
			})
		})

		Convey("When no request id is supplied", func() {
			rec := get(mux, "/standings")

			Convey("Then one is generated", func() {
				So(rec.Header().Get("X-Request-ID"), ShouldNotBeEmpty)
			})
		})
	})
}

func TestErrorTaxonomy(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newTestMux(&stubDeps{})

		Convey("When an unknown manager is requested", func() {
			rec := get(mux, "/h2h/Nobody")

			Convey("Then the response is 404", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the manager segment is missing", func() {
			rec := get(mux, "/h2h/")

			Convey("Then the response is 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When an unknown season is requested", func() {
			rec := get(mux, "/records/season?year=1999")

			Convey("Then the response is 404", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When an unknown category is requested", func() {
			rec := get(mux, "/records/season?year=2024&category=bogus")

			Convey("Then the response is 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When required parameters are missing", func() {
			for _, path := range []string{"/draft", "/draft/manager", "/records/season", "/league-standings"} {
				rec := get(mux, path)
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			}
		})

		Convey("When the ownership minimum is malformed", func() {
			rec := get(mux, "/ownership?min=abc")

			Convey("Then the response is 400", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})

	Convey("Given a server whose upstream documents are broken", t, func() {
		mux := newTestMux(&stubDeps{err: assets.ErrFetch})

		Convey("When a read endpoint is hit", func() {
			rec := get(mux, "/standings")

			Convey("Then the response is 502 with an error body", func() {
				So(rec.Code, ShouldEqual, http.StatusBadGateway)

				var body map[string]string
				So(json.Unmarshal(rec.Body.Bytes(), &body), ShouldBeNil)
				So(body["code"], ShouldEqual, "upstream_error")
			})
		})
	})
}

func TestMethodRestrictions(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newTestMux(&stubDeps{})

		Convey("When a write method hits a read endpoint", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/standings", nil))

			Convey("Then it is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}
