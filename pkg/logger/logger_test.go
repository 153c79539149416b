package logger_test

import (
	"context"
	"testing"

	"github.com/okian/gridiron/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		err := logger.Init()
		So(err, ShouldBeNil)

		Convey("When getting the global logger", func() {
			l := logger.Get()

			Convey("Then it should not be nil", func() {
				So(l, ShouldNotBeNil)
			})

			Convey("And logging with fields should not panic", func() {
				So(func() {
					l.Info(context.Background(), "standings rebuilt",
						logger.Int("managers", 12),
						logger.String("source", "finishes.csv"),
					)
				}, ShouldNotPanic)
			})
		})

		Convey("When creating a named logger", func() {
			l := logger.Named("assets")

			Convey("Then it should not be nil", func() {
				So(l, ShouldNotBeNil)
			})
		})

		Convey("When setting log levels from strings", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("WARN"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}
