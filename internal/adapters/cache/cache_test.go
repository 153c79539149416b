package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/gridiron/internal/adapters/cache"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNoopCache(t *testing.T) {
	Convey("Given a no-op cache", t, func() {
		c := cache.NewNoop()
		ctx := context.Background()

		Convey("Then every lookup should miss", func() {
			_, err := c.Get(ctx, "finishes.csv")
			So(errors.Is(err, cache.ErrMiss), ShouldBeTrue)
		})

		Convey("And writes should be dropped without error", func() {
			So(c.Set(ctx, "finishes.csv", []byte("x"), time.Minute), ShouldBeNil)
			_, err := c.Get(ctx, "finishes.csv")
			So(errors.Is(err, cache.ErrMiss), ShouldBeTrue)
		})

		Convey("And closing should succeed", func() {
			So(c.Close(), ShouldBeNil)
		})
	})
}

func TestMemoryCache(t *testing.T) {
	Convey("Given an in-memory cache", t, func() {
		c := cache.NewMemory()
		ctx := context.Background()

		Convey("When a body is stored", func() {
			So(c.Set(ctx, "h2h.json", []byte("grid"), time.Minute), ShouldBeNil)

			Convey("Then it should be served until the TTL lapses", func() {
				body, err := c.Get(ctx, "h2h.json")
				So(err, ShouldBeNil)
				So(string(body), ShouldEqual, "grid")
			})

			Convey("And other keys should still miss", func() {
				_, err := c.Get(ctx, "manifest.json")
				So(errors.Is(err, cache.ErrMiss), ShouldBeTrue)
			})
		})

		Convey("When a body is stored with an expired TTL", func() {
			So(c.Set(ctx, "stale.json", []byte("old"), -time.Second), ShouldBeNil)

			Convey("Then the lookup should miss", func() {
				_, err := c.Get(ctx, "stale.json")
				So(errors.Is(err, cache.ErrMiss), ShouldBeTrue)
			})
		})

		Convey("When the cache is closed", func() {
			So(c.Close(), ShouldBeNil)

			Convey("Then lookups miss and writes are dropped", func() {
				So(c.Set(ctx, "h2h.json", []byte("grid"), time.Minute), ShouldBeNil)
				_, err := c.Get(ctx, "h2h.json")
				So(errors.Is(err, cache.ErrMiss), ShouldBeTrue)
			})
		})
	})
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	Convey("Given an unparseable Redis URL", t, func() {
		_, err := cache.NewRedis("://not-a-url")

		Convey("Then construction should fail", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
