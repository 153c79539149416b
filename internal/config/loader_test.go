package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/gridiron/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DataBaseURL, convey.ShouldEqual, "http://localhost:8000/data")
				convey.So(cfg.RedisURL, convey.ShouldEqual, "")
				convey.So(cfg.CacheTTLSeconds, convey.ShouldEqual, 300)
				convey.So(cfg.MinSeasonsForAverage, convey.ShouldEqual, 3)
				convey.So(cfg.MinOwnershipTotal, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GRIDIRON_ADDR", ":8080")
			_ = os.Setenv("GRIDIRON_DATA_BASE_URL", "https://league.example.com/data")
			_ = os.Setenv("GRIDIRON_CACHE_TTL_SECONDS", "60")
			_ = os.Setenv("GRIDIRON_MIN_OWNERSHIP_TOTAL", "3")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataBaseURL, convey.ShouldEqual, "https://league.example.com/data")
				convey.So(cfg.CacheTTLSeconds, convey.ShouldEqual, 60)
				convey.So(cfg.MinOwnershipTotal, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "gridiron.yaml")
			yamlBody := "addr: \":7070\"\ndata_base_url: \"https://files.example.com/data\"\nhidden_managers:\n  - \"Ghost Manager\"\n"
			err := os.WriteFile(path, []byte(yamlBody), 0o600)
			convey.So(err, convey.ShouldBeNil)

			clearConfigEnvVars()
			_ = os.Setenv("GRIDIRON_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.DataBaseURL, convey.ShouldEqual, "https://files.example.com/data")
				convey.So(cfg.HiddenManagers, convey.ShouldResemble, []string{"Ghost Manager"})
			})
		})

		convey.Convey("When an env var invalidates the config", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GRIDIRON_MIN_OWNERSHIP_TOTAL", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestHiddenManagerSet(t *testing.T) {
	convey.Convey("Given hidden manager entries", t, func() {
		cfg := config.New()
		cfg.HiddenManagers = []string{"Alice, Bob", " Carol "}

		set := cfg.HiddenManagerSet()

		convey.Convey("Then comma-separated and padded names should be split and trimmed", func() {
			convey.So(set, convey.ShouldContainKey, "Alice")
			convey.So(set, convey.ShouldContainKey, "Bob")
			convey.So(set, convey.ShouldContainKey, "Carol")
			convey.So(len(set), convey.ShouldEqual, 3)
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"GRIDIRON_CONFIG",
		"GRIDIRON_ADDR",
		"GRIDIRON_DATA_BASE_URL",
		"GRIDIRON_REDIS_URL",
		"GRIDIRON_CACHE_TTL_SECONDS",
		"GRIDIRON_FETCH_TIMEOUT_SECONDS",
		"GRIDIRON_MIN_SEASONS_FOR_AVERAGE",
		"GRIDIRON_MIN_OWNERSHIP_TOTAL",
		"GRIDIRON_MAX_TABLE_LIMIT",
	} {
		_ = os.Unsetenv(key)
	}
}
