// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load(ctx) layers sources on top.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DataBaseURL is the base URL of the league's static data tree,
	// e.g. "https://example.com/data".
	DataBaseURL string `koanf:"data_base_url"`

	// DataDir, when non-empty, is a local directory served under /data/ so
	// the process can self-host the documents it aggregates.
	DataDir string `koanf:"data_dir"`

	// RedisURL enables the Redis asset cache when non-empty,
	// e.g. "redis://localhost:6379".
	RedisURL string `koanf:"redis_url"`

	// CacheTTLSeconds bounds how long fetched assets are cached.
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`

	// FetchTimeoutSeconds bounds a single asset fetch.
	FetchTimeoutSeconds int `koanf:"fetch_timeout_seconds"`

	// HiddenManagers lists manager names removed from per-opponent tables
	// while still counting toward aggregate totals.
	HiddenManagers []string `koanf:"hidden_managers"`

	// MinSeasonsForAverage gates the best-average-finish hall-of-fame table.
	MinSeasonsForAverage int `koanf:"min_seasons_for_average"`

	// MinOwnershipTotal is the default acquisition count for the ownership table.
	MinOwnershipTotal int `koanf:"min_ownership_total"`

	// MaxTableLimit caps row counts requested through the API.
	MaxTableLimit int `koanf:"max_table_limit"`
}

// New creates a Config holding the service defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		DataBaseURL:          "http://localhost:8000/data",
		DataDir:              "",
		RedisURL:             "",
		CacheTTLSeconds:      300,
		FetchTimeoutSeconds:  15,
		HiddenManagers:       nil,
		MinSeasonsForAverage: 3,
		MinOwnershipTotal:    2,
		MaxTableLimit:        500,
	}
}
