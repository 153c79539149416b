package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if GRIDIRON_CONFIG is set
//  3. env (prefix GRIDIRON_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx

	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("GRIDIRON_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: GRIDIRON_ADDR, GRIDIRON_DATA_BASE_URL, ...
	// Map env keys like GRIDIRON_CACHE_TTL_SECONDS -> cache_ttl_seconds (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("GRIDIRON_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "gridiron_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.DataBaseURL == "" {
		return nil, fmt.Errorf("%w: data_base_url must not be empty", ErrInvalidConfig)
	}
	if cfg.MinOwnershipTotal < 1 {
		return nil, fmt.Errorf("%w: min_ownership_total must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}

// HiddenManagerSet returns the hidden-manager list as a lookup set with
// trimmed names; comma-separated single entries are split so the list can be
// supplied through a scalar env var.
func (c *Config) HiddenManagerSet() map[string]struct{} {
	out := make(map[string]struct{})
	for _, raw := range c.HiddenManagers {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				out[name] = struct{}{}
			}
		}
	}
	return out
}
