// Package cache provides the byte cache sitting in front of static asset
// fetches.
package cache

import (
	"context"
	"time"
)

// Cache stores fetched asset bodies keyed by document path.
type Cache interface {
	// Get returns the cached body for key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores body under key for at most ttl.
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error

	Close() error
}

// Noop is the default cache of a bare client: every lookup misses and
// writes are dropped.
type Noop struct{}

// NewNoop creates a no-op cache.
func NewNoop() *Noop { return &Noop{} }

func (*Noop) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, ErrMiss
}

func (*Noop) Set(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return nil
}

func (*Noop) Close() error { return nil }
