// Package assets fetches and decodes the league's hand-versioned static data
// files. The files are external collaborators: this layer never writes them,
// and a missing or malformed file affects only the views derived from it.
package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/okian/gridiron/internal/adapters/cache"
	"github.com/okian/gridiron/pkg/metrics"
)

// defaultTimeout bounds a single asset fetch.
const defaultTimeout = 15 * time.Second

// defaultCacheTTL bounds how long a fetched body is reused.
const defaultCacheTTL = 5 * time.Minute

// Client fetches static data files relative to a base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      cache.Cache
	cacheTTL   time.Duration
}

// New creates a client rooted at baseURL (the data directory, e.g.
// "https://league.example.com/data").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		cache:      cache.NewNoop(),
		cacheTTL:   defaultCacheTTL,
	}

	// Apply all options
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// fetch returns the body of the named file, consulting the cache first.
// kind labels the document family in metrics to keep cardinality bounded.
func (c *Client) fetch(ctx context.Context, name, kind string) ([]byte, error) {
	start := time.Now()

	if body, err := c.cache.Get(ctx, name); err == nil {
		metrics.RecordCacheHit()
		metrics.RecordAssetFetch(kind, "cached")
		return body, nil
	}
	metrics.RecordCacheMiss()

	url := c.baseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		metrics.RecordAssetFetchError(kind)
		return nil, fmt.Errorf("%w: building request for %s: %w", ErrFetch, name, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordAssetFetchError(kind)
		return nil, fmt.Errorf("%w: %s: %w", ErrFetch, name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.RecordAssetFetchError(kind)
		return nil, fmt.Errorf("%w: %s: status %d", ErrFetch, name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordAssetFetchError(kind)
		return nil, fmt.Errorf("%w: reading %s: %w", ErrFetch, name, err)
	}

	// A cache write failure only costs the next fetch.
	_ = c.cache.Set(ctx, name, body, c.cacheTTL)

	metrics.RecordAssetFetch(kind, "ok")
	metrics.RecordAssetFetchDuration(float64(time.Since(start).Milliseconds()))
	return body, nil
}
