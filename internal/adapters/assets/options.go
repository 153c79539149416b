package assets

import (
	"net/http"
	"time"

	"github.com/okian/gridiron/internal/adapters/cache"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the per-fetch timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithCache sets the byte cache consulted before the network.
func WithCache(ca cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		if ca != nil {
			c.cache = ca
		}
		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}
