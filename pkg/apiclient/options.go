package apiclient

import (
	"log/slog"
	"net/http"
	"time"
)

// Option is a functional option for configuring the Client
type Option func(*Client)

// WithBaseURL overrides the API base URL. Empty values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets a custom HTTP client. Nil clients are ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// WithTokenSource sets the function supplying the session token attached as
// a bearer credential to outbound requests.
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) {
		c.tokenSource = source
	}
}

// WithTeardownHandler registers the handler invoked on authorization
// failures outside the session bootstrap endpoints.
func WithTeardownHandler(fn TeardownFunc) Option {
	return func(c *Client) {
		c.teardown = fn
	}
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}
