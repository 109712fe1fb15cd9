package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the production ShopHub API endpoint, used when no
// override is configured.
const DefaultBaseURL = "https://shophub-production-cad4.up.railway.app/api"

// TokenSource supplies the current session token. An empty string means no
// session exists and the request goes out unauthenticated.
type TokenSource func() string

// TeardownFunc is invoked when an authorization failure outside the session
// bootstrap endpoints indicates the stored session is no longer valid.
type TeardownFunc func(ctx context.Context)

// Client is the transport adapter for the ShopHub backend.
// Zero value is not usable; use New to create instances.
type Client struct {
	baseURL     string
	client      *http.Client
	tokenSource TokenSource
	teardown    TeardownFunc
	logger      *slog.Logger
}

// New creates a client with the default production base URL and a pooled
// HTTP client. Options override the defaults.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: DefaultBaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c, nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request and decodes the JSON response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodDelete, path, nil, out)
}

// Do sends one request to the backend. body (if non-nil) is marshaled to
// JSON; a 2xx response is decoded into out (if non-nil). Non-2xx responses
// return *APIError; transport failures return ErrNetwork or ErrTimeout.
//
// A 401 on any path other than the login/register endpoints additionally
// triggers the registered teardown handler before the error is returned.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
			return errors.Join(ErrTimeout, err)
		}
		return errors.Join(ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// 1MB cap keeps a misbehaving server from exhausting memory
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return errors.Join(ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := newAPIError(resp.StatusCode, serverMessage(data))
		c.logger.DebugContext(ctx, "request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		if resp.StatusCode == http.StatusUnauthorized && !isAuthBootstrap(path) && c.teardown != nil {
			c.logger.InfoContext(ctx, "session rejected by server, tearing down", slog.String("path", path))
			c.teardown(ctx)
		}

		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Join(ErrDecode, err)
		}
	}

	return nil
}

// isAuthBootstrap reports whether path targets a session bootstrap endpoint,
// where a 401 means rejected credentials rather than an invalid session.
func isAuthBootstrap(path string) bool {
	return strings.Contains(path, "/auth/login") || strings.Contains(path, "/auth/register")
}

// serverMessage extracts the backend's error message envelope, if any.
func serverMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return ""
	}
	return envelope.Message
}
