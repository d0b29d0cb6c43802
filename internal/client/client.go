// Package client is the typed HTTP client for the CareerCore backend API.
// It attaches the session's bearer token, classifies failures uniformly and
// validates response bodies before decoding them.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/careercore/internal/schemas"
	"github.com/jonathan/careercore/internal/session"
)

// DefaultBaseURL is used when no API base URL is configured.
const DefaultBaseURL = "http://localhost:8000"

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// Client issues requests against one API base URL on behalf of one session.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      session.Store
	logger     *slog.Logger
	validate   bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithoutResponseValidation skips schema checks on response bodies.
func WithoutResponseValidation() Option {
	return func(c *Client) {
		c.validate = false
	}
}

// New creates a Client. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, store session.Store, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		store:      store,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Session returns the token store backing this client.
func (c *Client) Session() session.Store {
	return c.store
}

type requestConfig struct {
	skipAuth    bool
	keepSession bool
	headers  map[string]string
	query    url.Values
	schema   string
	fallback func(status int) string
}

// RequestOption adjusts a single request.
type RequestOption func(*requestConfig)

// SkipAuth sends the request without the bearer token, even if one is stored.
func SkipAuth() RequestOption {
	return func(rc *requestConfig) {
		rc.skipAuth = true
	}
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) RequestOption {
	return func(rc *requestConfig) {
		if rc.headers == nil {
			rc.headers = map[string]string{}
		}
		rc.headers[key] = value
	}
}

// WithQuery appends query parameters to the request path.
func WithQuery(q url.Values) RequestOption {
	return func(rc *requestConfig) {
		rc.query = q
	}
}

// WithSchema validates a successful response body against the named schema.
func WithSchema(name string) RequestOption {
	return func(rc *requestConfig) {
		rc.schema = name
	}
}

// withoutSessionExpiry reports a 401 as an ordinary request failure and leaves
// the stored token in place.
func withoutSessionExpiry() RequestOption {
	return func(rc *requestConfig) {
		rc.keepSession = true
	}
}

func withFallback(fn func(status int) string) RequestOption {
	return func(rc *requestConfig) {
		rc.fallback = fn
	}
}

func genericFailure(status int) string {
	return fmt.Sprintf("request failed with status %d", status)
}

// Do sends a JSON request and decodes the JSON response into out.
// body and out may be nil.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
		opts = append(opts, WithHeader("Content-Type", "application/json"))
	}
	return c.send(ctx, method, path, reader, out, opts...)
}

// send builds the request, attaches auth, and classifies the response.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader, out any, opts ...RequestOption) error {
	rc := &requestConfig{fallback: genericFailure}
	for _, opt := range opts {
		opt(rc)
	}

	target := c.baseURL + path
	if len(rc.query) > 0 {
		target += "?" + rc.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	for key, value := range rc.headers {
		req.Header.Set(key, value)
	}

	if !rc.skipAuth {
		if token := c.store.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &TransportError{Method: method, URL: target, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized && !rc.keepSession {
		if err := c.store.ClearToken(); err != nil {
			c.logger.Warn("failed to clear expired session", "error", err)
		}
		return &SessionExpiredError{Path: path}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestFailedError{
			Path:    path,
			Status:  resp.StatusCode,
			Message: failureMessage(resp.Body, rc.fallback(resp.StatusCode)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, URL: target, Cause: err}
	}

	if out == nil {
		return nil
	}

	if c.validate && rc.schema != "" {
		if err := schemas.Validate(rc.schema, data); err != nil {
			return &MalformedResponseError{Path: path, Cause: err}
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &MalformedResponseError{Path: path, Cause: err}
	}
	return nil
}

// failureMessage extracts the "detail" field of an error body, or returns fallback.
// Unreadable or non-JSON bodies are treated as having no detail.
func failureMessage(body io.Reader, fallback string) string {
	data, err := io.ReadAll(io.LimitReader(body, 1<<20))
	if err != nil {
		return fallback
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || len(payload.Detail) == 0 {
		return fallback
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		if detail == "" {
			return fallback
		}
		return detail
	}

	// Request validation failures arrive as a list of {loc, msg} objects.
	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	return fallback
}
