// Package api provides the HTTP client for the study-abroad backend: a
// single configured request pipeline (base URL, default headers, timeout)
// with bearer-token injection, plus per-domain call wrappers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"abroadctl/internal/logging"
)

const defaultTimeout = 10 * time.Second

// TokenSource yields the current bearer token, or "" when unauthenticated.
// It is consulted at send time, so every request reflects the session state
// at the moment it was issued rather than a shared mutable header.
type TokenSource func() string

// Client dispatches requests to the backend. Construct once per process with
// NewClient; safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default 10s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client. Mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a Client for the backend at baseURL. tokens may be nil
// for a client that never authenticates.
func NewClient(baseURL string, tokens TokenSource, log *logging.Logger, opts ...Option) *Client {
	if tokens == nil {
		tokens = func() string { return "" }
	}
	if log == nil {
		log = logging.Discard()
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		token:   tokens,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string { return c.baseURL }

// Do sends a JSON request to baseURL+path and decodes a 2xx response body
// into out (skipped when out is nil). Non-2xx responses and transport
// failures return an *Error. The logging on both sides is a side effect
// only: the result passes through unmodified.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, out)
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// send applies the outbound interception (auth header, request ID, logging),
// executes the request, and applies the inbound interception (logging,
// error mapping).
func (c *Client) send(req *http.Request, out any) error {
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.log.Info("api request", "method", req.Method, "url", req.URL.String(), "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("api request failed", "method", req.Method, "url", req.URL.String(), "request_id", requestID, "error", err)
		return &Error{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	c.log.Info("api response", "status", resp.StatusCode, "url", req.URL.String(), "request_id", requestID)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, URL: req.URL.String(), Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Status:  resp.StatusCode,
			URL:     req.URL.String(),
			Message: backendMessage(data),
		}
		c.log.Error("api error", "status", resp.StatusCode, "url", req.URL.String(), "request_id", requestID, "message", apiErr.Message)
		return apiErr
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{Status: resp.StatusCode, URL: req.URL.String(), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// backendMessage extracts the backend's "message" field from an error
// payload, returning "" when the body is not the expected JSON shape.
func backendMessage(data []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return ""
	}
	return payload.Message
}
