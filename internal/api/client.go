// Package api implements the HTTP client for the MedPetRx backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shouniet/medpetrx/internal/common"
)

// Client talks to the MedPetRx REST API. All methods take a context and
// return explicit errors; transport failures and non-2xx statuses are mapped
// onto the sentinel errors in the common package so callers can branch on
// them with errors.Is.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the given base URL using bearer-token auth.
func NewClient(baseURL, token string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: api.base_url is required", common.ErrMissingConfig)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// apiError carries the backend's detail message for a non-2xx response.
type apiError struct {
	sentinel error
	detail   string
	status   int
}

func (e *apiError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("api: %d %s", e.status, e.detail)
	}
	return fmt.Sprintf("api: unexpected status %d", e.status)
}

func (e *apiError) Unwrap() error {
	return e.sentinel
}

// do performs one JSON round trip. body is encoded when non-nil; the
// response is decoded into out when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setHeaders(req)

	slog.Debug("API request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out != nil {
		return decodeJSON(resp.Body, out)
	}
	return nil
}

// readAllLimited reads a response body with a 5 MB guard.
func readAllLimited(r io.Reader) ([]byte, error) {
	const maxBody = 5 << 20
	data, err := io.ReadAll(io.LimitReader(r, maxBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return data, nil
}

func decodeJSON(r io.Reader, out any) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	req.Header.Set("Accept", "application/json")
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &payload)

	sentinel := common.ErrServerError
	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = common.ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden && payload.Detail == "Consent required":
		sentinel = common.ErrConsentRequired
	case resp.StatusCode == http.StatusForbidden:
		sentinel = common.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		sentinel = common.ErrNotFound
	case resp.StatusCode == http.StatusRequestEntityTooLarge:
		sentinel = common.ErrFileTooLarge
	case resp.StatusCode == http.StatusTooManyRequests:
		sentinel = common.ErrRateLimit
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		sentinel = common.ErrBadRequest
	}

	return &apiError{status: resp.StatusCode, detail: payload.Detail, sentinel: sentinel}
}
