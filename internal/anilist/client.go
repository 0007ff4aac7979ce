package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"anilens/internal/logging"
)

const (
	defaultBaseURL     = "https://graphql.anilist.co"
	defaultHTTPTimeout = 30 * time.Second

	// The API's maximum page size.
	maxPageSize = 50

	// Margin added to a Retry-After wait, and the fallback wait when the
	// header is missing (it should always be present, but has been observed
	// absent for some users).
	retryMargin   = time.Second
	retryFallback = 5 * time.Second
)

// Config describes the client configuration.
type Config struct {
	// Token is an optional OAuth token forwarded as a bearer header.
	Token string
	// BaseURL overrides the AniList GraphQL endpoint.
	BaseURL string
	// PageCap bounds how many pages a single paginated query may fetch.
	// Zero means unlimited, matching the API contract that termination is
	// driven solely by pageInfo.hasNextPage.
	PageCap int
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// Logger receives rate-limit notices. Defaults to a no-op logger.
	Logger *slog.Logger
	// Sleep performs rate-limit waits. Defaults to a context-aware sleep;
	// tests substitute a recording double.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Client issues GraphQL requests against the AniList API.
type Client struct {
	token    string
	baseURL  string
	http     *http.Client
	logger   *slog.Logger
	sleep    func(ctx context.Context, d time.Duration) error
	pageCap  int
	requests atomic.Int64
}

// New creates a Client from the supplied configuration.
func New(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = sleepWithContext
	}
	return &Client{
		token:   strings.TrimSpace(cfg.Token),
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
		sleep:   sleep,
		pageCap: cfg.PageCap,
	}
}

// Requests reports how many HTTP requests the client has issued, rate-limit
// retries included.
func (c *Client) Requests() int64 {
	return c.requests.Load()
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data json.RawMessage `json:"data"`
}

// Do posts one GraphQL document and returns the response's data payload.
//
// Rate limiting (HTTP 429) is handled locally: the client waits out the
// server's Retry-After plus a one-second margin (five seconds when the header
// is missing) and resends the identical request, indefinitely. Any other
// non-2xx status fails immediately with ErrRequestFailed, except 404, which
// the API uses for lookups that matched nothing and which yields a nil
// payload with no error. A nil payload is a valid "no result", not a failure.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("anilist: encode request: %w", err)
	}

	for {
		data, retryAfter, err := c.post(ctx, body)
		if err != nil {
			return nil, err
		}
		if retryAfter <= 0 {
			return data, nil
		}
		c.logger.Warn("rate limited by AniList; waiting before retry",
			slog.Duration("wait", retryAfter))
		if err := c.sleep(ctx, retryAfter); err != nil {
			return nil, fmt.Errorf("anilist: rate-limit wait interrupted: %w", err)
		}
	}
}

// post issues a single request. A positive retryAfter means the server rate
// limited the request and the caller should wait that long and resend.
func (c *Client) post(ctx context.Context, body []byte) (data json.RawMessage, retryAfter time.Duration, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("anilist: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.requests.Add(1)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("anilist: execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, parseRetryAfter(resp.Header.Get("Retry-After")), nil
	case resp.StatusCode == http.StatusNotFound:
		// The API answers single-object lookups that match nothing with a
		// 404 carrying data: null. Treated as an empty result.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, 0, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, 0, fmt.Errorf("anilist: %w: %s: %s", ErrRequestFailed, resp.Status, strings.TrimSpace(string(detail)))
	}

	var payload graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, 0, fmt.Errorf("anilist: decode response: %w", err)
	}
	if isJSONNull(payload.Data) {
		return nil, 0, nil
	}
	return payload.Data, 0, nil
}

func parseRetryAfter(header string) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return retryFallback
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return retryFallback
	}
	return time.Duration(seconds)*time.Second + retryMargin
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// sleepWithContext blocks for the given duration, returning early if the
// context is cancelled.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
