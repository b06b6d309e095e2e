package met

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/mmcdole/dailyart/internal/domain"
)

const (
	// DefaultBaseURL is the public Met Collection API root
	DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

	defaultTimeout   = 30 * time.Second
	defaultRateLimit = 20 // requests per second; the API asks clients to stay under 80
	maxRetries       = 3
	baseRetryDelay   = 500 * time.Millisecond
)

// Client implements domain.CollectionClient for the Met Collection API
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	retryDelay time.Duration
	logger     *slog.Logger
}

var _ domain.CollectionClient = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit caps outgoing requests per second. Zero or less disables the limit.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithRetryDelay sets the base delay for 5xx retries (doubled per attempt)
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.retryDelay = d
		}
	}
}

// NewClient creates a new Met Collection API client
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), 1),
		retryDelay: baseRetryDelay,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.breaker = newBreaker(logger)
	return c
}

// ObjectIDs lists identifiers matching the filter. A zero filter lists
// every object in the collection; otherwise the search endpoint is used.
func (c *Client) ObjectIDs(ctx context.Context, filter domain.Filter) ([]string, error) {
	path := "/objects"
	var query url.Values
	op := "list objects"
	if !filter.IsZero() {
		path = "/search"
		query = url.Values{}
		q := strings.TrimSpace(filter.Query)
		if q == "" {
			q = "*"
		}
		query.Set("q", q)
		if filter.HasImages {
			query.Set("hasImages", "true")
		}
		if filter.Medium != "" {
			query.Set("medium", filter.Medium)
		}
		op = "search " + query.Encode()
	}

	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, c.wrap(ctx, op, err)
	}

	var resp ObjectsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &domain.UpstreamError{Op: op, Err: fmt.Errorf("failed to parse response: %w", err)}
	}

	ids := MapObjectIDs(resp.ObjectIDs)
	c.logger.Debug("listed objects", "op", op, "count", len(ids), "total", resp.Total)
	return ids, nil
}

// Object returns full detail for a single object
func (c *Client) Object(ctx context.Context, id string) (*domain.Artwork, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("object id must not be empty")
	}
	op := "get object " + id

	body, err := c.doRequest(ctx, "/objects/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, c.wrap(ctx, op, err)
	}

	var obj Object
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, &domain.UpstreamError{Op: op, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if obj.ObjectID == 0 {
		// The API answers some retired IDs with 200 and an empty body
		return nil, domain.ErrNotFound
	}

	art := MapArtwork(obj)
	return &art, nil
}

// wrap classifies request errors: missing records and caller
// cancellation pass through, everything else is an upstream failure.
func (c *Client) wrap(ctx context.Context, op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return &domain.UpstreamError{Op: op, Err: err}
}

// doRequest runs a GET through the circuit breaker
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		return c.doWithRetry(ctx, path, query)
	})
}

// doWithRetry performs an HTTP GET against the API.
// Includes retry logic with exponential backoff for 5xx server errors
func (c *Client) doWithRetry(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL = reqURL + "?" + query.Encode()
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		// Wait before retry (exponential backoff)
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(1<<(attempt-1)) // 500ms, 1s, 2s
			c.logger.Debug("retrying request", "attempt", attempt, "delay", delay, "url", reqURL)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		c.logger.Debug("collection request", "url", reqURL, "attempt", attempt)

		requestStart := time.Now()
		resp, err := c.httpClient.Do(req)
		latency := time.Since(requestStart)
		if err != nil {
			c.logger.Error("collection request failed", "error", err, "latency", latency)
			return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrNotFound
		}

		// Retry on 5xx server errors
		if resp.StatusCode >= 500 && resp.StatusCode < 600 {
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			c.logger.Warn("collection server error, will retry",
				"status", resp.StatusCode,
				"attempt", attempt,
				"maxRetries", maxRetries,
				"path", path,
			)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			c.logger.Error("collection request error", "status", resp.StatusCode, "body", truncate(string(body), 200))
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		return body, nil
	}

	c.logger.Error("collection request failed after retries", "error", lastErr, "url", reqURL)
	return nil, lastErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
