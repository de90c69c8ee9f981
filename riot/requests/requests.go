package requests

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	// Wait applied on a 429 without a Retry-After header.
	defaultRetryAfter = 5 * time.Second

	// Rate limit waits do not consume the ordinary retry budget, but they
	// are still bounded so a persistently throttling endpoint cannot hold a
	// request forever.
	maxRateLimitWaits = 10

	defaultMaxRetries = 3
)

// Client is a GET client with exponential backoff on transport failures and
// Retry-After aware waiting on rate limits. Safe for concurrent use.
type Client struct {
	http       *http.Client
	apiKey     string
	maxRetries int
	retryBase  time.Duration
	logger     zerolog.Logger
}

// ClientDeps is the dependency list for the request client.
type ClientDeps struct {
	ApiKey     string
	MaxRetries int
	HTTPClient *http.Client

	// Base interval of the exponential backoff. Defaults to one second,
	// tests inject a small value.
	RetryBase time.Duration

	Logger zerolog.Logger
}

// NewClient creates a request client.
func NewClient(deps *ClientDeps) *Client {
	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	maxRetries := deps.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	retryBase := deps.RetryBase
	if retryBase <= 0 {
		retryBase = time.Second
	}

	return &Client{
		http:       httpClient,
		apiKey:     deps.ApiKey,
		maxRetries: maxRetries,
		retryBase:  retryBase,
		logger:     deps.Logger,
	}
}

// Options control a single request.
type Options struct {
	// SkipRetryOnNotFound makes a 404 propagate immediately instead of
	// consuming retries. Used where absence is an expected answer.
	SkipRetryOnNotFound bool

	// MaxRetries overrides the client ceiling when positive.
	MaxRetries int

	// Query parameters appended to the URL.
	Query map[string]string
}

// attempt is the outcome of a single request attempt.
type attemptResult struct {
	body       []byte
	status     *StatusError
	retryAfter string
}

// GetJSON performs an authenticated GET and decodes the JSON response into
// out. Transport failures and malformed JSON retry with exponential backoff,
// 429 responses wait out the advertised Retry-After without consuming the
// retry budget.
func (c *Client) GetJSON(ctx context.Context, url string, out any, opts Options) error {
	maxRetries := c.maxRetries
	if opts.MaxRetries > 0 {
		maxRetries = opts.MaxRetries
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = c.retryBase
	expo.RandomizationFactor = 0
	expo.Multiplier = 2
	expo.MaxInterval = 1024 * c.retryBase

	var lastErr error
	rateLimitWaits := 0

	for attempt := 0; attempt < maxRetries; {
		result, err := c.do(ctx, url, opts.Query)

		switch {
		case err != nil:
			// Transport level failure.
			lastErr = err

		case result.status != nil && result.status.StatusCode == http.StatusTooManyRequests:
			if rateLimitWaits >= maxRateLimitWaits {
				return result.status
			}
			rateLimitWaits++

			wait := parseRetryAfter(result.retryAfter)
			c.logger.Warn().
				Str("url", url).
				Dur("wait", wait).
				Msg("rate limited, waiting before retry")

			if err := sleep(ctx, wait); err != nil {
				return err
			}
			continue

		case result.status != nil:
			if opts.SkipRetryOnNotFound && result.status.StatusCode == http.StatusNotFound {
				return result.status
			}
			lastErr = result.status

		default:
			if err := json.Unmarshal(result.body, out); err != nil {
				// Malformed JSON is treated like a transport failure.
				lastErr = fmt.Errorf("failed to parse API response: %w", err)
				break
			}
			return nil
		}

		attempt++
		if attempt >= maxRetries {
			break
		}

		wait := expo.NextBackOff()
		c.logger.Warn().
			Str("url", url).
			Int("attempt", attempt).
			Dur("wait", wait).
			Err(lastErr).
			Msg("request failed, backing off")

		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}

	return lastErr
}

// do runs a single attempt. A non 2xx status is reported through the result,
// transport failures through the error return.
func (c *Client) do(ctx context.Context, url string, query map[string]string) (*attemptResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if len(query) > 0 {
		q := req.URL.Query()
		for key, value := range query {
			q.Set(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	if c.apiKey != "" {
		req.Header.Set("X-Riot-Token", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read API response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &attemptResult{
			status:     &StatusError{StatusCode: resp.StatusCode, Body: string(body)},
			retryAfter: resp.Header.Get("Retry-After"),
		}, nil
	}

	return &attemptResult{body: body}, nil
}

// parseRetryAfter converts a Retry-After header into a wait duration,
// falling back to a fixed five seconds when absent or unparseable.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}

func sleep(ctx context.Context, d time.Duration) error {
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
