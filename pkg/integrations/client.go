package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	ghserr "github.com/kagami/github-social-graph/pkg/errors"
	"github.com/kagami/github-social-graph/pkg/httputil"
	"github.com/kagami/github-social-graph/pkg/observability"
)

// Client provides shared HTTP functionality for the GitHub API and avatar
// downloads. It handles rate limiting, optional retries, status mapping and
// common request headers.
type Client struct {
	http    *http.Client
	headers map[string]string
	limiter *rate.Limiter
	backoff httputil.Backoff
}

// Option configures a [Client].
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = NewHTTPClient(d) }
}

// WithHTTPClient replaces the underlying HTTP client. Mostly useful in tests
// with [httptest.Server.Client].
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRetries sets how many times a transient failure (network error or 5xx)
// is retried. Zero, the default, disables retrying.
func WithRetries(n int) Option {
	return func(c *Client) { c.backoff = httputil.NewBackoff(n) }
}

// WithRateLimit caps outgoing requests at rps per second.
// A non-positive rps means unlimited, which is the default.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string, opts ...Option) *Client {
	c := &Client{
		http:    NewHTTPClient(0),
		headers: headers,
		limiter: rate.NewLimiter(rate.Inf, 1),
		backoff: httputil.NewBackoff(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	_, err := c.GetPage(ctx, url, v)
	return err
}

// GetPage performs an HTTP GET request, JSON-decodes the response into v and
// returns the URL of the next page advertised in the Link header ("" if none).
func (c *Client) GetPage(ctx context.Context, url string, v any) (next string, err error) {
	err = c.backoff.Do(ctx, func() error {
		resp, err := c.doRequest(ctx, url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("decode %s: %w", url, err)
		}
		next = httputil.NextPage(resp.Header)
		return nil
	})
	return next, err
}

// GetBytes performs an HTTP GET request and returns the raw response body.
// Used for binary downloads such as avatar images.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	var data []byte
	err := c.backoff.Do(ctx, func() error {
		resp, err := c.doRequest(ctx, url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return httputil.Transient(fmt.Errorf("%w: read body: %v", ErrNetwork, err), nil)
		}
		return nil
	})
	return data, err
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, httputil.Transient(fmt.Errorf("%w: %v", ErrNetwork, err), nil)
	}
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp, nil
}

func hostPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusTooManyRequests,
		code == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0":
		return fmt.Errorf("%w: %w", ErrRateLimited, rateLimitError(resp.Header))
	case code >= 500:
		return httputil.Transient(fmt.Errorf("%w: status %d", ErrNetwork, code), resp.Header)
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

// rateLimitError reads when the quota resets from Retry-After (seconds) or
// X-RateLimit-Reset (unix timestamp).
func rateLimitError(h http.Header) *ghserr.RateLimitedError {
	e := &ghserr.RateLimitedError{RetryAfter: httputil.RetryAfter(h)}
	if ts, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil && ts > 0 {
		e.Reset = time.Unix(ts, 0)
	}
	return e
}
