// Package apiclient is the typed client for the proposals backend. Every
// accessor caches responses under resource tags and collapses concurrent
// identical requests into a single network call. Mutations invalidate the
// tags they touch so pages rendered from the cache re-fetch fresh data.
package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound reports a 404 from the backend.
var ErrNotFound = errors.New("resource not found")

// APIError is a non-2xx response from the backend. Detail carries the
// backend's human-readable message when the body had one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// TokenFunc supplies the auth token attached to every request. An empty
// return means no Authorization header: unauthenticated requests are sent
// as-is and the server decides.
type TokenFunc func() string

type Client struct {
	rest   *resty.Client
	cache  *tagCache
	flight singleflight.Group
	logger *zap.Logger
}

type Options struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
	Token    TokenFunc
	Logger   *zap.Logger
}

// New builds a client for the backend at opts.BaseURL. No retry policy is
// configured: a failed request is reported once and retrying is the
// caller's decision.
func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	rest := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	if opts.Token != nil {
		token := opts.Token
		rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if t := token(); t != "" {
				r.SetHeader("Authorization", "Token "+t)
			}
			return nil
		})
	}

	return &Client{
		rest:   rest,
		cache:  newTagCache(opts.CacheTTL),
		logger: logger,
	}
}

// Invalidate marks every cached response stored under the given tags stale.
// Mutations call this themselves; it is exported for pages that know data
// changed out of band (e.g. after the backend finishes an async recompute).
func (c *Client) Invalidate(tags ...Tag) {
	c.cache.invalidate(tags...)
}

// errorDetail is the JSON body shape of backend error responses.
type errorDetail struct {
	Detail string `json:"detail"`
}

// get issues a GET and decodes the body into out. Non-2xx responses come
// back as *APIError; transport and decode failures are wrapped as-is.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req := c.rest.R().SetContext(ctx).SetResult(out).SetError(&errorDetail{})
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return c.checkStatus(resp, path)
}

func (c *Client) checkStatus(resp *resty.Response, path string) error {
	if !resp.IsError() {
		return nil
	}
	if resp.StatusCode() == 404 {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	apiErr := &APIError{StatusCode: resp.StatusCode()}
	if body, ok := resp.Error().(*errorDetail); ok && body != nil {
		apiErr.Detail = body.Detail
	}
	c.logger.Warn("backend request failed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
	)
	return apiErr
}

// cachedGet serves key from the cache when fresh, otherwise fetches through
// a singleflight group so concurrent identical calls share one network
// request and one resolved value. fetch reports the tags the response
// depends on; they are recorded alongside the value for invalidation.
func cachedGet[T any](ctx context.Context, c *Client, key string, fetch func(ctx context.Context) (T, []Tag, error)) (T, error) {
	if v, ok := c.cache.get(key); ok {
		return v.(T), nil
	}

	v, err, _ := c.flight.Do(key, func() (any, error) {
		// A concurrent caller may have populated the cache while this
		// call waited on the flight lock.
		if v, ok := c.cache.get(key); ok {
			return v, nil
		}
		value, tags, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.cache.put(key, value, tags)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
