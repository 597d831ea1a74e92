// Package rpcclient is the HTTP JSON client shared by the explorer
// collaborators. Transient failures are retried with exponential backoff.
package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Klingon-tech/walletscan/internal/log"
)

const (
	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	maxErrorBody      = 512
)

// StatusError is returned for a non-200 HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: http %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: http %d: %s", e.URL, e.StatusCode, e.Body)
}

// Temporary reports whether the request may succeed if retried.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Client is an HTTP JSON client bound to one base URL.
type Client struct {
	base       *url.URL
	http       *http.Client
	maxRetries uint64
	backoff    func() backoff.BackOff
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithMaxRetries sets how many times a transient failure is retried.
func WithMaxRetries(n uint64) Option {
	return func(c *Client) { c.maxRetries = n }
}

// WithBackOff replaces the retry schedule. Tests use a constant zero delay.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *Client) { c.backoff = newBackOff }
}

// New creates a client for baseURL, which must be an absolute http or https
// URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := ParseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		base:       base,
		http:       &http.Client{Timeout: defaultTimeout},
		maxRetries: defaultMaxRetries,
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxInterval = 5 * time.Second
			b.MaxElapsedTime = 30 * time.Second
			return b
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ParseBaseURL validates an explorer or node base URL.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url %q: missing host", raw)
	}
	return u, nil
}

// BaseURL returns the client's base URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Resolve joins path onto the base URL and attaches query.
func (c *Client) Resolve(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// GetJSON fetches path and decodes the JSON body into out. Transport errors,
// 429 and 5xx responses are retried; other failures are returned at once.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.Resolve(path, query)
	attempt := 0

	op := func() error {
		attempt++
		err := c.get(ctx, target, out)
		if err == nil {
			return nil
		}
		var se *StatusError
		if errors.As(err, &se) && !se.Temporary() {
			return backoff.Permanent(err)
		}
		var de *decodeError
		if errors.As(err, &de) {
			return backoff.Permanent(err)
		}
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}
		log.Explorer.Debug().Err(err).Str("url", c.base.Host).Int("attempt", attempt).Msg("Request failed, retrying")
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(c.backoff(), c.maxRetries), ctx)
	return backoff.Retry(op, b)
}

type decodeError struct{ err error }

func (e *decodeError) Error() string { return "decode response: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

func (c *Client) get(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error carries the full URL, query (and any API key) included.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return fmt.Errorf("get %s%s: %w", c.base.Host, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			URL:        c.base.Host + req.URL.Path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &decodeError{err: err}
	}
	return nil
}
