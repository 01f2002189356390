// Package transport fetches raw bytes over HTTP for the resolver.
//
// [HTTP] is a thin wrapper over net/http: one GET per call, no caching and
// no retries. Status handling:
//   - 200: the body is returned
//   - 404: NOT_FOUND
//   - anything else, or a transport failure: NETWORK_ERROR
//
// Every request is reported to [observability.HTTP].
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/matzehuels/jabu/pkg/buildinfo"
	"github.com/matzehuels/jabu/pkg/errors"
	"github.com/matzehuels/jabu/pkg/observability"
)

// DefaultTimeout bounds a single request, including reading the body.
const DefaultTimeout = 30 * time.Second

// Fetcher retrieves the content stored at a URL.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// HTTP is a [Fetcher] backed by an *http.Client.
// It is safe for concurrent use.
type HTTP struct {
	client  *http.Client
	headers map[string]string
}

// NewHTTP creates an HTTP fetcher with the given request timeout and default
// headers. A timeout <= 0 uses [DefaultTimeout]. Headers may be nil; a
// User-Agent is always set unless headers overrides it.
func NewHTTP(timeout time.Duration, headers map[string]string) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	h := map[string]string{"User-Agent": buildinfo.UserAgent()}
	for k, v := range headers {
		h[k] = v
	}
	return &HTTP{
		client:  &http.Client{Timeout: timeout},
		headers: h,
	}
}

// Get performs an HTTP GET and returns the whole response body.
func (c *HTTP) Get(ctx context.Context, rawURL string) ([]byte, error) {
	host, path := splitURL(rawURL)
	hooks := observability.HTTP()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "build request for %s", rawURL)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "GET %s", rawURL)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode, rawURL); err != nil {
		hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, 0, time.Since(start))
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "read body of %s", rawURL)
	}
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, len(data), time.Since(start))
	return data, nil
}

func checkStatus(code int, rawURL string) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "GET %s: status %d", rawURL, code)
	default:
		return errors.Wrap(errors.ErrCodeNetwork, fmt.Errorf("status %d", code), "GET %s", rawURL)
	}
}

func splitURL(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}

var _ Fetcher = (*HTTP)(nil)
