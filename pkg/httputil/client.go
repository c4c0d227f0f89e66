// Package httputil builds the HTTP clients used to reach upstream APIs.
package httputil

import (
	"net/http"
	"time"
)

const (
	defaultTimeout = 15 * time.Second

	maxIdleConns        = 20
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
)

// Option tweaks a client built by NewHTTPClient.
type Option func(*headerTransport)

// WithUserAgent sets the User-Agent of every request that does not carry one.
func WithUserAgent(ua string) Option {
	return func(t *headerTransport) { t.headers.Set("User-Agent", ua) }
}

// WithHeader sets a default header on every request that does not carry it.
func WithHeader(key, value string) Option {
	return func(t *headerTransport) { t.headers.Set(key, value) }
}

// headerTransport fills in default headers before handing the request to base.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.headers) == 0 {
		return t.base.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	req = req.Clone(req.Context())
	for key, values := range t.headers {
		if req.Header.Get(key) == "" {
			req.Header[key] = values
		}
	}
	return t.base.RoundTrip(req)
}

// NewHTTPClient returns a pooled client with the given timeout. A non-positive timeout
// falls back to the default.
func NewHTTPClient(timeout time.Duration, opts ...Option) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := &headerTransport{
		base: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
		headers: http.Header{},
	}
	for _, opt := range opts {
		opt(transport)
	}
	return &http.Client{Timeout: timeout, Transport: transport}
}
