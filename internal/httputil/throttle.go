// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"github.com/pdiddy/fulltext-engine/pkg/types"
)

// ThrottledTransport rate-limits outbound requests with one token bucket per
// remote host, so a chatty strategy cannot hammer a single publisher server.
type ThrottledTransport struct {
	base  http.RoundTripper
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewThrottledTransport wraps base with per-host throttling at
// requestsPerSecond. A nil base uses http.DefaultTransport.
func NewThrottledTransport(base http.RoundTripper, requestsPerSecond float64) *ThrottledTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &ThrottledTransport{
		base:     base,
		rps:      rate.Limit(requestsPerSecond),
		burst:    1,
		limiters: make(map[string]*rate.Limiter),
	}
}

// RoundTrip waits for rate limit clearance for the request's host, then
// delegates to the base transport.
func (t *ThrottledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter(req.URL.Host).Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

func (t *ThrottledTransport) limiter(host string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	if l, ok := t.limiters[host]; ok {
		return l
	}
	l := rate.NewLimiter(t.rps, t.burst)
	t.limiters[host] = l
	return l
}

// userAgentTransport stamps a User-Agent on requests that do not set one.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" && t.userAgent != "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}

// NewClient builds the shared HTTP client: bounded per-call timeout, default
// User-Agent, and optional per-host throttling.
func NewClient(cfg types.HTTPConfig, requestsPerSecond float64) *http.Client {
	var transport http.RoundTripper = http.DefaultTransport
	if requestsPerSecond > 0 {
		transport = NewThrottledTransport(transport, requestsPerSecond)
	}
	transport = &userAgentTransport{base: transport, userAgent: cfg.UserAgent}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}
}
