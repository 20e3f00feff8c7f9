package standard

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitedTransport wraps an http.RoundTripper with rate limiting
type RateLimitedTransport struct {
	transport   http.RoundTripper
	rateLimiter *rate.Limiter
}

// NewRateLimitedTransport wraps transport, falling back to http.DefaultTransport when nil
func NewRateLimitedTransport(transport http.RoundTripper, limiter *rate.Limiter) *RateLimitedTransport {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &RateLimitedTransport{
		transport:   transport,
		rateLimiter: limiter,
	}
}

// RoundTrip implements the http.RoundTripper interface with rate limiting
func (r *RateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := r.rateLimiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return r.transport.RoundTrip(req)
}
