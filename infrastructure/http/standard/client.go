// ABOUTME: Standard HTTP client implementation of the asynchronous transport contract
// ABOUTME: Performs GET requests on a goroutine with timeout and optional rate limiting

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"feedloader/core/interfaces"
	"golang.org/x/time/rate"
)

const defaultUserAgent = "FeedLoader/1.0"

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// Option configures a StandardHTTPClient
type Option func(*StandardHTTPClient)

// WithUserAgent overrides the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(c *StandardHTTPClient) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRateLimit throttles outgoing requests. A non-positive rate disables it.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *StandardHTTPClient) {
		if requestsPerSecond <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.client.Transport = NewRateLimitedTransport(c.client.Transport, rate.NewLimiter(rate.Limit(requestsPerSecond), burst))
	}
}

// WithTransport replaces the underlying round tripper. Apply it before WithRateLimit.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *StandardHTTPClient) {
		c.client.Transport = transport
	}
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration, opts ...Option) *StandardHTTPClient {
	c := &StandardHTTPClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: http.DefaultTransport,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get performs an HTTP GET request on its own goroutine and delivers the
// outcome to completion. Any status code counts as success.
func (c *StandardHTTPClient) Get(ctx context.Context, url string, completion func(interfaces.HTTPClientResult)) {
	go func() {
		completion(c.get(ctx, url))
	}()
}

func (c *StandardHTTPClient) get(ctx context.Context, url string) interfaces.HTTPClientResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return interfaces.NewHTTPFailure(err)
	}

	// Set User-Agent
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return interfaces.NewHTTPFailure(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.NewHTTPFailure(err)
	}

	responseURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		responseURL = resp.Request.URL.String()
	}

	return interfaces.NewHTTPSuccess(data, &httpResponse{
		statusCode: resp.StatusCode,
		url:        responseURL,
		headers:    resp.Header,
	})
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	url        string
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// URL returns the URL that produced the response
func (r *httpResponse) URL() string {
	return r.url
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
