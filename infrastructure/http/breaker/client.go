// ABOUTME: Circuit breaker decorator for the asynchronous HTTP transport
// ABOUTME: Fails fast with a transport error while the target keeps failing

package breaker

import (
	"context"
	"fmt"
	"time"

	"feedloader/core/interfaces"
	"github.com/sony/gobreaker"
)

// Config holds circuit breaker settings
type Config struct {
	// Name identifies the breaker in state change callbacks
	Name string

	// FailureThreshold is the number of consecutive transport failures that opens the circuit
	FailureThreshold uint32

	// OpenTimeout is how long the circuit stays open before allowing trial requests
	OpenTimeout time.Duration

	// MaxRequests is the number of trial requests allowed while half-open
	MaxRequests uint32

	// Interval clears the failure counts while closed; zero never clears them
	Interval time.Duration
}

// DefaultConfig returns the settings used when none are given
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		MaxRequests:      1,
	}
}

// Client wraps an HTTPClient with a circuit breaker. Only transport failures
// count against the circuit; every delivered response, whatever its status,
// counts as a success because status handling belongs to the response mapper.
type Client struct {
	next    interfaces.HTTPClient
	breaker *gobreaker.TwoStepCircuitBreaker
}

// NewClient wraps next. logger receives state changes and may be nil.
func NewClient(next interfaces.HTTPClient, cfg Config, logger interfaces.Logger) *Client {
	defaults := DefaultConfig(cfg.Name)
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = defaults.MaxRequests
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	threshold := cfg.FailureThreshold
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	}

	return &Client{
		next:    next,
		breaker: gobreaker.NewTwoStepCircuitBreaker(settings),
	}
}

// Get forwards the request unless the circuit is open, in which case the
// completion receives a failure immediately.
func (c *Client) Get(ctx context.Context, url string, completion func(interfaces.HTTPClientResult)) {
	done, err := c.breaker.Allow()
	if err != nil {
		completion(interfaces.NewHTTPFailure(fmt.Errorf("request to %s rejected: %w", url, err)))
		return
	}

	c.next.Get(ctx, url, func(result interfaces.HTTPClientResult) {
		done(result.IsSuccess())
		completion(result)
	})
}

// State returns the current breaker state name
func (c *Client) State() string {
	return c.breaker.State().String()
}
