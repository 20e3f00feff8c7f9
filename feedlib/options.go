// ABOUTME: Configuration options for the feed loader library
// ABOUTME: Provides functional options pattern for flexible loader configuration

package feedlib

import (
	"time"

	"feedloader/core/interfaces"
	"feedloader/infrastructure/http/breaker"
)

// Option is a functional option for configuring a loader
type Option func(*Config) error

// Config holds the configuration for a loader
type Config struct {
	// HTTPClient replaces the default transport; Timeout, UserAgent and
	// RateLimit only apply to the default one
	HTTPClient interfaces.HTTPClient

	// Logger configuration
	Logger interfaces.Logger

	// Metrics sink for load outcomes
	Metrics interfaces.Metrics

	// Timeout for the default transport
	Timeout time.Duration

	// UserAgent for the default transport
	UserAgent string

	// RequestsPerSecond throttles the default transport when positive
	RequestsPerSecond float64
	Burst             int

	// Breaker wraps the transport in a circuit breaker when set
	Breaker *breaker.Config
}

// WithHTTPClient sets a custom transport
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeValidation, "HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(metrics interfaces.Metrics) Option {
	return func(c *Config) error {
		c.Metrics = metrics
		return nil
	}
}

// WithTimeout sets the request timeout of the default transport
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeValidation, "timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.Timeout = timeout
		return nil
	}
}

// WithUserAgent sets the User-Agent of the default transport
func WithUserAgent(userAgent string) Option {
	return func(c *Config) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithRateLimit throttles the default transport
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(c *Config) error {
		if requestsPerSecond < 0 || burst < 0 {
			return NewError(ErrorTypeValidation, "rate limit cannot be negative").
				WithContext("requests_per_second", requestsPerSecond).
				WithContext("burst", burst)
		}
		c.RequestsPerSecond = requestsPerSecond
		c.Burst = burst
		return nil
	}
}

// WithCircuitBreaker wraps the transport in a circuit breaker
func WithCircuitBreaker(cfg breaker.Config) Option {
	return func(c *Config) error {
		c.Breaker = &cfg
		return nil
	}
}

// defaultConfig returns the default loader configuration
func defaultConfig() Config {
	return Config{
		Logger:  interfaces.NopLogger{},
		Metrics: interfaces.NopMetrics{},
		Timeout: 30 * time.Second,
	}
}
