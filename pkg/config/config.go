// ABOUTME: Configuration management for the feed loader with environment variable support
// ABOUTME: Defines configuration structures for the feed, transport, logging and metrics

package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every environment variable name
const envPrefix = "FEEDLOADER"

// Config holds all application configuration
type Config struct {
	// URL is the feed loaded when no URL is given on the command line
	URL string `envconfig:"URL" default:"https://essentialdeveloper.com/feed-case-study/test-api/feed"`

	// RefreshInterval is the delay between loads in watch mode
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"60s"`

	// HTTP contains transport configuration
	HTTP HTTPConfig `envconfig:"HTTP"`

	// Breaker contains circuit breaker configuration
	Breaker BreakerConfig `envconfig:"BREAKER"`

	// Log contains logging configuration
	Log LogConfig `envconfig:"LOG"`

	// Metrics contains metrics configuration
	Metrics MetricsConfig `envconfig:"METRICS"`
}

// HTTPConfig holds transport configuration
type HTTPConfig struct {
	// Timeout bounds a whole request including reading the body
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`

	// UserAgent is sent with every request
	UserAgent string `envconfig:"USER_AGENT" default:"FeedLoader/1.0"`

	// RequestsPerSecond throttles requests; zero disables throttling
	RequestsPerSecond float64 `envconfig:"REQUESTS_PER_SECOND" default:"0"`

	// Burst is the number of requests allowed at once when throttled
	Burst int `envconfig:"BURST" default:"1"`
}

// BreakerConfig holds circuit breaker configuration
type BreakerConfig struct {
	Enabled          bool          `envconfig:"ENABLED" default:"false"`
	FailureThreshold uint32        `envconfig:"FAILURE_THRESHOLD" default:"5"`
	OpenTimeout      time.Duration `envconfig:"OPEN_TIMEOUT" default:"30s"`
	MaxRequests      uint32        `envconfig:"MAX_REQUESTS" default:"1"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string `envconfig:"LEVEL" default:"info"`

	// Format is text or json
	Format string `envconfig:"FORMAT" default:"text"`
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	// Addr is the listen address for /metrics in watch mode; empty disables it
	Addr string `envconfig:"ADDR" default:""`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.URL == "" {
		return errors.New("feed URL cannot be empty")
	}

	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("feed URL must be absolute")
	}

	if c.RefreshInterval < time.Second {
		return errors.New("refresh interval must be at least 1 second")
	}

	if c.HTTP.Timeout <= 0 {
		return errors.New("HTTP timeout must be positive")
	}

	if c.HTTP.RequestsPerSecond < 0 {
		return errors.New("requests per second cannot be negative")
	}

	if c.HTTP.RequestsPerSecond > 0 && c.HTTP.Burst < 1 {
		return errors.New("burst must be at least 1 when rate limiting")
	}

	if c.Breaker.Enabled && c.Breaker.FailureThreshold == 0 {
		return errors.New("breaker failure threshold must be at least 1")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("log format must be 'text' or 'json'")
	}

	return nil
}
