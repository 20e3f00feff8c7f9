// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the default transport

package feedlib

import (
	"time"

	"feedloader/core/interfaces"
	httpInfra "feedloader/infrastructure/http/standard"
)

// DefaultHTTPClient creates a default HTTP client with the given timeout
func DefaultHTTPClient(timeout time.Duration) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(timeout)
}

func buildHTTPClient(cfg Config) interfaces.HTTPClient {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	return httpInfra.NewStandardHTTPClient(cfg.Timeout,
		httpInfra.WithUserAgent(cfg.UserAgent),
		httpInfra.WithRateLimit(cfg.RequestsPerSecond, cfg.Burst),
	)
}
