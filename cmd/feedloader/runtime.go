package main

import (
	"io"

	"feedloader/core/feed"
	"feedloader/core/interfaces"
	"feedloader/feedlib"
	"feedloader/infrastructure/http/breaker"
	"feedloader/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
)

// runtime carries what every command needs
type runtime struct {
	cfg      *config.Config
	logger   interfaces.Logger
	out      io.Writer
	registry *prometheus.Registry
}

// newLoader builds a loader for url from the configuration
func (r *runtime) newLoader(url string, metrics interfaces.Metrics) (*feed.RemoteFeedLoader, error) {
	opts := []feedlib.Option{
		feedlib.WithLogger(r.logger),
		feedlib.WithTimeout(r.cfg.HTTP.Timeout),
		feedlib.WithUserAgent(r.cfg.HTTP.UserAgent),
		feedlib.WithRateLimit(r.cfg.HTTP.RequestsPerSecond, r.cfg.HTTP.Burst),
	}
	if metrics != nil {
		opts = append(opts, feedlib.WithMetrics(metrics))
	}
	if r.cfg.Breaker.Enabled {
		opts = append(opts, feedlib.WithCircuitBreaker(breaker.Config{
			Name:             url,
			FailureThreshold: r.cfg.Breaker.FailureThreshold,
			OpenTimeout:      r.cfg.Breaker.OpenTimeout,
			MaxRequests:      r.cfg.Breaker.MaxRequests,
		}))
	}
	return feedlib.NewLoader(url, opts...)
}
