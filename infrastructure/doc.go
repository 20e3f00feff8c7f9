// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http transport with optional rate limiting
// - http/breaker: Circuit breaker decorator for any transport
// - logger/structured: logrus-backed structured logger
// - metrics: Prometheus load metrics
//
// # HTTP Client
//
// The transport delivers every response, whatever its status, and reports
// only transport failures as errors:
//
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithRateLimit(2, 1),
//	)
//	guarded := breaker.NewClient(client, breaker.DefaultConfig("feed"), logger)
//	guarded.Get(ctx, "https://example.com/feed", func(result interfaces.HTTPClientResult) {
//	    data, response, err := result.Unpack()
//	})
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger, err := structured.NewLogger(structured.Options{Level: "debug", Format: "json"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "url": "https://example.com/feed",
//	})
package infrastructure
