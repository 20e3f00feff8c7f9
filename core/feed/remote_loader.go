// ABOUTME: RemoteFeedLoader loads feed items from a URL through an HTTPClient
// ABOUTME: Classifies failures into connectivity or invalid data and drops results after Close

package feed

import (
	"context"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"feedloader/core/domain"
	coreerrors "feedloader/core/errors"
	"feedloader/core/interfaces"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// RemoteFeedLoader loads the feed at a fixed URL. It is safe for concurrent use;
// apart from its configuration it keeps no state between Load calls.
type RemoteFeedLoader struct {
	url     string
	client  interfaces.HTTPClient
	logger  interfaces.Logger
	metrics interfaces.Metrics

	// ctx lives as long as the loader and is handed to every request
	ctx      context.Context
	cancel   context.CancelFunc
	released atomic.Bool
}

var _ interfaces.FeedLoader = (*RemoteFeedLoader)(nil)

// unknownRequestID stands in when no request id can be generated
const unknownRequestID = "unknown"

// NewRemoteFeedLoader creates a loader for rawURL. No request is made until Load.
func NewRemoteFeedLoader(rawURL string, deps interfaces.Dependencies) (*RemoteFeedLoader, error) {
	if rawURL == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "feed URL cannot be empty"}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &coreerrors.ValidationError{Field: "url", Message: "invalid URL format"}
	}

	if deps.HTTPClient == nil {
		return nil, &coreerrors.ValidationError{Field: "http_client", Message: "HTTP client not configured"}
	}

	logger := deps.Logger
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	metrics := deps.Metrics
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &RemoteFeedLoader{
		url:     parsedURL.String(),
		client:  deps.HTTPClient,
		logger:  logger,
		metrics: metrics,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// URL returns the feed URL this loader requests
func (l *RemoteFeedLoader) URL() string {
	return l.url
}

// Load requests the feed once and passes the outcome to completion.
// completion is not called if the loader is closed before the result is
// handed over. A completion that has already started may still finish
// after Close returns.
func (l *RemoteFeedLoader) Load(completion func(interfaces.LoadFeedResult)) {
	requestID := l.newRequestID()
	start := time.Now()
	var once sync.Once

	l.logger.Debug("Loading feed", map[string]interface{}{
		"request_id": requestID,
		"url":        l.url,
	})

	l.client.Get(l.ctx, l.url, func(result interfaces.HTTPClientResult) {
		once.Do(func() {
			l.deliver(requestID, start, result, completion)
		})
	})
}

// Close releases the loader. In-flight requests are cancelled and their
// results are dropped. Close is idempotent and always returns nil.
func (l *RemoteFeedLoader) Close() error {
	if l.released.CompareAndSwap(false, true) {
		l.cancel()
		l.logger.Debug("Feed loader released", map[string]interface{}{
			"url": l.url,
		})
	}
	return nil
}

// Done is closed once the loader has been released
func (l *RemoteFeedLoader) Done() <-chan struct{} {
	return l.ctx.Done()
}

func (l *RemoteFeedLoader) newRequestID() string {
	id, err := gonanoid.New()
	if err != nil {
		l.logger.Warn("Failed to generate request id", map[string]interface{}{
			"url":   l.url,
			"error": err.Error(),
		})
		return unknownRequestID
	}
	return id
}

func (l *RemoteFeedLoader) deliver(requestID string, start time.Time, result interfaces.HTTPClientResult, completion func(interfaces.LoadFeedResult)) {
	if l.released.Load() {
		l.dropped(requestID)
		return
	}

	loadResult, outcome := l.resolve(requestID, result)
	elapsed := time.Since(start)
	l.metrics.ObserveLoad(outcome, elapsed)

	l.logger.Debug("Feed load finished", map[string]interface{}{
		"request_id":  requestID,
		"url":         l.url,
		"outcome":     outcome,
		"duration_ms": elapsed.Milliseconds(),
	})

	// Close may have run while the result was mapped
	if l.released.Load() {
		l.dropped(requestID)
		return
	}

	if completion != nil {
		completion(loadResult)
	}
}

func (l *RemoteFeedLoader) dropped(requestID string) {
	l.logger.Debug("Dropping feed result for released loader", map[string]interface{}{
		"request_id": requestID,
		"url":        l.url,
	})
}

func (l *RemoteFeedLoader) resolve(requestID string, result interfaces.HTTPClientResult) (interfaces.LoadFeedResult, string) {
	data, response, err := result.Unpack()
	if err != nil {
		l.logger.Warn("Feed request failed", map[string]interface{}{
			"request_id": requestID,
			"url":        l.url,
			"error":      err.Error(),
		})
		return domain.Failure(coreerrors.ErrConnectivity), interfaces.OutcomeConnectivity
	}

	items, err := MapItems(data, response)
	if err != nil {
		l.logger.Warn("Feed response rejected", map[string]interface{}{
			"request_id": requestID,
			"url":        l.url,
			"error":      err.Error(),
		})
		return domain.Failure(coreerrors.ErrInvalidData), interfaces.OutcomeInvalidData
	}

	return domain.Success[coreerrors.LoadError](items), interfaces.OutcomeSuccess
}
