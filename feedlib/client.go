// ABOUTME: Entry point of the feed loader library
// ABOUTME: Assembles a remote feed loader from options and offers a blocking Load

package feedlib

import (
	"context"

	"feedloader/core/domain"
	"feedloader/core/feed"
	"feedloader/core/interfaces"
	"feedloader/infrastructure/http/breaker"
)

// NewLoader creates a remote feed loader for url with the given options.
// Close the loader when done with it.
func NewLoader(url string, options ...Option) (*feed.RemoteFeedLoader, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	client := buildHTTPClient(config)
	if config.Breaker != nil {
		bc := *config.Breaker
		if bc.Name == "" {
			bc.Name = url
		}
		client = breaker.NewClient(client, bc, config.Logger)
	}

	loader, err := feed.NewRemoteFeedLoader(url, interfaces.Dependencies{
		HTTPClient: client,
		Logger:     config.Logger,
		Metrics:    config.Metrics,
	})
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "cannot create feed loader").
			WithCause(err).
			WithContext("url", url)
	}
	return loader, nil
}

// releasable is implemented by loaders that drop results once closed
type releasable interface {
	Done() <-chan struct{}
}

// Load runs one load on loader and waits for its result or for ctx.
// A failed load returns coreerrors.ErrConnectivity or coreerrors.ErrInvalidData.
// If loader reports its release through Done, Load returns ErrLoaderClosed
// once it is closed; other loaders that drop their result block until ctx ends.
func Load(ctx context.Context, loader interfaces.FeedLoader) ([]domain.FeedItem, error) {
	var closed <-chan struct{}
	if r, ok := loader.(releasable); ok {
		closed = r.Done()
		select {
		case <-closed:
			return nil, ErrLoaderClosed
		default:
		}
	}

	results := make(chan interfaces.LoadFeedResult, 1)
	loader.Load(func(result interfaces.LoadFeedResult) {
		results <- result
	})

	select {
	case result := <-results:
		return result.Get()
	case <-closed:
		select {
		case result := <-results:
			return result.Get()
		default:
			return nil, ErrLoaderClosed
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
