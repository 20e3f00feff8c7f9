// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the feed loader contract and the metrics sink it reports to

package interfaces

import (
	"time"

	"feedloader/core/domain"
	coreerrors "feedloader/core/errors"
)

// LoadFeedResult is what a FeedLoader hands to its caller
type LoadFeedResult = domain.Result[coreerrors.LoadError]

// FeedLoader loads a list of feed items
type FeedLoader interface {
	// Load starts one load and calls completion with its result. Load does not
	// block; completion may run on another goroutine.
	Load(completion func(LoadFeedResult))
}

// Load outcomes reported to Metrics
const (
	OutcomeSuccess      = "success"
	OutcomeConnectivity = "connectivity"
	OutcomeInvalidData  = "invalid_data"
)

// Metrics records feed load outcomes
type Metrics interface {
	ObserveLoad(outcome string, elapsed time.Duration)
}

// NopMetrics discards observations
type NopMetrics struct{}

func (NopMetrics) ObserveLoad(string, time.Duration) {}
