// ABOUTME: Dependencies container provides dependency injection for the feed loader
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient performs the feed request
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger

	// Metrics records load outcomes
	Metrics Metrics
}
