// Package core contains the feed loading logic.
// It is framework-agnostic and does no I/O of its own.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (FeedItem, Result)
// - feed: Response mapping and the remote feed loader
// - errors: The load error kinds and supporting error types
// - interfaces: Contracts for external dependencies (HTTP, logger, metrics)
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - Results are delivered to completion callbacks, once per load
// - A released loader never delivers
//
// # Usage Example
//
//	import (
//	    "feedloader/core/feed"
//	    "feedloader/core/interfaces"
//	)
//
//	loader, err := feed.NewRemoteFeedLoader("https://example.com/feed", interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	})
//	if err != nil {
//	    return err
//	}
//	defer loader.Close()
//
//	loader.Load(func(result interfaces.LoadFeedResult) {
//	    items, err := result.Get()
//	    // err is errors.ErrConnectivity or errors.ErrInvalidData
//	})
package core
