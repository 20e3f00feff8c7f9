// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"

	coreerrors "feedloader/core/errors"
)

// HTTPClient defines the transport the feed loader depends on.
// This abstraction decouples the loader from net/http and lets tests
// drive delivery by hand.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL and delivers the
	// outcome to completion exactly once, on any goroutine, either before or
	// after Get returns. Non-2xx statuses are delivered as successes; only a
	// request that produced no response is a failure. Implementations must be
	// safe for concurrent use.
	Get(ctx context.Context, url string, completion func(HTTPClientResult))
}

// Response defines the metadata of an HTTP response.
// The body is delivered separately as bytes alongside it.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// URL returns the URL that produced the response, after redirects.
	URL() string

	// Header returns the value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string
}

// HTTPClientResult is the outcome of a single HTTPClient.Get call: either the
// response bytes with their metadata, or the error that prevented a response.
type HTTPClientResult struct {
	data     []byte
	response Response
	err      error
}

// NewHTTPSuccess creates a result for a request that produced a response
func NewHTTPSuccess(data []byte, response Response) HTTPClientResult {
	return HTTPClientResult{data: data, response: response}
}

// NewHTTPFailure creates a result for a request that produced no response.
// A nil err is replaced with an UnexpectedValuesError so failures always
// carry an error.
func NewHTTPFailure(err error) HTTPClientResult {
	if err == nil {
		err = &coreerrors.UnexpectedValuesError{}
	}
	return HTTPClientResult{err: err}
}

// IsSuccess reports whether a response was received
func (r HTTPClientResult) IsSuccess() bool {
	return r.err == nil
}

// Data returns the response body, nil on failure
func (r HTTPClientResult) Data() []byte {
	return r.data
}

// Response returns the response metadata, nil on failure
func (r HTTPClientResult) Response() Response {
	return r.response
}

// Err returns the transport error, nil on success
func (r HTTPClientResult) Err() error {
	return r.err
}

// Unpack returns all three parts at once
func (r HTTPClientResult) Unpack() ([]byte, Response, error) {
	return r.data, r.response, r.err
}
