// ABOUTME: Error types for the feed-loading core
// ABOUTME: Defines the closed load error taxonomy plus configuration and transport errors

package errors

import (
	"errors"
	"fmt"
)

// LoadError is the closed set of failures a feed load reports to its caller.
// Only ErrConnectivity and ErrInvalidData are valid values.
type LoadError uint8

const (
	// ErrConnectivity means the transport could not produce a response at all.
	ErrConnectivity LoadError = iota + 1

	// ErrInvalidData means a response arrived but failed status or decode validation.
	ErrInvalidData
)

// Error implements the error interface
func (e LoadError) Error() string {
	switch e {
	case ErrConnectivity:
		return "connectivity"
	case ErrInvalidData:
		return "invalid data"
	default:
		return fmt.Sprintf("unknown load error (%d)", uint8(e))
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// UnexpectedValuesError is reported by a transport that finished a request
// with neither an error nor a response.
type UnexpectedValuesError struct {
	URL string
}

// Error implements the error interface
func (e *UnexpectedValuesError) Error() string {
	if e.URL == "" {
		return "unexpected values: no response and no error"
	}
	return fmt.Sprintf("unexpected values from %s: no response and no error", e.URL)
}

// IsConnectivity checks if an error is, or wraps, ErrConnectivity
func IsConnectivity(err error) bool {
	return errors.Is(err, ErrConnectivity)
}

// IsInvalidData checks if an error is, or wraps, ErrInvalidData
func IsInvalidData(err error) bool {
	return errors.Is(err, ErrInvalidData)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsUnexpectedValues checks if an error is an UnexpectedValuesError
func IsUnexpectedValues(err error) bool {
	var unexpectedErr *UnexpectedValuesError
	return errors.As(err, &unexpectedErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
