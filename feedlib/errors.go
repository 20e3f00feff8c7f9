// ABOUTME: Error types and handling for the feed loader library
// ABOUTME: Provides structured errors with context for library configuration

package feedlib

import (
	"errors"
	"fmt"
)

// ErrLoaderClosed is returned by Load when the loader is closed before it delivers
var ErrLoaderClosed = errors.New("feed loader closed")

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates an invalid option value
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeConfiguration indicates the loader could not be assembled
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeValidation
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == ErrorTypeConfiguration
}
