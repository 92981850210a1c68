package errors

import (
	"fmt"
)

// FacetError is the structured error type for facetgen's host layers.
// It provides context for logging and user presentation.
type FacetError struct {
	// Code is the unique error code (e.g., "ERR_101_CONFIG_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *FacetError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *FacetError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code, enabling
// errors.Is() to work with FacetError.
func (e *FacetError) Is(target error) bool {
	if t, ok := target.(*FacetError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *FacetError) WithDetail(key, value string) *FacetError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
// Returns the error for method chaining.
func (e *FacetError) WithSuggestion(suggestion string) *FacetError {
	e.Suggestion = suggestion
	return e
}

// New creates a new FacetError with the given code and message.
// The category is derived from the code.
func New(code string, message string, cause error) *FacetError {
	return &FacetError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Cause:    cause,
	}
}

// Newf creates a new FacetError with a formatted message.
func Newf(code string, format string, args ...any) *FacetError {
	return New(code, fmt.Sprintf(format, args...), nil)
}

// Wrap creates a FacetError from an existing error.
// Returns nil if err is nil.
func Wrap(code string, err error) *FacetError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}
