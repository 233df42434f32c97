package instructor

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is returned when the decoded value failed to satisfy the
// target type after the retry budget was exhausted. It carries the formatted
// decode-error lines from the final attempt; earlier attempts' errors are not
// accumulated.
type ValidationError struct {
	Errors []string
}

// Error returns the formatted error lines joined with semicolons.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// AdapterError is a transport or provider-level failure surfaced by an
// adapter. It is terminal: re-prompting cannot fix a problem that is not in
// the model's output, so the retry loop never retries it.
type AdapterError struct {
	Msg string

	// Code is the HTTP status code if applicable, 0 otherwise.
	Code int

	// Err is the underlying error, if any.
	Err error
}

// Error returns the adapter failure message.
func (e *AdapterError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "adapter error"
}

// Unwrap returns the underlying error.
func (e *AdapterError) Unwrap() error {
	return e.Err
}

// NewAdapterError creates an adapter error with an HTTP status code.
func NewAdapterError(msg string, code int, cause error) *AdapterError {
	return &AdapterError{Msg: msg, Code: code, Err: cause}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAdapterError reports whether err is (or wraps) an AdapterError.
func IsAdapterError(err error) bool {
	var ae *AdapterError
	return errors.As(err, &ae)
}

// StatusCodeOf returns the HTTP status code from an adapter error, or 0.
func StatusCodeOf(err error) int {
	var ae *AdapterError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return 0
}
