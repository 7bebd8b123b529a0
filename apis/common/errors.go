package common

import (
	"errors"
	"net/http"
)

// ValidationError reports missing or unusable request input. Its message is
// safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ParseError reports a request body that could not be decoded. Cause is
// logged but never sent to the client.
type ParseError struct {
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause == nil {
		return "malformed request body"
	}
	return "malformed request body: " + e.Cause.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsParseError reports whether err wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// ParseErrorMessage is the generic text returned for undecodable bodies.
var ParseErrorMessage = http.StatusText(http.StatusBadRequest)
