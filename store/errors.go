package store

import (
	"errors"
	"strings"
)

// ErrValidation is the sentinel every ValidationError unwraps to, so callers
// can match the kind without caring about the individual messages.
var ErrValidation = errors.New("validation error")

// ValidationError reports every field constraint a note or query violated.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "Validation failed: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
