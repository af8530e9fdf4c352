// Package errors provides the standard error kinds shared by every module.
// Use cases and repositories return errors wrapping one of these sentinels and
// the transport layer decides how each kind is presented.
package errors

import (
	"errors"
	"fmt"
)

// Standard error kinds used across the returns modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the operation is not allowed in the current state.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates a backing resource (receipt store) could not be used.
	ErrUnavailable = errors.New("unavailable")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
