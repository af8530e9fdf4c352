// Package domain defines the return session model: the raw form snapshots a
// customer fills in, the validated value objects built from them, the
// receipt record and the session states.
package domain

import (
	"github.com/onlinz/returns/internal/errors"
)

// Return-specific error definitions.
var (
	// ErrInvalidTransition indicates a session step was requested from the wrong state.
	ErrInvalidTransition = errors.Wrap(errors.ErrConflict, "invalid session transition")

	// ErrReceiptNotSaved indicates the receipt could not be appended to the store.
	// The session is left in place so the user can resubmit.
	ErrReceiptNotSaved = errors.Wrap(errors.ErrUnavailable, "failed to save receipt")
)
