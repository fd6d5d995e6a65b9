package services

import (
	"errors"
	"fmt"
)

// Classified operation outcomes. Handlers map these onto HTTP statuses;
// anything unclassified is treated as a store failure.

var (
	// ErrAlreadyCancelled indicates a cancel request for a reservation
	// that is already cancelled; no mutation is performed
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")

	// ErrCannotCancelCompleted indicates a cancel request for a
	// checked-out reservation, which is a terminal state
	ErrCannotCancelCompleted = errors.New("cannot cancel a completed reservation")
)

// ValidationError indicates malformed or out-of-range input,
// recoverable by re-prompting the operator
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError indicates a referenced entity is absent. ID is the
// key the lookup ran on: a numeric id, a room number, or a contact
// field.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// ConflictError indicates the room is unavailable or already booked
// for the requested dates
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
