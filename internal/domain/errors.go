package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval is returned when a reservation's start is not
	// strictly before its end, or the span crosses a day boundary.
	ErrInvalidInterval = errors.New("start time must be before end time")
	// ErrPastDate is returned when a reservation is requested for a date
	// before the current date.
	ErrPastDate = errors.New("cannot reserve a past date")
	// ErrReservationConflict is the target for errors.Is on *ConflictError.
	ErrReservationConflict = errors.New("reservation conflict")
	// ErrInvalidState is returned on a status transition not legal for the
	// reservation's current status.
	ErrInvalidState = errors.New("transition not allowed in current status")
	// ErrUserConflict is returned when a username is already taken.
	ErrUserConflict = errors.New("username already exists")
	// ErrReasonRequired is returned when a rejection is missing its
	// mandatory justification.
	ErrReasonRequired = errors.New("a justification is required")
	// ErrResourceInUse is returned when deleting a resource still referenced
	// by reservations.
	ErrResourceInUse = errors.New("resource is referenced by existing reservations")
	// ErrNotFound is returned by lookups that match nothing.
	ErrNotFound = errors.New("not found")
)

// ConflictError reports an overlap with an already-confirmed reservation and
// carries the blocking reservation's details for user display.
type ConflictError struct {
	Blocking *Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("reservation conflict: %s (reservation %d)", e.Blocking.Describe(), e.Blocking.ID)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrReservationConflict
}

// StorageError wraps a persistence failure from the underlying store. The
// in-memory ledger is left untouched when one is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
