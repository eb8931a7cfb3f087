package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for illegal status transitions,
// usable with errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError is the only domain error the order core raises.
// It carries both endpoints of the rejected transition for diagnostic
// display in the admin UI.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// rejected edge from -> to.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
