package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status represents the lifecycle state of a bakery order.
// It implements a state machine with defined transitions so orders follow
// the fulfillment pipeline and never skip stages or regress.
//
// State transitions:
//
//	Pending ──> Paid ──> Processing ──> Shipped ──> Completed
//	   │          │           │            │
//	   └──────────┴───────────┴────────────┴──────> Cancelled
//
// Completed and Cancelled are terminal: no outgoing transitions.
// A same-state transition is always allowed so retried requests stay
// idempotent.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every freshly placed order.
	Pending

	// Paid indicates payment was confirmed by the operator.
	Paid

	// Processing indicates the kitchen is preparing the order.
	Processing

	// Shipped indicates the order left the bakery (courier, locker drop-off,
	// or ready for pickup).
	Shipped

	// Completed indicates the order reached the customer. Terminal.
	Completed

	// Cancelled indicates the order was aborted. Reachable from any
	// non-terminal status. Terminal.
	Cancelled
)

// allowedTransitions is the directed edge set of the order state machine.
// Absence of an edge means the transition is illegal.
var allowedTransitions = map[Status][]Status{
	Pending:    {Paid, Cancelled},
	Paid:       {Processing, Cancelled},
	Processing: {Shipped, Cancelled},
	Shipped:    {Completed, Cancelled},
	Completed:  {},
	Cancelled:  {},
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Paid:       "PAID",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		Paid:       "PAID",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// ValidStatuses returns all statuses an order may legally carry.
func ValidStatuses() []Status {
	return []Status{Pending, Paid, Processing, Shipped, Completed, Cancelled}
}

// StatusFromString parses the wire form of a status ("PENDING", "PAID", ...)
// as carried in JSON payloads and change-feed events.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the six valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status. Implements fmt.Stringer and
// is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the transition s -> to is legal.
// A same-state request is always allowed (idempotent no-op under retries).
// Pure and total: any pair of values yields an answer.
func (s Status) CanTransitionTo(to Status) bool {
	if s == to {
		return true
	}
	allowed, ok := allowedTransitions[s]
	if !ok {
		return false
	}
	for _, next := range allowed {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition s -> to and returns the new status.
// Returns an *InvalidTransitionError carrying both endpoints when the edge
// is absent from the transition table. Callers must not mutate any order
// state unless this call succeeds.
func (s Status) TransitionTo(to Status) (Status, error) {
	if !s.CanTransitionTo(to) {
		return Unknown, NewInvalidTransitionError(s, to)
	}
	return to, nil
}
