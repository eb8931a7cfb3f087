package order

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
)

// Audit actions recorded in an order's history.
const (
	ActionCreated      = "CREATED"
	ActionStatusChange = "STATUS_CHANGE"
	ActionEdited       = "EDITED"
)

// AuditActor is the attribution recorded on every audit entry.
// Single-operator system; a richer identity model would thread an actor
// through NewAuditLog instead.
const AuditActor = "Admin"

// AuditLog is an immutable record of one lifecycle event on an order.
// Entries are only ever appended to an order's history, never modified,
// truncated, or reordered.
type AuditLog struct {
	id            kernel.UUID
	timestamp     time.Time
	action        string
	previousValue string
	newValue      string
	user          string
}

// NewAuditLog produces an audit entry stamped with the current time, a
// freshly generated id, and the fixed actor attribution.
func NewAuditLog(action, previousValue, newValue string) AuditLog {
	return AuditLog{
		id:            kernel.NewUUID(),
		timestamp:     time.Now(),
		action:        action,
		previousValue: previousValue,
		newValue:      newValue,
		user:          AuditActor,
	}
}

// RestoreAuditLog rebuilds an audit entry from persistence or a
// change-feed payload without re-stamping id or timestamp.
func RestoreAuditLog(id kernel.UUID, timestamp time.Time, action, previousValue, newValue, user string) AuditLog {
	return AuditLog{
		id:            id,
		timestamp:     timestamp,
		action:        action,
		previousValue: previousValue,
		newValue:      newValue,
		user:          user,
	}
}

// ID returns the entry's unique identifier.
func (a AuditLog) ID() kernel.UUID {
	return a.id
}

// Timestamp returns the entry's creation time.
func (a AuditLog) Timestamp() time.Time {
	return a.timestamp
}

// Action returns the symbolic tag of the recorded event.
func (a AuditLog) Action() string {
	return a.action
}

// PreviousValue describes the state before the event, when applicable.
func (a AuditLog) PreviousValue() string {
	return a.previousValue
}

// NewValue describes the state after the event, when applicable.
func (a AuditLog) NewValue() string {
	return a.newValue
}

// User returns the actor attribution.
func (a AuditLog) User() string {
	return a.user
}
