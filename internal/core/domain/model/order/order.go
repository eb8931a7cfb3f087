package order

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root of the fulfillment pipeline: one customer
// purchase request tracked from checkout to completion.
//
// Invariants:
//   - id is unique and immutable, assigned at creation
//   - status changes only through ChangeStatus, which consults the
//     transition table; every change appends exactly one audit entry
//   - items contains at least one line; quantities are positive
//   - totalAmount is a non-negative snapshot computed at creation and
//     never recomputed automatically
//   - auditHistory is append-only, never truncated or reordered
type Order struct {
	id kernel.UUID

	customerName  string
	customerPhone string
	customerEmail string

	shipping Shipping

	items []Item

	// specialRequests is always present; the empty string means none.
	specialRequests string

	totalAmount float64

	status Status

	createdAt time.Time
	updatedAt time.Time

	auditHistory []AuditLog

	isConstructed bool
}

// NewOrder creates a freshly placed order: status Pending, timestamps set
// to now, and a single CREATED audit entry. Field-level validation beyond
// the invariants here (phone shape, minimum name length) is the caller's
// responsibility.
func NewOrder(
	id kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	shipping Shipping,
	items []Item,
	specialRequests string,
	totalAmount float64,
) (*Order, error) {
	now := time.Now()
	o := &Order{
		shipping:        shipping,
		specialRequests: specialRequests,
		status:          Pending,
		createdAt:       now,
		updatedAt:       now,
		auditHistory:    []AuditLog{NewAuditLog(ActionCreated, "", "Order Created")},
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setCustomerEmail(customerEmail),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence or a change-feed row,
// keeping its recorded status, timestamps, and audit history.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	shipping Shipping,
	items []Item,
	specialRequests string,
	totalAmount float64,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
	auditHistory []AuditLog,
) (*Order, error) {
	o := &Order{
		shipping:        shipping,
		specialRequests: specialRequests,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		auditHistory:    append([]AuditLog(nil), auditHistory...),
		isConstructed:   true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setCustomerPhone(customerPhone),
		o.setCustomerEmail(customerEmail),
		o.setItems(items),
		o.setTotalAmount(totalAmount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's contact name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's contact phone.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerEmail returns the optional contact email, empty when absent.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// Shipping returns how the order reaches the customer.
func (o *Order) Shipping() Shipping {
	return o.shipping
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// SpecialRequests returns the free-text requests, possibly empty.
func (o *Order) SpecialRequests() string {
	return o.specialRequests
}

// TotalAmount returns the total snapshot taken at creation time.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AuditHistory returns a copy of the append-only audit trail.
func (o *Order) AuditHistory() []AuditLog {
	return append([]AuditLog(nil), o.auditHistory...)
}

// Clone returns a deep copy of the order. The copy shares no mutable
// state with the original: items and audit history get their own
// backing arrays.
func (o *Order) Clone() *Order {
	clone := *o
	clone.items = append([]Item(nil), o.items...)
	clone.auditHistory = append([]AuditLog(nil), o.auditHistory...)
	return &clone
}

// ChangeStatus moves the order to a new lifecycle status.
//
// The transition is validated against the state machine first; on
// rejection an *InvalidTransitionError is returned and the order is left
// untouched. On success exactly one STATUS_CHANGE audit entry is appended
// and updatedAt is refreshed.
func (o *Order) ChangeStatus(to Status) error {
	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.auditHistory = append(o.auditHistory, NewAuditLog(ActionStatusChange, o.status.String(), newStatus.String()))
	o.status = newStatus
	o.updatedAt = time.Now()
	return nil
}

// MarkEdited records a wholesale edit of the order's details: appends an
// EDITED audit entry and refreshes updatedAt. The status is not touched.
func (o *Order) MarkEdited() {
	o.auditHistory = append(o.auditHistory, NewAuditLog(ActionEdited, "Previous Version", "Updated Details"))
	o.updatedAt = time.Now()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	o.customerPhone = phone
	return nil
}

func (o *Order) setCustomerEmail(email string) error {
	o.customerEmail = email
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setTotalAmount(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%v is negative", total))
	}
	o.totalAmount = total
	return nil
}
