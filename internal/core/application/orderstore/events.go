package orderstore

import (
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// Event is a change produced outside the current session, typically
// delivered by the order change feed. The set of variants is closed.
type Event interface {
	isEvent()
}

// OrderInserted carries an order created by another session.
type OrderInserted struct {
	Order *order.Order
}

// OrderUpdated carries the full replacement state of an order changed
// by another session.
type OrderUpdated struct {
	Order *order.Order
}

// OrderDeleted carries the identifier of an order removed by another session.
type OrderDeleted struct {
	ID kernel.UUID
}

func (OrderInserted) isEvent() {}
func (OrderUpdated) isEvent()  {}
func (OrderDeleted) isEvent()  {}
