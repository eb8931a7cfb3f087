package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a wholesale edit of an order's details.
// The status, creation time, and audit history of the order are
// preserved; everything else is replaced.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	customerPhone   string
	customerEmail   string
	shipping        order.Shipping
	items           []order.Item
	specialRequests string

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to replace an order's details.
// Contact fields are validated with the same rules as checkout.
func NewEditOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	shipping order.Shipping,
	items []ItemInput,
	specialRequests string,
) (EditOrderCommand, error) {
	place, err := NewPlaceOrderCommand(orderID, customerName, customerPhone,
		customerEmail, shipping, items, specialRequests)
	if err != nil {
		return EditOrderCommand{}, err
	}

	return EditOrderCommand{
		orderID:         place.OrderID(),
		customerName:    place.CustomerName(),
		customerPhone:   place.CustomerPhone(),
		customerEmail:   place.CustomerEmail(),
		shipping:        place.Shipping(),
		items:           place.Items(),
		specialRequests: place.SpecialRequests(),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the replacement contact name.
func (c EditOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the replacement contact phone.
func (c EditOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerEmail returns the replacement contact email.
func (c EditOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Shipping returns the replacement shipping details.
func (c EditOrderCommand) Shipping() order.Shipping {
	return c.shipping
}

// Items returns the replacement order lines.
func (c EditOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// SpecialRequests returns the replacement free-text requests.
func (c EditOrderCommand) SpecialRequests() string {
	return c.specialRequests
}
