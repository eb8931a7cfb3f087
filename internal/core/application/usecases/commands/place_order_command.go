package commands

import (
	"errors"
	"regexp"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrCustomerNameIsTooShort = errors.New("customer name must be at least 2 characters")
	ErrCustomerPhoneIsInvalid = errors.New("customer phone must be a mobile number like 0912345678")
	ErrCustomerEmailIsInvalid = errors.New("customer email is malformed")
	ErrOrderItemsAreRequired  = errors.New("at least one order item is required")
)

var (
	phonePattern = regexp.MustCompile(`^09\d{8}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ItemInput is one requested order line as received from the storefront.
type ItemInput struct {
	Name     string
	Quantity int
	Price    float64
	Notes    string
}

// PlaceOrderCommand represents a customer checkout request.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	customerPhone   string
	customerEmail   string
	shipping        order.Shipping
	items           []order.Item
	specialRequests string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Contact
// fields are validated here so that malformed input never reaches the
// aggregate: the name must be at least two characters, the phone must match the mobile
// number shape, and the email, when given, must look like an address.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerName string,
	customerPhone string,
	customerEmail string,
	shipping order.Shipping,
	items []ItemInput,
	specialRequests string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		shipping:        shipping,
		specialRequests: specialRequests,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setCustomerEmail(customerEmail),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer's contact name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's contact phone.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerEmail returns the optional contact email.
func (c PlaceOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// Shipping returns how the order reaches the customer.
func (c PlaceOrderCommand) Shipping() order.Shipping {
	return c.shipping
}

// Items returns the validated order lines.
func (c PlaceOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// SpecialRequests returns the free-text requests, possibly empty.
func (c PlaceOrderCommand) SpecialRequests() string {
	return c.specialRequests
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrCustomerNameIsRequired
	}
	if len([]rune(trimmed)) < 2 {
		return ErrCustomerNameIsTooShort
	}

	c.customerName = trimmed
	return nil
}

func (c *PlaceOrderCommand) setCustomerPhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return ErrCustomerPhoneIsInvalid
	}

	c.customerPhone = phone
	return nil
}

func (c *PlaceOrderCommand) setCustomerEmail(email string) error {
	if email != "" && !emailPattern.MatchString(email) {
		return ErrCustomerEmailIsInvalid
	}

	c.customerEmail = email
	return nil
}

func (c *PlaceOrderCommand) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return ErrOrderItemsAreRequired
	}

	items := make([]order.Item, 0, len(inputs))
	for _, in := range inputs {
		item, err := order.NewItem(in.Name, in.Quantity, in.Price, in.Notes)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}
