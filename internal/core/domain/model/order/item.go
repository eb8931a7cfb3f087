package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Item is one line of an order: a product name, a positive quantity,
// an optional snapshot price taken at ordering time, and free-form notes
// ("no nuts", "candles for 30"). Items are immutable after the order is
// created; the current design has no line-item editing.
type Item struct {
	name     string
	quantity int
	price    float64
	notes    string
}

// NewItem creates a validated line item. The price is a snapshot of the
// catalog price at ordering time (zero when the item was entered by hand
// without a price).
func NewItem(name string, quantity int, price float64, notes string) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}

	return Item{
		name:     name,
		quantity: quantity,
		price:    price,
		notes:    notes,
	}, nil
}

// Name returns the item's display name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered amount, always positive.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the snapshot unit price, zero when none was recorded.
func (i Item) Price() float64 {
	return i.price
}

// Notes returns the free-form preparation notes.
func (i Item) Notes() string {
	return i.notes
}

// Subtotal returns price times quantity for this line.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}
