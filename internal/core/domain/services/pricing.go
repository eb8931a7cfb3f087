package services

import (
	"bakery/internal/core/domain/model/order"
)

// OrderTotal computes the total amount of an order from its line items:
// the sum of snapshot price times quantity. Items entered without a price
// contribute nothing.
//
// The result becomes the order's totalAmount snapshot at creation time;
// it is never recomputed when the catalog changes afterwards.
func OrderTotal(items []order.Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
