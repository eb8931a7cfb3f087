package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// OrderMailer sends customer-facing mail about an order. Callers treat
// sends as fire-and-forget: a failed send is logged, never propagated,
// and never fails the checkout that triggered it.
type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, o *order.Order) error
}
