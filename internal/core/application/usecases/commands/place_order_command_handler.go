package commands

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/orderstore"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for checkout.
// Builds the order aggregate with the total snapshot computed from its
// lines, adds it to the session store, and emails the customer a
// confirmation when an address was given.
type PlaceOrderCommandHandler struct {
	store  *orderstore.Store
	mailer ports.OrderMailer
	logger *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
// The mailer may be nil, in which case confirmations are skipped.
func NewPlaceOrderCommandHandler(
	store *orderstore.Store,
	mailer ports.OrderMailer,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return PlaceOrderCommandHandler{
		store:  store,
		mailer: mailer,
		logger: logger,
	}
}

// Handle processes the checkout command. The new order starts in Pending
// with a single CREATED audit entry; adding it to the store triggers the
// snapshot save. The confirmation email is fire-and-forget: a failed
// send is logged and the checkout still succeeds.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items := cmd.Items()
	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.CustomerEmail(),
		cmd.Shipping(),
		items,
		cmd.SpecialRequests(),
		services.OrderTotal(items),
	)
	if err != nil {
		return err
	}

	h.store.Add(ctx, o)

	if h.mailer != nil && o.CustomerEmail() != "" {
		if mailErr := h.mailer.SendOrderConfirmation(ctx, o); mailErr != nil {
			h.logger.Warn("order confirmation email failed",
				"orderId", o.ID().String(), "error", mailErr)
		}
	}

	return nil
}
