package commands

import (
	"context"

	"bakery/internal/core/application/orderstore"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
)

// EditOrderCommandHandler handles wholesale edits of an order's details.
// The replacement keeps the order's status, creation time, and audit
// history; the total is recomputed from the replacement lines.
type EditOrderCommandHandler struct {
	store *orderstore.Store
}

// NewEditOrderCommandHandler creates a handler for order edit operations.
func NewEditOrderCommandHandler(store *orderstore.Store) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		store: store,
	}
}

// Handle processes the edit command. Editing an order that is not in the
// store is a no-op.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	existing, ok := h.store.Get(cmd.OrderID())
	if !ok {
		return nil
	}

	items := cmd.Items()
	replacement, err := order.RestoreOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.CustomerEmail(),
		cmd.Shipping(),
		items,
		cmd.SpecialRequests(),
		services.OrderTotal(items),
		existing.Status(),
		existing.CreatedAt(),
		existing.UpdatedAt(),
		existing.AuditHistory(),
	)
	if err != nil {
		return err
	}

	h.store.Update(ctx, replacement)
	return nil
}
