package commands

import (
	"context"

	"bakery/internal/core/application/orderstore"
)

// RemoveOrderCommandHandler handles order deletion. Removing an order
// that is not in the store is a no-op.
type RemoveOrderCommandHandler struct {
	store *orderstore.Store
}

// NewRemoveOrderCommandHandler creates a handler for order deletion.
func NewRemoveOrderCommandHandler(store *orderstore.Store) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		store: store,
	}
}

// Handle processes the removal command.
func (h RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.store.Delete(ctx, cmd.OrderID())
	return nil
}
