package commands

import (
	"context"

	"bakery/internal/core/application/orderstore"
)

// ChangeOrderStatusCommandHandler handles lifecycle moves. Illegal
// transitions surface as *order.InvalidTransitionError; an unknown order
// ID is silently ignored per the store contract.
type ChangeOrderStatusCommandHandler struct {
	store *orderstore.Store
}

// NewChangeOrderStatusCommandHandler creates a handler for status change
// operations.
func NewChangeOrderStatusCommandHandler(store *orderstore.Store) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		store: store,
	}
}

// Handle processes the status change command.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.store.UpdateStatus(ctx, cmd.OrderID(), cmd.Status())
}
