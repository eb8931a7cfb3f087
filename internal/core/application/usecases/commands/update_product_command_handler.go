package commands

import (
	"context"
)

// UpdateProductCommandHandler handles catalog updates. Loads the
// aggregate, applies the changes through its methods, and persists the
// result within a single transaction.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog update
// operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductRepository()
	p, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = p.UpdateDetails(cmd.Name(), cmd.Description(), cmd.Price()); err != nil {
		return err
	}
	if err = p.SetStock(cmd.Stock()); err != nil {
		return err
	}
	p.SetAvailability(cmd.IsAvailable())

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
