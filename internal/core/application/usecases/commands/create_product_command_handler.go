package commands

import (
	"context"

	"bakery/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles the business logic for adding a
// product to the catalog. Uses a transaction to ensure the product is
// properly persisted or rolled back on error.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog creation
// operations.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	p, err := product.NewProduct(cmd.ProductID(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.Stock())
	if err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
