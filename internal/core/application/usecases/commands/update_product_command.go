package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a catalog
// product's details, stock status, and availability.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       float64
	stock       product.StockStatus
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name, description string,
	price float64,
	stock product.StockStatus,
	isAvailable bool,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		description: description,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the replacement display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the replacement description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the replacement catalog price.
func (c UpdateProductCommand) Price() float64 {
	return c.price
}

// Stock returns the replacement stock status.
func (c UpdateProductCommand) Stock() product.StockStatus {
	return c.stock
}

// IsAvailable returns whether the product should be shown on the
// storefront.
func (c UpdateProductCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrProductPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setStock(stock product.StockStatus) error {
	if err := stock.Validate(); err != nil {
		return err
	}

	c.stock = stock
	return nil
}
