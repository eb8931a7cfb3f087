package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/product"
	"bakery/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrProductPriceIsInvalid = errors.New("product price must not be negative")
)

// CreateProductCommand represents a request to add a product to the
// catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       float64
	stock       product.StockStatus

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new catalog
// product.
func NewCreateProductCommand(
	productID kernel.UUID,
	name, description string,
	price float64,
	stock product.StockStatus,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product's description, possibly empty.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the catalog price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// Stock returns the initial stock status.
func (c CreateProductCommand) Stock() product.StockStatus {
	return c.stock
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrProductPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock product.StockStatus) error {
	if err := stock.Validate(); err != nil {
		return err
	}

	c.stock = stock
	return nil
}
