package product

import (
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was
	// not created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
)

// Product is a catalog entry shown on the storefront. Order line items
// snapshot the product name and price at checkout; later catalog edits
// do not rewrite existing orders.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       float64
	stock       StockStatus
	isAvailable bool
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewProduct creates a catalog product, available by default.
func NewProduct(id kernel.UUID, name, description string, price float64, stock StockStatus) (*Product, error) {
	now := time.Now()
	p := &Product{
		description:   description,
		isAvailable:   true,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product from persistence.
func RestoreProduct(
	id kernel.UUID,
	name, description string,
	price float64,
	stock StockStatus,
	isAvailable bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	p := &Product{
		description:   description,
		isAvailable:   isAvailable,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setStock(stock),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was constructed through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the storefront description, possibly empty.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalog price.
func (p *Product) Price() float64 {
	return p.price
}

// Stock returns the operator-set stock status.
func (p *Product) Stock() StockStatus {
	return p.stock
}

// IsAvailable reports whether the product is listed on the storefront.
func (p *Product) IsAvailable() bool {
	return p.isAvailable
}

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the time of the last mutation.
func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// UpdateDetails replaces name, description, and price.
func (p *Product) UpdateDetails(name, description string, price float64) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return err
	}
	p.description = description
	p.updatedAt = time.Now()
	return nil
}

// SetStock updates the stock status.
func (p *Product) SetStock(stock StockStatus) error {
	if err := p.setStock(stock); err != nil {
		return err
	}
	p.updatedAt = time.Now()
	return nil
}

// SetAvailability lists or delists the product on the storefront.
func (p *Product) SetAvailability(available bool) {
	p.isAvailable = available
	p.updatedAt = time.Now()
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock StockStatus) error {
	if err := stock.Validate(); err != nil {
		return err
	}
	p.stock = stock
	return nil
}
