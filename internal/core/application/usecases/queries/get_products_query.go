package queries

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the catalog for the storefront. When
// availableOnly is set, hidden products are excluded.
type GetProductsQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a catalog query.
func NewGetProductsQuery(availableOnly bool) GetProductsQuery {
	return GetProductsQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// AvailableOnly reports whether hidden products are excluded.
func (q GetProductsQuery) AvailableOnly() bool {
	return q.availableOnly
}

// GetProductsQueryResponse represents one catalog row.
type GetProductsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       float64
	Stock       string
	IsAvailable bool
}
