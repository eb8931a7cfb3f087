package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every stored order, newest first.
	// Used to warm the in-memory store at session start.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order row. Missing ids are not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
