// Package commands contains business operations that modify system state.
// Order commands mutate the in-memory order store, which persists itself
// as a side effect. Catalog commands write through a transactional unit
// of work.
package commands

import (
	"context"

	"bakery/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the catalog repository within
	// a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ProductUoW manages transactions for catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new catalog unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}
)
