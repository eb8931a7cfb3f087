package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// SaveResult reports the outcome of a snapshot save. Warning is a
// human-readable signal (e.g. nearing the storage quota) that the caller
// surfaces without treating the save as failed.
type SaveResult struct {
	Warning string
}

// SnapshotSaver persists the full order collection after a local
// mutation. The order store calls it fire-and-forget: a failed save is
// logged, never propagated, because the store's correctness does not
// depend on persistence succeeding synchronously.
type SnapshotSaver interface {
	SaveSnapshot(ctx context.Context, orders []*order.Order) (SaveResult, error)
}
