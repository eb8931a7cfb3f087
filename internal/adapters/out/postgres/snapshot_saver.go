package postgres

import (
	"context"
	"fmt"

	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultSnapshotLimit is the number of orders a snapshot can hold
// before saves start reporting a warning.
const DefaultSnapshotLimit = 500

// GormSnapshotSaver persists the full order collection in one
// transaction: every order is upserted and rows absent from the
// snapshot are removed. Implements ports.SnapshotSaver.
type GormSnapshotSaver struct {
	db    *gorm.DB
	limit int
}

// NewGormSnapshotSaver creates a snapshot saver. A limit of zero or
// less falls back to DefaultSnapshotLimit.
func NewGormSnapshotSaver(db *gorm.DB, limit int) *GormSnapshotSaver {
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}
	return &GormSnapshotSaver{db: db, limit: limit}
}

// SaveSnapshot writes the collection to the orders table. When the
// collection is at or beyond the configured limit the save still
// succeeds but the result carries a warning, mirroring a storage quota
// running out.
func (s *GormSnapshotSaver) SaveSnapshot(ctx context.Context, orders []*order.Order) (ports.SaveResult, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]uuid.UUID, 0, len(orders))
		for _, o := range orders {
			dto := orderrepo.FromDomain(o)
			if upsertErr := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&dto).Error; upsertErr != nil {
				return upsertErr
			}
			ids = append(ids, dto.ID)
		}

		if len(ids) == 0 {
			return tx.Exec("DELETE FROM orders").Error
		}
		return tx.Where("id NOT IN ?", ids).Delete(&orderrepo.OrderDTO{}).Error
	})
	if err != nil {
		return ports.SaveResult{}, err
	}

	var result ports.SaveResult
	if len(orders) >= s.limit {
		result.Warning = fmt.Sprintf("snapshot holds %d orders, at or beyond the limit of %d", len(orders), s.limit)
	}
	return result, nil
}
