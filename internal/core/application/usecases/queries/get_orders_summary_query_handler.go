package queries

import (
	"context"

	"bakery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersSummaryQueryHandler aggregates the persisted snapshot by
// status for the dashboard header.
type GetOrdersSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersSummaryQueryHandler creates a handler for summary queries.
func NewGetOrdersSummaryQueryHandler(db *gorm.DB) GetOrdersSummaryQueryHandler {
	return GetOrdersSummaryQueryHandler{db: db}
}

// Handle executes the summary query. Statuses with no orders are absent
// from the counts map.
func (h GetOrdersSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersSummaryQuery,
) (GetOrdersSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	resp := GetOrdersSummaryQueryResponse{
		CountByStatus: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*),
			COALESCE(SUM(total_amount) FILTER (WHERE status = ?), 0)
		FROM orders
		GROUP BY status
	`, order.Completed.String()).Rows()
	if err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		var revenue float64

		if err = rows.Scan(&status, &count, &revenue); err != nil {
			return GetOrdersSummaryQueryResponse{}, err
		}

		resp.CountByStatus[status] = count
		resp.CompletedRevenue += revenue
	}

	if err = rows.Err(); err != nil {
		return GetOrdersSummaryQueryResponse{}, err
	}

	return resp, nil
}
