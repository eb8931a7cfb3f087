package queries

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrGetOrdersSummaryQueryIsNotConstructed = errors.New(
	"GetOrdersSummaryQuery must be created via NewGetOrdersSummaryQuery constructor",
)

// GetOrdersSummaryQuery retrieves per-status order counts and the
// revenue of completed orders for the dashboard header.
type GetOrdersSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersSummaryQuery creates a summary query.
func NewGetOrdersSummaryQuery() GetOrdersSummaryQuery {
	return GetOrdersSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSummaryQueryIsNotConstructed)
}

// GetOrdersSummaryQueryResponse aggregates the collection by lifecycle
// status. CountByStatus is keyed by the status wire form.
type GetOrdersSummaryQueryResponse struct {
	CountByStatus    map[string]int
	CompletedRevenue float64
}
