package queries

import (
	"context"

	"github.com/wael7705/movo-project/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderCountsQueryHandler computes the dashboard status counters.
// Uses direct SQL for optimal read performance in the CQRS pattern; raw
// stored statuses are folded into canonical buckets in memory through the
// same Normalize used by the write side, so legacy rows land in the right
// bucket.
type GetOrderCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderCountsQueryHandler creates a handler for order count queries.
// Requires a GORM database connection for query execution.
func NewGetOrderCountsQueryHandler(db *gorm.DB) GetOrderCountsQueryHandler {
	return GetOrderCountsQueryHandler{db: db}
}

// Handle executes the counts query. Every canonical status appears in the
// response even when zero.
func (h GetOrderCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderCountsQuery,
) (GetOrderCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderCountsQueryResponse{}, err
	}

	response := GetOrderCountsQueryResponse{
		Statuses: map[string]int{
			order.Pending.String():        0,
			order.ChooseCaptain.String():  0,
			order.Processing.String():     0,
			order.OutForDelivery.String(): 0,
			order.Delivered.String():      0,
			order.Cancelled.String():      0,
			order.Problem.String():        0,
		},
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetOrderCountsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var rawStatus string
		var count int

		if err = rows.Scan(&rawStatus, &count); err != nil {
			return GetOrderCountsQueryResponse{}, err
		}

		response.Statuses[order.Normalize(rawStatus).String()] += count
	}

	if err = rows.Err(); err != nil {
		return GetOrderCountsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE is_scheduled = TRUE OR scheduled_time IS NOT NULL
	`).Scan(&response.Delayed).Error
	if err != nil {
		return GetOrderCountsQueryResponse{}, err
	}

	return response, nil
}
