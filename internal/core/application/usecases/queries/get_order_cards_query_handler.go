package queries

import (
	"context"
	"time"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderCardsQueryHandler retrieves the order list for dashboard cards.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderCardsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderCardsQueryHandler creates a handler for order card queries.
// Requires a GORM database connection for query execution.
func NewGetOrderCardsQueryHandler(db *gorm.DB) GetOrderCardsQueryHandler {
	return GetOrderCardsQueryHandler{db: db}
}

// Handle executes the query and returns order cards sorted newest first.
// Raw statuses are normalized and substages derived the same way the write
// side does it, so cards never show a non-canonical status.
func (h GetOrderCardsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderCardsQuery,
) ([]GetOrderCardsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cards := make([]GetOrderCardsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			captain_id,
			status,
			substage,
			is_deferred,
			is_scheduled,
			scheduled_time,
			delivery_fee,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var card GetOrderCardsQueryResponse
		var id, customerID, restaurantID uuid.UUID
		var captainID *uuid.UUID
		var rawStatus, substage string
		var scheduledTime *time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&captainID,
			&rawStatus,
			&substage,
			&card.IsDeferred,
			&card.IsScheduled,
			&scheduledTime,
			&card.DeliveryFee,
			&card.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if card.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if card.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if card.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if captainID != nil {
			assigned, idErr := kernel.UUIDFromBytes(captainID[:])
			if idErr != nil {
				return nil, idErr
			}
			card.CaptainID = &assigned
		}

		card.RawStatus = rawStatus
		card.CurrentStatus = order.Normalize(rawStatus).String()
		card.Substage = deriveSubstage(order.Normalize(rawStatus), order.Substage(substage)).String()
		card.ScheduledTime = scheduledTime

		cards = append(cards, card)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

// deriveSubstage mirrors the aggregate's substage derivation for read models:
// substages only exist while processing, and processing rows without a stored
// marker default to waiting_approval.
func deriveSubstage(status order.Status, stored order.Substage) order.Substage {
	if status != order.Processing {
		return order.SubstageNone
	}
	if stored == order.SubstageNone {
		return order.SubstageWaitingApproval
	}
	return stored
}
