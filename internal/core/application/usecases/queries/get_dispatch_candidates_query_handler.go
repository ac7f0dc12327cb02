package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/wael7705/movo-project/internal/core/domain/model/captain"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/services"
	"github.com/wael7705/movo-project/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDispatchCandidatesQueryHandler produces ranked captain suggestions for
// an order. It reads the order's restaurant location and the strongest
// available captains with direct SQL, then delegates ranking to the
// DispatchScorer domain service.
type GetDispatchCandidatesQueryHandler struct {
	db     *gorm.DB
	scorer services.DispatchScorer
}

// NewGetDispatchCandidatesQueryHandler creates a handler for candidate queries.
// Requires a GORM database connection for query execution.
func NewGetDispatchCandidatesQueryHandler(db *gorm.DB) GetDispatchCandidatesQueryHandler {
	return GetDispatchCandidatesQueryHandler{
		db:     db,
		scorer: services.NewDispatchScorer(),
	}
}

// Handle executes the candidates query. Fails with errs.ErrObjectNotFound
// when the order does not exist. An empty list means no captain is in range.
func (h GetDispatchCandidatesQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchCandidatesQuery,
) ([]GetDispatchCandidatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pickup, err := h.pickupPoint(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	captains, err := h.availableCaptains(ctx, query.MaxCandidates())
	if err != nil {
		return nil, err
	}

	candidates, err := h.scorer.RankCandidates(pickup, captains, query.RadiusKm(), query.MaxCandidates())
	if err != nil {
		return nil, err
	}

	responses := make([]GetDispatchCandidatesQueryResponse, 0, len(candidates))
	for _, candidate := range candidates {
		responses = append(responses, GetDispatchCandidatesQueryResponse{
			CaptainID:       candidate.CaptainID,
			Name:            candidate.Name,
			Latitude:        candidate.Position.Latitude(),
			Longitude:       candidate.Position.Longitude(),
			ActiveOrders:    candidate.ActiveOrders,
			DistanceKm:      candidate.DistanceKm,
			EtaSeconds:      candidate.EtaSeconds,
			Score:           candidate.Score,
			OrdersDelivered: candidate.OrdersDelivered,
		})
	}

	return responses, nil
}

// pickupPoint resolves the order's restaurant location.
func (h GetDispatchCandidatesQueryHandler) pickupPoint(ctx context.Context, orderID kernel.UUID) (kernel.GeoPoint, error) {
	var latitude, longitude float64

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.latitude,
			r.longitude
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row().Scan(&latitude, &longitude)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return kernel.GeoPoint{}, errs.NewObjectNotFoundError("orderId", orderID)
	}
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	return kernel.NewGeoPoint(latitude, longitude)
}

// availableCaptains loads the candidate pool: available captains ordered by
// rating, then delivery history, capped at three times the requested
// candidate count.
func (h GetDispatchCandidatesQueryHandler) availableCaptains(ctx context.Context, maxCandidates int) ([]*captain.Captain, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			latitude,
			longitude,
			performance,
			orders_delivered
		FROM captains
		WHERE available = TRUE
		ORDER BY performance DESC, orders_delivered DESC
		LIMIT ?
	`, 3*maxCandidates).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	captains := make([]*captain.Captain, 0, 3*maxCandidates)
	for rows.Next() {
		var id uuid.UUID
		var name string
		var latitude, longitude *float64
		var performance float64
		var ordersDelivered int

		if err = rows.Scan(&id, &name, &latitude, &longitude, &performance, &ordersDelivered); err != nil {
			return nil, err
		}

		captainID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var position *kernel.GeoPoint
		if latitude != nil && longitude != nil {
			point, pointErr := kernel.NewGeoPoint(*latitude, *longitude)
			if pointErr != nil {
				return nil, pointErr
			}
			position = &point
		}

		aggregate, restoreErr := captain.RestoreCaptain(captainID, name, position, true, performance, ordersDelivered)
		if restoreErr != nil {
			return nil, restoreErr
		}

		captains = append(captains, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return captains, nil
}
