package queries

import (
	"errors"
	"math"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/errs"
	"github.com/wael7705/movo-project/internal/pkg/guard"
)

var ErrGetDispatchCandidatesQueryIsNotConstructed = errors.New(
	"GetDispatchCandidatesQuery must be created via NewGetDispatchCandidatesQuery constructor",
)

// GetDispatchCandidatesQuery retrieves ranked captain suggestions for
// assigning an order, anchored at the order's restaurant.
type GetDispatchCandidatesQuery struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	radiusKm      float64
	maxCandidates int

	guard guard.ConstructorGuard
}

// NewGetDispatchCandidatesQuery creates a candidates query.
// radiusKm and maxCandidates must be positive.
func NewGetDispatchCandidatesQuery(orderID kernel.UUID, radiusKm float64, maxCandidates int) (GetDispatchCandidatesQuery, error) {
	query := GetDispatchCandidatesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setRadiusKm(radiusKm),
		query.setMaxCandidates(maxCandidates),
	); err != nil {
		return GetDispatchCandidatesQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchCandidatesQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchCandidatesQueryIsNotConstructed)
}

// OrderID returns the order whose candidates are requested.
func (q GetDispatchCandidatesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RadiusKm returns the search radius in kilometers.
func (q GetDispatchCandidatesQuery) RadiusKm() float64 {
	return q.radiusKm
}

// MaxCandidates returns the maximum number of suggestions to return.
func (q GetDispatchCandidatesQuery) MaxCandidates() int {
	return q.maxCandidates
}

func (q *GetDispatchCandidatesQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetDispatchCandidatesQuery) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return errs.NewValueIsOutOfRangeError("radiusKm", radiusKm, 0, math.Inf(1))
	}

	q.radiusKm = radiusKm
	return nil
}

func (q *GetDispatchCandidatesQuery) setMaxCandidates(maxCandidates int) error {
	if maxCandidates <= 0 {
		return errs.NewValueIsOutOfRangeError("maxCandidates", maxCandidates, 1, math.MaxInt)
	}

	q.maxCandidates = maxCandidates
	return nil
}

// GetDispatchCandidatesQueryResponse is one ranked captain suggestion.
// DistanceKm carries 2 decimal places, Score 3; EtaSeconds includes the
// fixed pickup buffer.
type GetDispatchCandidatesQueryResponse struct {
	CaptainID       kernel.UUID
	Name            string
	Latitude        float64
	Longitude       float64
	ActiveOrders    int
	DistanceKm      float64
	EtaSeconds      int
	Score           float64
	OrdersDelivered int
}
