package queries

import (
	"errors"
	"time"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/guard"
)

var ErrGetOrderCardsQueryIsNotConstructed = errors.New(
	"GetOrderCardsQuery must be created via NewGetOrderCardsQuery constructor",
)

// GetOrderCardsQuery retrieves the order list view for dashboards.
type GetOrderCardsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderCardsQuery creates a parameterless order cards query.
func NewGetOrderCardsQuery() GetOrderCardsQuery {
	return GetOrderCardsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderCardsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCardsQueryIsNotConstructed)
}

// GetOrderCardsQueryResponse is a single order card in the read model.
// CurrentStatus and Substage are derived from the stored raw status on every
// read; the raw value is also exposed for operator debugging of legacy rows.
type GetOrderCardsQueryResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	RestaurantID  kernel.UUID
	CaptainID     *kernel.UUID
	RawStatus     string
	CurrentStatus string
	Substage      string
	IsDeferred    bool
	IsScheduled   bool
	ScheduledTime *time.Time
	DeliveryFee   float64
	CreatedAt     time.Time
}
