package ports

import (
	"context"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetFirst retrieves the oldest registered restaurant.
	// Used by the demo-order flow. Returns errs.ObjectNotFoundError when
	// no restaurants exist.
	GetFirst(ctx context.Context) (*restaurant.Restaurant, error)
}
