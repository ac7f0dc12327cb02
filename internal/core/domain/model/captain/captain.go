package captain

import (
	"errors"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/errs"
	"github.com/wael7705/movo-project/internal/pkg/guard"
)

const (
	// PerformanceMin is the lowest possible captain rating.
	PerformanceMin = 0.0
	// PerformanceMax is the highest possible captain rating.
	PerformanceMax = 5.0
)

// Domain errors for captain operations.
var (
	// ErrNameIsRequired is returned when attempting to create a captain without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCaptainIsNotConstructed is returned when using an improperly initialized Captain.
	ErrCaptainIsNotConstructed = errors.New("Captain must be created via NewCaptain or RestoreCaptain constructor")
)

// Captain represents a delivery captain in the system.
// It is an aggregate root that manages captain identity, availability,
// last known position and the performance figures the dispatch ranking
// is built on.
//
// Business rules:
//   - Captain must have a valid UUID and non-empty name
//   - Performance rating always lies within [PerformanceMin..PerformanceMax]
//   - Position is optional: captains without telemetry have a nil position
//     and the dispatcher substitutes a synthetic one near the pickup point
//   - The delivered-orders counter only ever grows
type Captain struct {
	// id uniquely identifies the captain
	id kernel.UUID
	// name is the human-readable name of the captain
	name string
	// position is the last reported location, nil when telemetry is absent
	position *kernel.GeoPoint
	// available reports whether the captain currently accepts orders
	available bool
	// performance is the captain's rating on the [0..5] scale
	performance float64
	// ordersDelivered counts completed deliveries over the captain's lifetime
	ordersDelivered int
	// guard ensures the captain was properly constructed
	guard guard.ConstructorGuard
}

// NewCaptain creates a new available Captain with the specified identity and
// rating. This is the only way to create a fresh captain instance; the
// delivered-orders counter starts at zero and no position is known yet.
func NewCaptain(id kernel.UUID, name string, performance float64) (*Captain, error) {
	captain := &Captain{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		captain.setID(id),
		captain.setName(name),
		captain.setPerformance(performance),
	); err != nil {
		return nil, err
	}

	return captain, nil
}

// RestoreCaptain reconstructs a Captain aggregate from persistent storage,
// including availability, last known position and accumulated delivery
// figures.
func RestoreCaptain(
	id kernel.UUID,
	name string,
	position *kernel.GeoPoint,
	available bool,
	performance float64,
	ordersDelivered int,
) (*Captain, error) {
	captain := &Captain{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		captain.setID(id),
		captain.setName(name),
		captain.setPerformance(performance),
		captain.setOrdersDelivered(ordersDelivered),
	); err != nil {
		return nil, err
	}

	if position != nil {
		if err := captain.UpdatePosition(*position); err != nil {
			return nil, err
		}
	}

	return captain, nil
}

// IsEqual compares two captains by their unique identifiers.
func (c *Captain) IsEqual(other *Captain) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Captain was properly constructed using a constructor.
// The zero value of Captain is invalid and will fail this validation.
func (c *Captain) Validate() error {
	if c == nil {
		return ErrCaptainIsNotConstructed
	}
	return c.guard.Validate(ErrCaptainIsNotConstructed)
}

// ID returns the unique identifier of the captain.
func (c *Captain) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the captain.
func (c *Captain) Name() string {
	return c.name
}

// Position returns the last reported location, or nil when the captain has
// never reported telemetry.
func (c *Captain) Position() *kernel.GeoPoint {
	return c.position
}

// IsAvailable reports whether the captain currently accepts new orders.
func (c *Captain) IsAvailable() bool {
	return c.available
}

// Performance returns the captain's rating on the [0..5] scale.
func (c *Captain) Performance() float64 {
	return c.performance
}

// OrdersDelivered returns the number of deliveries completed by the captain.
func (c *Captain) OrdersDelivered() int {
	return c.ordersDelivered
}

// SetAvailable toggles whether the captain accepts new orders.
func (c *Captain) SetAvailable(available bool) {
	c.available = available
}

// UpdatePosition records the captain's latest reported location.
// The point must be properly constructed.
func (c *Captain) UpdatePosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}

	c.position = &position
	return nil
}

// RecordDelivery increments the captain's lifetime delivery counter.
// Called when an order carried by the captain reaches the delivered status.
func (c *Captain) RecordDelivery() {
	c.ordersDelivered++
}

// setID sets the captain's unique identifier with validation.
// This is an internal setter used during captain construction.
func (c *Captain) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the captain's name with validation.
// This is an internal setter used during captain construction.
func (c *Captain) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// setPerformance sets the rating with range validation.
// This is an internal setter used during captain construction.
func (c *Captain) setPerformance(performance float64) error {
	if performance < PerformanceMin || performance > PerformanceMax {
		return errs.NewValueIsOutOfRangeError("performance", performance, PerformanceMin, PerformanceMax)
	}

	c.performance = performance
	return nil
}

// setOrdersDelivered sets the delivered-orders counter with validation.
// This is an internal setter used during captain restoration.
func (c *Captain) setOrdersDelivered(ordersDelivered int) error {
	if ordersDelivered < 0 {
		return errs.NewValueIsInvalidError("ordersDelivered")
	}

	c.ordersDelivered = ordersDelivered
	return nil
}
