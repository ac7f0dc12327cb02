// Package restaurant implements the Restaurant aggregate. A restaurant is the
// pickup point of an order; its location anchors the dispatch ranking.
package restaurant

import (
	"errors"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/errs"
	"github.com/wael7705/movo-project/internal/pkg/guard"
)

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant represents a restaurant preparing orders in the system.
type Restaurant struct {
	// id uniquely identifies the restaurant
	id kernel.UUID
	// name is the human-readable name of the restaurant
	name string
	// location is the pickup point for captains
	location kernel.GeoPoint
	// guard ensures the restaurant was properly constructed
	guard guard.ConstructorGuard
}

// NewRestaurant creates a new Restaurant with the specified identity and
// pickup location. Also used to restore restaurants from persistent storage,
// since the aggregate carries no mutable state beyond its identity.
func NewRestaurant(id kernel.UUID, name string, location kernel.GeoPoint) (*Restaurant, error) {
	restaurant := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setLocation(location),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// Validate checks if the Restaurant was properly constructed using the constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

// ID returns the unique identifier of the restaurant.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the human-readable name of the restaurant.
func (r *Restaurant) Name() string {
	return r.name
}

// Location returns the pickup point of the restaurant.
func (r *Restaurant) Location() kernel.GeoPoint {
	return r.location
}

// setID sets the restaurant's unique identifier with validation.
func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

// setName sets the restaurant's name with validation.
func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}

// setLocation sets the pickup point with validation.
func (r *Restaurant) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	r.location = location
	return nil
}
