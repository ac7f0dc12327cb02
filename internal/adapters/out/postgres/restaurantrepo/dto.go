// Package restaurantrepo provides data transfer objects and mapping functions for restaurant persistence.
package restaurantrepo

import (
	"time"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	location := aggregate.Location()

	return RestaurantDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Latitude:  location.Latitude(),
		Longitude: location.Longitude(),
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(id, dto.Name, location)
}
