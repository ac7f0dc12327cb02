// Package captainrepo provides data transfer objects and mapping functions for captain persistence.
package captainrepo

import (
	"time"

	"github.com/wael7705/movo-project/internal/core/domain/model/captain"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CaptainDTO represents the database structure for persisting captain aggregates.
// Latitude and longitude are nullable because a captain may have never
// reported telemetry.
type CaptainDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Latitude        *float64
	Longitude       *float64
	Available       bool `gorm:"index"`
	Performance     float64
	OrdersDelivered int
	CreatedAt       time.Time
}

// TableName specifies the database table name for captain entities.
func (CaptainDTO) TableName() string {
	return "captains"
}

// fromDomain converts a captain domain aggregate to its database representation.
func fromDomain(aggregate *captain.Captain) CaptainDTO {
	var latitude, longitude *float64
	if position := aggregate.Position(); position != nil {
		lat := position.Latitude()
		lon := position.Longitude()
		latitude = &lat
		longitude = &lon
	}

	return CaptainDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Latitude:        latitude,
		Longitude:       longitude,
		Available:       aggregate.IsAvailable(),
		Performance:     aggregate.Performance(),
		OrdersDelivered: aggregate.OrdersDelivered(),
	}
}

// toDomain converts a database DTO to a captain domain aggregate using RestoreCaptain.
func toDomain(dto CaptainDTO) (*captain.Captain, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var position *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}

		position = &point
	}

	return captain.RestoreCaptain(id, dto.Name, position, dto.Available, dto.Performance, dto.OrdersDelivered)
}
