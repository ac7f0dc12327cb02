// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status column stores the raw status string as written; normalization to
// the canonical set happens in the domain on every read, so legacy rows can
// stay untouched.
type OrderDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID           uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID         uuid.UUID  `gorm:"type:uuid;index"`
	CaptainID            *uuid.UUID `gorm:"type:uuid;index"`
	Status               string     `gorm:"index"`
	Substage             string
	IsDeferred           bool
	IsScheduled          bool `gorm:"index"`
	ScheduledTime        *time.Time
	DistanceMeters       int
	DeliveryFee          float64
	TotalPriceCustomer   float64
	TotalPriceRestaurant float64
	CreatedAt            time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var captainID *uuid.UUID
	if id := aggregate.Captain(); id != nil {
		raw := id.Bytes()
		captainID = &raw
	}

	economics := aggregate.Economics()

	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		CustomerID:           aggregate.CustomerID().Bytes(),
		RestaurantID:         aggregate.RestaurantID().Bytes(),
		CaptainID:            captainID,
		Status:               aggregate.RawStatus(),
		Substage:             aggregate.Substage().String(),
		IsDeferred:           aggregate.IsDeferred(),
		IsScheduled:          aggregate.IsScheduled(),
		ScheduledTime:        aggregate.ScheduledTime(),
		DistanceMeters:       economics.DistanceMeters,
		DeliveryFee:          economics.DeliveryFee,
		TotalPriceCustomer:   economics.TotalPriceCustomer,
		TotalPriceRestaurant: economics.TotalPriceRestaurant,
		CreatedAt:            aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var captainID *kernel.UUID
	if dto.CaptainID != nil {
		cID, captainErr := kernel.UUIDFromBytes((*dto.CaptainID)[:])
		if captainErr != nil {
			return nil, captainErr
		}

		captainID = &cID
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		captainID,
		dto.Status,
		order.Substage(dto.Substage),
		dto.IsDeferred,
		dto.IsScheduled,
		dto.ScheduledTime,
		order.Economics{
			DistanceMeters:       dto.DistanceMeters,
			DeliveryFee:          dto.DeliveryFee,
			TotalPriceCustomer:   dto.TotalPriceCustomer,
			TotalPriceRestaurant: dto.TotalPriceRestaurant,
		},
		dto.CreatedAt,
	)
}
