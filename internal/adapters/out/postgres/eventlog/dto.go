// Package eventlog persists the order event audit trail and idempotency keys.
// Events are append only; idempotency keys rely on the primary key constraint
// so that a duplicate insert inside a transaction claims nothing.
package eventlog

import (
	"time"

	"github.com/google/uuid"
)

// OrderEventDTO represents one audit trail entry for an order.
type OrderEventDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	EventType string
	Payload   []byte `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// TableName specifies the database table name for order events.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

// IdempotencyKeyDTO records a consumed request key.
type IdempotencyKeyDTO struct {
	Key       string `gorm:"primaryKey"`
	CreatedAt time.Time
}

// TableName specifies the database table name for idempotency keys.
func (IdempotencyKeyDTO) TableName() string {
	return "idempotency_keys"
}
