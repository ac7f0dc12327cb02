package eventlog

import (
	"context"
	"encoding/json"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEventLog implements EventLog using GORM.
type GormEventLog struct {
	db *gorm.DB
}

// NewGormEventLog creates a new GORM event log.
func NewGormEventLog(db *gorm.DB) *GormEventLog {
	return &GormEventLog{db: db}
}

// Append records an event for the order. The payload is marshalled to JSON.
func (l *GormEventLog) Append(ctx context.Context, orderID kernel.UUID, eventType string, payload any) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	dto := OrderEventDTO{
		OrderID:   orderID.Bytes(),
		EventType: eventType,
		Payload:   raw,
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}

// TryRecordIdempotencyKey claims the key. Returns false when the key was
// already consumed by an earlier request.
func (l *GormEventLog) TryRecordIdempotencyKey(ctx context.Context, key string) (bool, error) {
	dto := IdempotencyKeyDTO{Key: key}

	result := l.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
