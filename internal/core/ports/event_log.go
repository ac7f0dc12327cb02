package ports

import (
	"context"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
)

// EventLog records order lifecycle events and idempotency keys within the
// current transaction, so an event entry commits or rolls back together with
// the aggregate change that produced it.
type EventLog interface {
	// Append records an order event of the given type with an arbitrary
	// JSON-serializable payload.
	Append(ctx context.Context, orderID kernel.UUID, eventType string, payload any) error

	// TryRecordIdempotencyKey attempts to claim the given key. Returns true
	// if the key was recorded now, false if a previous request already
	// claimed it. The claim is transactional: a rolled back request releases
	// its key.
	TryRecordIdempotencyKey(ctx context.Context, key string) (bool, error)
}
