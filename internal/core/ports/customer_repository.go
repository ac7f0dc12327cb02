package ports

import (
	"context"

	"github.com/wael7705/movo-project/internal/core/domain/model/customer"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate,
	// including the cancelled-orders counter.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetFirst retrieves the oldest registered customer.
	// Used by the demo-order flow. Returns errs.ObjectNotFoundError when
	// no customers exist.
	GetFirst(ctx context.Context) (*customer.Customer, error)
}
