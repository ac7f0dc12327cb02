// Package ports defines repository and infrastructure interfaces for the
// order-management domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"github.com/wael7705/movo-project/internal/core/domain/model/captain"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
)

// CaptainRepository defines the persistence contract for captain aggregates.
type CaptainRepository interface {
	// Add persists a new captain aggregate to storage.
	// The captain must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *captain.Captain) error

	// Update persists changes to an existing captain aggregate.
	// The captain must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *captain.Captain) error

	// Get retrieves a captain aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*captain.Captain, error)

	// GetAllAvailable retrieves up to limit available captains ordered by
	// performance rating descending, then delivered-orders count descending.
	// This ordering feeds the dispatch scorer's candidate pool, so the
	// strongest captains come first.
	GetAllAvailable(ctx context.Context, limit int) ([]*captain.Captain, error)
}
