// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"github.com/wael7705/movo-project/internal/pkg/guard"
)

var ErrGetOrderCountsQueryIsNotConstructed = errors.New(
	"GetOrderCountsQuery must be created via NewGetOrderCountsQuery constructor",
)

// GetOrderCountsQuery retrieves order counts grouped by canonical lifecycle
// status, plus the delayed bucket of scheduled orders.
type GetOrderCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderCountsQuery creates a parameterless counts query.
func NewGetOrderCountsQuery() GetOrderCountsQuery {
	return GetOrderCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderCountsQueryIsNotConstructed)
}

// GetOrderCountsQueryResponse is the dashboard counts read model.
// Statuses always contains every canonical status as a key, zero-valued when
// no orders carry it. Delayed counts orders flagged for scheduled dispatch;
// it is an independent axis, so a delayed order is also counted under its
// lifecycle status.
type GetOrderCountsQueryResponse struct {
	Statuses map[string]int
	Delayed  int
}
