package commands

import (
	"context"

	"github.com/wael7705/movo-project/internal/core/domain/model/order"
)

// Lifecycle event types recorded in the order event log.
const (
	EventOrderCreated     = "created"
	EventStatusChanged    = "status_changed"
	EventOrderCancelled   = "cancelled"
	EventCaptainAssigned  = "assigned"
	EventCaptainAccepted  = "accepted"
	EventScheduleReleased = "schedule_released"
)

// AdvanceOrderCommandHandler moves an order one step forward along its
// lifecycle and records the resulting status in the event log, all within a
// single transaction.
//
// The handler returns the updated order so callers can render the new status
// without a second read.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command. Fails with order.ErrInvalidTransition
// when the order is already in a terminal status.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Advance(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.EventLog().Append(ctx, aggregate.ID(), EventStatusChanged, map[string]any{
		"status":   aggregate.CurrentStatus().String(),
		"substage": aggregate.Substage().String(),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
