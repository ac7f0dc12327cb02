package commands

import (
	"context"
	"strings"

	"github.com/wael7705/movo-project/internal/core/domain/model/order"
)

// SetOrderStatusCommandHandler applies an administrative status override to
// an order. The requested value must belong to the canonical status set;
// aliases and unknown values are rejected rather than normalized, overrides
// are explicit by nature.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSetOrderStatusCommandHandler creates a handler for status overrides.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command. Fails with order.ErrInvalidTransition
// on terminal orders and with errs.ErrValueIsInvalid on non-canonical values.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, command SetOrderStatusCommand) (*order.Order, error) {
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

	requested := order.Status(strings.ToLower(strings.TrimSpace(command.Status())))
	if err = aggregate.ChangeStatus(requested); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.EventLog().Append(ctx, aggregate.ID(), EventStatusChanged, map[string]any{
		"status":   aggregate.CurrentStatus().String(),
		"substage": aggregate.Substage().String(),
		"override": true,
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
