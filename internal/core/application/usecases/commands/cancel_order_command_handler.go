package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/wael7705/movo-project/internal/core/domain/model/order"
	"github.com/wael7705/movo-project/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and increments the owning
// customer's cancelled-orders counter within the same transaction.
//
// A missing customer row does not block the cancellation: the counter update
// is skipped with a warning and the order still transitions. Orders are never
// deleted, cancellation is a terminal status.
type CancelOrderCommandHandler struct {
	uowFactory CancelOrderUoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CancelOrderUoWFactory, logger *slog.Logger) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle processes the cancel command. Fails with order.ErrInvalidTransition
// when the order is already in a terminal status.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.recordCustomerCancellation(ctx, uow, aggregate); err != nil {
		return nil, err
	}

	if err = uow.EventLog().Append(ctx, aggregate.ID(), EventOrderCancelled, map[string]any{
		"customer_id": aggregate.CustomerID().String(),
	}); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// recordCustomerCancellation bumps the customer's cancelled counter.
// A dangling customer reference is logged and tolerated.
func (h CancelOrderCommandHandler) recordCustomerCancellation(
	ctx context.Context,
	uow CancelOrderUoW,
	aggregate *order.Order,
) error {
	customerRepo := uow.CustomerRepository()

	owner, err := customerRepo.Get(ctx, aggregate.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.Warn("customer not found, cancelled counter not updated",
			"order_id", aggregate.ID().String(),
			"customer_id", aggregate.CustomerID().String())
		return nil
	}
	if err != nil {
		return err
	}

	owner.RecordCancellation()
	return customerRepo.Update(ctx, owner)
}
