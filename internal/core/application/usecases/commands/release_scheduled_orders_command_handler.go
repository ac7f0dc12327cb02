package commands

import (
	"context"
	"log/slog"
	"time"
)

// ReleaseScheduledOrdersCommandHandler clears the delayed-dispatch flag on
// every scheduled order whose time has arrived, returning them to the active
// flow. Invoked periodically by the scheduled-release job.
type ReleaseScheduledOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewReleaseScheduledOrdersCommandHandler creates a handler for scheduled releases.
func NewReleaseScheduledOrdersCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) ReleaseScheduledOrdersCommandHandler {
	return ReleaseScheduledOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "release_scheduled_orders"),
	}
}

// Handle releases all due orders in one transaction and returns how many
// were released.
func (h ReleaseScheduledOrdersCommandHandler) Handle(ctx context.Context, command ReleaseScheduledOrdersCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	due, err := orderRepo.GetAllScheduledDue(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if len(due) == 0 {
		return 0, nil
	}

	for _, aggregate := range due {
		aggregate.ReleaseSchedule()

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}

		if err = uow.EventLog().Append(ctx, aggregate.ID(), EventScheduleReleased, map[string]any{
			"status": aggregate.CurrentStatus().String(),
		}); err != nil {
			return 0, err
		}

		h.logger.Info("scheduled order released", "order_id", aggregate.ID().String())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(due), nil
}
