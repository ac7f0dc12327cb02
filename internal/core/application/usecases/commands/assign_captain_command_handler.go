package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/core/domain/model/order"
	"github.com/wael7705/movo-project/internal/core/ports"
)

// confirmationDelay simulates how long a captain takes to confirm an
// assignment pushed to their device.
const confirmationDelay = 3 * time.Second

// AssignCaptainResult reports the outcome of an assignment request.
// Duplicate is true when the idempotency key was already claimed by an
// earlier request; in that case Order is nil and nothing was changed.
type AssignCaptainResult struct {
	Order     *order.Order
	Duplicate bool
}

// AssignCaptainCommandHandler binds a captain to an order.
//
// Within a single transaction the handler claims the idempotency key,
// updates the order and records the assignment event, so a retried request
// either fully applies or is fully ignored. After commit it notifies the
// captain's realtime channel and schedules a simulated confirmation;
// both are best-effort and never fail the request.
type AssignCaptainCommandHandler struct {
	uowFactory AssignUoWFactory
	publisher  ports.EventPublisher
	scheduler  ports.Scheduler
	logger     *slog.Logger
}

// NewAssignCaptainCommandHandler creates a handler for captain assignment.
func NewAssignCaptainCommandHandler(
	uowFactory AssignUoWFactory,
	publisher ports.EventPublisher,
	scheduler ports.Scheduler,
	logger *slog.Logger,
) AssignCaptainCommandHandler {
	return AssignCaptainCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		scheduler:  scheduler,
		logger:     logger.With("component", "assign_captain"),
	}
}

// Handle processes the assignment command. Concurrent assignments to the same
// order follow last-write-wins; idempotency keys only deduplicate retries of
// the same logical request.
func (h AssignCaptainCommandHandler) Handle(ctx context.Context, command AssignCaptainCommand) (AssignCaptainResult, error) {
	if err := command.Validate(); err != nil {
		return AssignCaptainResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignCaptainResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if key := command.IdempotencyKey(); key != "" {
		claimed, err := uow.EventLog().TryRecordIdempotencyKey(ctx, key)
		if err != nil {
			return AssignCaptainResult{}, err
		}
		if !claimed {
			h.logger.Info("duplicate assignment request ignored",
				"order_id", command.OrderID().String(),
				"idempotency_key", key)
			return AssignCaptainResult{Duplicate: true}, nil
		}
	}

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return AssignCaptainResult{}, err
	}

	assignee, err := uow.CaptainRepository().Get(ctx, command.CaptainID())
	if err != nil {
		return AssignCaptainResult{}, err
	}

	if err = aggregate.AssignCaptain(assignee.ID()); err != nil {
		return AssignCaptainResult{}, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return AssignCaptainResult{}, err
	}

	if err = uow.EventLog().Append(ctx, aggregate.ID(), EventCaptainAssigned, map[string]any{
		"captain_id": assignee.ID().String(),
	}); err != nil {
		return AssignCaptainResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignCaptainResult{}, err
	}

	h.notifyCaptain(ctx, aggregate.ID(), assignee.ID())
	h.scheduleConfirmation(aggregate.ID(), assignee.ID())

	return AssignCaptainResult{Order: aggregate}, nil
}

// notifyCaptain pushes the assignment to the captain's realtime channel.
// Delivery failures are logged and swallowed.
func (h AssignCaptainCommandHandler) notifyCaptain(ctx context.Context, orderID kernel.UUID, captainID kernel.UUID) {
	err := h.publisher.Publish(ctx, captainTopic(captainID), map[string]any{
		"event":      EventCaptainAssigned,
		"order_id":   orderID.String(),
		"captain_id": captainID.String(),
	})
	if err != nil {
		h.logger.Warn("failed to publish assignment notification",
			"order_id", orderID.String(),
			"captain_id", captainID.String(),
			"error", err)
	}
}

// scheduleConfirmation simulates the captain confirming the assignment after
// a short delay. The confirmation runs in its own transaction; failures are
// logged and swallowed since the assignment itself has already committed.
func (h AssignCaptainCommandHandler) scheduleConfirmation(orderID kernel.UUID, captainID kernel.UUID) {
	h.scheduler.After(confirmationDelay, func() {
		ctx := context.Background()

		if err := h.recordConfirmation(ctx, orderID, captainID); err != nil {
			h.logger.Warn("failed to record assignment confirmation",
				"order_id", orderID.String(),
				"captain_id", captainID.String(),
				"error", err)
			return
		}

		err := h.publisher.Publish(ctx, captainTopic(captainID), map[string]any{
			"event":      EventCaptainAccepted,
			"order_id":   orderID.String(),
			"captain_id": captainID.String(),
		})
		if err != nil {
			h.logger.Warn("failed to publish confirmation notification",
				"order_id", orderID.String(),
				"error", err)
		}
	})
}

// recordConfirmation appends the accepted event in a fresh transaction.
func (h AssignCaptainCommandHandler) recordConfirmation(ctx context.Context, orderID kernel.UUID, captainID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.EventLog().Append(ctx, orderID, EventCaptainAccepted, map[string]any{
		"captain_id": captainID.String(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// captainTopic is the realtime channel of a single captain.
func captainTopic(captainID kernel.UUID) string {
	return fmt.Sprintf("captain:%s", captainID)
}
