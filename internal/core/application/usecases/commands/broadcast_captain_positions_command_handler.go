package commands

import (
	"context"

	"github.com/wael7705/movo-project/internal/core/ports"
)

// captainPositionsTopic is the realtime channel carrying live captain
// positions for map views.
const captainPositionsTopic = "captains:positions"

// broadcastPoolLimit caps how many captains a single broadcast covers.
const broadcastPoolLimit = 500

// BroadcastCaptainPositionsCommandHandler publishes the last known positions
// of available captains to the tracking channel. Captains without telemetry
// are skipped. Invoked periodically by the position-broadcast job.
type BroadcastCaptainPositionsCommandHandler struct {
	uowFactory CaptainUoWFactory
	publisher  ports.EventPublisher
}

// NewBroadcastCaptainPositionsCommandHandler creates a handler for position broadcasts.
func NewBroadcastCaptainPositionsCommandHandler(
	uowFactory CaptainUoWFactory,
	publisher ports.EventPublisher,
) BroadcastCaptainPositionsCommandHandler {
	return BroadcastCaptainPositionsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes one snapshot of available captain positions and returns
// how many captains it covered.
func (h BroadcastCaptainPositionsCommandHandler) Handle(ctx context.Context, command BroadcastCaptainPositionsCommand) (int, error) {
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

	captains, err := uow.CaptainRepository().GetAllAvailable(ctx, broadcastPoolLimit)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	positions := make([]map[string]any, 0, len(captains))
	for _, c := range captains {
		position := c.Position()
		if position == nil {
			continue
		}

		positions = append(positions, map[string]any{
			"captain_id": c.ID().String(),
			"name":       c.Name(),
			"latitude":   position.Latitude(),
			"longitude":  position.Longitude(),
		})
	}

	if len(positions) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, captainPositionsTopic, positions); err != nil {
		return 0, err
	}

	return len(positions), nil
}
