package jobs

import (
	"context"
	"log/slog"

	"github.com/wael7705/movo-project/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PositionBroadcastJob pushes available captain positions to the live map.
// Runs every 5 seconds so dashboards track captains in near real time.
type PositionBroadcastJob struct {
	handler commands.BroadcastCaptainPositionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPositionBroadcastJob creates a new job for broadcasting captain positions.
func NewPositionBroadcastJob(handler commands.BroadcastCaptainPositionsCommandHandler, logger *slog.Logger) *PositionBroadcastJob {
	return &PositionBroadcastJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "position_broadcast_job"),
	}
}

// Start begins the position broadcast job to run every 5 seconds.
func (j *PositionBroadcastJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewBroadcastCaptainPositionsCommand()

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Position broadcast job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Position broadcast job started (running every 5 seconds)")
	return nil
}

// Stop stops the position broadcast job.
func (j *PositionBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Position broadcast job stopped")
}
