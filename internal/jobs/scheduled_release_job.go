package jobs

import (
	"context"
	"log/slog"

	"github.com/wael7705/movo-project/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ScheduledReleaseJob releases scheduled orders whose time has arrived.
// Runs every 30 seconds to move due orders back into the live pipeline.
type ScheduledReleaseJob struct {
	handler commands.ReleaseScheduledOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewScheduledReleaseJob creates a new job for releasing scheduled orders.
// Uses ReleaseScheduledOrdersCommandHandler to process due orders.
func NewScheduledReleaseJob(handler commands.ReleaseScheduledOrdersCommandHandler, logger *slog.Logger) *ScheduledReleaseJob {
	return &ScheduledReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "scheduled_release_job"),
	}
}

// Start begins the scheduled release job to run every 30 seconds.
func (j *ScheduledReleaseJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseScheduledOrdersCommand()

		released, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Scheduled release job failed", "error", err)
			return
		}

		if released > 0 {
			j.logger.InfoContext(ctx, "Released scheduled orders", "count", released)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Scheduled release job started (running every 30 seconds)")
	return nil
}

// Stop stops the scheduled release job.
func (j *ScheduledReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Scheduled release job stopped")
}
