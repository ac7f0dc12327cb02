package jobs

import (
	"fmt"
	"log/slog"

	"github.com/wael7705/movo-project/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	scheduledReleaseJob  *ScheduledReleaseJob
	positionBroadcastJob *PositionBroadcastJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	releaseHandler commands.ReleaseScheduledOrdersCommandHandler,
	broadcastHandler commands.BroadcastCaptainPositionsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		scheduledReleaseJob:  NewScheduledReleaseJob(releaseHandler, logger),
		positionBroadcastJob: NewPositionBroadcastJob(broadcastHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.scheduledReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start scheduled release job: %w", err)
	}

	if err := jm.positionBroadcastJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.scheduledReleaseJob.Stop()
		return fmt.Errorf("failed to start position broadcast job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.positionBroadcastJob.Stop()
	jm.scheduledReleaseJob.Stop()
}
