package jobs

import (
	"fmt"
	"log/slog"

	"crown/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	deliveryStatsJob *DeliveryStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	listDeliveriesHandler queries.ListDeliveriesQueryHandler,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		deliveryStatsJob: NewDeliveryStatsJob(listDeliveriesHandler, statsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.deliveryStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery statistics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.deliveryStatsJob.Stop()
}
