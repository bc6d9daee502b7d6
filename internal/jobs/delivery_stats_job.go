package jobs

import (
	"context"
	"log/slog"
	"time"

	"crown/internal/core/application/usecases/queries"
	"crown/internal/pkg/pagination"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule runs the statistics job at the start of every minute.
const DefaultStatsSchedule = "0 * * * * *"

// DeliveryStatsJob periodically logs how many deliveries are stored.
type DeliveryStatsJob struct {
	handler  queries.ListDeliveriesQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryStatsJob creates the job. schedule is a six-field cron expression
// (seconds first) or a descriptor such as "@every 30s"; empty means DefaultStatsSchedule.
func NewDeliveryStatsJob(handler queries.ListDeliveriesQueryHandler, schedule string, logger *slog.Logger) *DeliveryStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	return &DeliveryStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_stats_job"),
	}
}

// Run counts the stored deliveries once and logs the result.
// Only the page total is needed, so it reads a page of one element.
func (j *DeliveryStatsJob) Run(ctx context.Context) (int64, error) {
	start := time.Now()

	req, err := pagination.NewPageRequest(0, 1, pagination.DefaultMaxSize, nil)
	if err != nil {
		return 0, err
	}
	query, err := queries.NewListDeliveriesQuery(req)
	if err != nil {
		return 0, err
	}

	page, err := j.handler.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	j.logger.InfoContext(ctx, "Delivery statistics",
		"total", page.TotalElements,
		"duration", time.Since(start))
	return page.TotalElements, nil
}

// Start schedules the job. It returns an error for an invalid schedule.
func (j *DeliveryStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Delivery statistics job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery statistics job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running execution to finish.
func (j *DeliveryStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery statistics job stopped")
}
