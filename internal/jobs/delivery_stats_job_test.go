package jobs_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"crown/internal/adapters/out/memory"
	"crown/internal/core/application/usecases/queries"
	"crown/internal/core/domain/model/delivery"
	"crown/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryStatsJob_Run(t *testing.T) {
	repo := memory.NewDeliveryRepository()
	for _, number := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		d, err := delivery.NewDelivery(delivery.Attributes{
			OrderNumber: number,
			Recipient:   "Alice",
			Address:     "1 Main St",
			Status:      delivery.Pending,
		})
		require.NoError(t, err)
		_, err = repo.Save(t.Context(), d)
		require.NoError(t, err)
	}

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	job := jobs.NewDeliveryStatsJob(queries.NewListDeliveriesQueryHandler(repo), "", logger)

	total, err := job.Run(t.Context())
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Contains(t, logs.String(), `"total":3`)
	assert.Contains(t, logs.String(), `"component":"delivery_stats_job"`)
}

func TestDeliveryStatsJob_RunCanceled(t *testing.T) {
	job := jobs.NewDeliveryStatsJob(
		queries.NewListDeliveriesQueryHandler(memory.NewDeliveryRepository()),
		"",
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := job.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDeliveryStatsJob_StartRunsOnSchedule(t *testing.T) {
	var logs syncBuffer
	job := jobs.NewDeliveryStatsJob(
		queries.NewListDeliveriesQueryHandler(memory.NewDeliveryRepository()),
		"@every 1s",
		slog.New(slog.NewJSONHandler(&logs, nil)),
	)

	require.NoError(t, job.Start())
	assert.Eventually(t, func() bool {
		return bytes.Contains(logs.Bytes(), []byte(`"total":0`))
	}, 5*time.Second, 50*time.Millisecond)
	job.Stop()
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	manager := jobs.NewJobManager(
		queries.NewListDeliveriesQueryHandler(memory.NewDeliveryRepository()),
		"not a schedule",
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery statistics job")
}
