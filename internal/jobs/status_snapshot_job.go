package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliverytracker/internal/core/application/usecases/queries"
	"deliverytracker/internal/core/domain/model/workorder"

	"github.com/robfig/cron/v3"
)

// DefaultStatusSnapshotSchedule runs the snapshot every 30 seconds.
const DefaultStatusSnapshotSchedule = "*/30 * * * * *"

type StatusCounter interface {
	Handle(ctx context.Context, query queries.CountWorkOrdersByStatusQuery) (map[workorder.Status]int64, error)
}

type StatusGauge interface {
	SetStatusCounts(counts map[workorder.Status]int64)
}

// StatusSnapshotJob periodically counts work orders per status and pushes
// the counts into the status gauge.
type StatusSnapshotJob struct {
	counter  StatusCounter
	gauge    StatusGauge
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatusSnapshotJob creates the job. An empty schedule falls back to
// DefaultStatusSnapshotSchedule. Schedules use the six-field cron format.
func NewStatusSnapshotJob(
	counter StatusCounter,
	gauge StatusGauge,
	schedule string,
	logger *slog.Logger,
) *StatusSnapshotJob {
	if schedule == "" {
		schedule = DefaultStatusSnapshotSchedule
	}
	return &StatusSnapshotJob{
		counter:  counter,
		gauge:    gauge,
		schedule: schedule,
		timeout:  10 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "status_snapshot_job"),
	}
}

// Run takes a single snapshot.
func (j *StatusSnapshotJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	counts, err := j.counter.Handle(ctx, queries.NewCountWorkOrdersByStatusQuery())
	if err != nil {
		return err
	}
	j.gauge.SetStatusCounts(counts)
	return nil
}

// Start schedules the job. The first snapshot is taken on the first tick.
func (j *StatusSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Status snapshot job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status snapshot job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running snapshot to finish.
func (j *StatusSnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Status snapshot job stopped")
}
