package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"deliverytracker/internal/core/application/usecases/queries"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusCounter struct {
	mock.Mock
}

func (m *MockStatusCounter) Handle(
	ctx context.Context,
	query queries.CountWorkOrdersByStatusQuery,
) (map[workorder.Status]int64, error) {
	args := m.Called(ctx, query)
	counts, _ := args.Get(0).(map[workorder.Status]int64)
	return counts, args.Error(1)
}

type MockStatusGauge struct {
	mock.Mock
}

func (m *MockStatusGauge) SetStatusCounts(counts map[workorder.Status]int64) {
	m.Called(counts)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestStatusSnapshotJob_Run(t *testing.T) {
	counts := map[workorder.Status]int64{workorder.Received: 3, workorder.Cancelled: 1}

	counter := new(MockStatusCounter)
	counter.On("Handle", mock.Anything, mock.AnythingOfType("queries.CountWorkOrdersByStatusQuery")).
		Return(counts, nil)
	gauge := new(MockStatusGauge)
	gauge.On("SetStatusCounts", counts).Return()

	job := jobs.NewStatusSnapshotJob(counter, gauge, "", discardLogger())
	require.NoError(t, job.Run(t.Context()))

	counter.AssertExpectations(t)
	gauge.AssertExpectations(t)
}

func TestStatusSnapshotJob_Run_KeepsGaugeOnError(t *testing.T) {
	counter := new(MockStatusCounter)
	counter.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))
	gauge := new(MockStatusGauge)

	job := jobs.NewStatusSnapshotJob(counter, gauge, "", discardLogger())
	err := job.Run(t.Context())

	assert.ErrorContains(t, err, "connection refused")
	gauge.AssertNotCalled(t, "SetStatusCounts", mock.Anything)
}

func TestStatusSnapshotJob_StartRejectsBadSchedule(t *testing.T) {
	job := jobs.NewStatusSnapshotJob(new(MockStatusCounter), new(MockStatusGauge), "not a schedule", discardLogger())
	assert.Error(t, job.Start())
}

func TestStatusSnapshotJob_StartStop(t *testing.T) {
	job := jobs.NewStatusSnapshotJob(new(MockStatusCounter), new(MockStatusGauge), "0 0 3 * * *", discardLogger())
	require.NoError(t, job.Start())
	job.Stop()
}
