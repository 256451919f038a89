package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"deliverytracker/internal/core/application/usecases/commands"
	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	wo, _ := args.Get(0).(*workorder.WorkOrder)
	return wo, args.Error(1)
}

func (m *MockWorkOrderRepository) GetByTrackingNumber(ctx context.Context, n string) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, n)
	wo, _ := args.Get(0).(*workorder.WorkOrder)
	return wo, args.Error(1)
}

func (m *MockWorkOrderRepository) UpdateIfUnchanged(
	ctx context.Context,
	wo *workorder.WorkOrder,
	patch workorder.Patch,
) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, wo, patch)
	switch next := args.Get(0).(type) {
	case func(workorder.Patch) *workorder.WorkOrder:
		return next(patch), args.Error(1)
	case *workorder.WorkOrder:
		return next, args.Error(1)
	default:
		return nil, args.Error(1)
	}
}

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockWorkOrderUoW) TrackedWorkOrders() []*workorder.WorkOrder {
	args := m.Called()
	switch tracked := args.Get(0).(type) {
	case func() []*workorder.WorkOrder:
		return tracked()
	case []*workorder.WorkOrder:
		return tracked
	default:
		return nil
	}
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, topic string, payload any) {
	m.Called(ctx, topic, payload)
}

type MockActionObserver struct{ mock.Mock }

func (m *MockActionObserver) ObserveAction(action workorder.ActionTag, outcome commands.Outcome) {
	m.Called(action, outcome)
}

func (m *MockActionObserver) ObserveConflictRetry(action workorder.ActionTag) {
	m.Called(action)
}

var fixedNow = time.Date(2026, 10, 18, 23, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func restoredWorkOrder(t *testing.T, status workorder.Status, category workorder.Category) *workorder.WorkOrder {
	t.Helper()
	visit, err := kernel.NewDate(2026, time.October, 20)
	require.NoError(t, err)
	wo, err := workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:             kernel.NewUUID(),
		TrackingNumber: "WO-20261001-ABCDEF12",
		Category:       category,
		RequestType:    category.String(),
		Status:         status,
		VisitDate:      visit,
		Version:        2,
		CreatedAt:      fixedNow.Add(-72 * time.Hour),
		UpdatedAt:      fixedNow.Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	return wo
}
