package commands_test

import (
	"errors"
	"testing"

	"deliverytracker/internal/core/application/usecases/commands"
	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateCommand(t *testing.T) commands.CreateWorkOrderCommand {
	t.Helper()
	visit, err := kernel.ParseDate("2026-10-25")
	require.NoError(t, err)
	cmd, err := commands.NewCreateWorkOrderCommand(kernel.NewUUID(), "", "marketplace-A", visit)
	require.NoError(t, err)
	return cmd
}

func TestCreateWorkOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	var added *workorder.WorkOrder
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("WorkOrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*workorder.WorkOrder")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*workorder.WorkOrder) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)
	uow.On("TrackedWorkOrders").Return(func() []*workorder.WorkOrder { return []*workorder.WorkOrder{added} }).Once()
	uow.On("Rollback", ctx).Return(errors.New("no transaction")).Once()

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, "workorder.changed", mock.MatchedBy(func(e workorder.ChangedEvent) bool {
		return e.Action == workorder.TagCreate && e.Status == "Received" && e.WorkOrderID == cmd.WorkOrderID().String()
	})).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory, publisher, "workorder.changed", fixedClock, discardLogger())
	wo, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, workorder.Received, wo.Status())
	assert.Equal(t, workorder.Standard, wo.Category())
	assert.Equal(t, workorder.NewTrackingNumber(cmd.WorkOrderID(), fixedNow), wo.TrackingNumber())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateWorkOrderCommandHandler_Handle_DuplicateTrackingNumber(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t)

	repo := new(MockWorkOrderRepository)
	uow := new(MockWorkOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("WorkOrderRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(errs.NewAlreadyExistsError("trackingNumber", "TRK-1")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	publisher := new(MockEventPublisher)

	h := commands.NewCreateWorkOrderCommandHandler(factory, publisher, "workorder.changed", fixedClock, discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateWorkOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateCommand(t)

	uow := new(MockWorkOrderUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()
	factory := new(MockWorkOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateWorkOrderCommandHandler(factory, new(MockEventPublisher), "t", fixedClock, discardLogger())
	_, err := h.Handle(ctx, cmd)
	require.EqualError(t, err, "begin error")
}

func TestCreateWorkOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockWorkOrderUoWFactory)
	h := commands.NewCreateWorkOrderCommandHandler(factory, new(MockEventPublisher), "t", fixedClock, discardLogger())

	_, err := h.Handle(t.Context(), commands.CreateWorkOrderCommand{})
	require.ErrorIs(t, err, commands.ErrCreateWorkOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
