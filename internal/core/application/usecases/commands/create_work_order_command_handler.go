package commands

import (
	"context"
	"log/slog"

	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/core/ports"
)

// CreateWorkOrderCommandHandler registers work orders and announces them on
// the work order topic once the insert is committed.
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	publisher  ports.EventPublisher
	topic      string
	now        Clock
	logger     *slog.Logger
}

func NewCreateWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	publisher ports.EventPublisher,
	topic string,
	now Clock,
	logger *slog.Logger,
) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		topic:      topic,
		now:        now,
		logger:     logger.With("component", "create-work-order"),
	}
}

// Handle creates the work order. A reused tracking number is reported as
// *errs.AlreadyExistsError by the repository.
func (h *CreateWorkOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWorkOrderCommand,
) (*workorder.WorkOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	wo, err := workorder.NewWorkOrder(
		cmd.WorkOrderID(),
		cmd.TrackingNumber(),
		cmd.RequestType(),
		cmd.VisitDate(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkOrderRepository().Add(ctx, wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, created := range uow.TrackedWorkOrders() {
		h.publisher.Publish(ctx, h.topic, workorder.NewCreatedEvent(created))
	}

	h.logger.InfoContext(ctx, "work order created",
		"workOrderId", wo.ID().String(),
		"trackingNumber", wo.TrackingNumber(),
		"category", wo.Category().String())

	return wo, nil
}
