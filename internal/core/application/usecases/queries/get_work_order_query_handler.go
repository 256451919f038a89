package queries

import (
	"context"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
)

// WorkOrderReader is the read half of ports.WorkOrderRepository.
type WorkOrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*workorder.WorkOrder, error)
}

type GetWorkOrderQueryHandler struct {
	reader WorkOrderReader
}

func NewGetWorkOrderQueryHandler(reader WorkOrderReader) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{reader: reader}
}

// Handle returns the work order or *errs.ObjectNotFoundError.
func (h GetWorkOrderQueryHandler) Handle(ctx context.Context, query GetWorkOrderQuery) (*workorder.WorkOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.ByTrackingNumber() {
		return h.reader.GetByTrackingNumber(ctx, query.trackingNumber)
	}
	return h.reader.Get(ctx, query.id)
}
