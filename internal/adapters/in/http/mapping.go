package http

import (
	"deliverytracker/internal/core/application/usecases/queries"
	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(id servers.WorkOrderID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func toWorkOrder(wo *workorder.WorkOrder) servers.WorkOrder {
	response := servers.WorkOrder{
		Id:              wo.ID().Value(),
		TrackingNumber:  wo.TrackingNumber(),
		RequestCategory: wo.RequestType(),
		Category:        servers.Category(wo.Category().String()),
		Status:          servers.Status(wo.Status().String()),
		VisitDate:       toDate(wo.VisitDate()),
		DriverNotes:     wo.DriverNotes(),
		AuditTrail:      workorder.AuditEntries(wo.DriverNotes()),
		CancelReason:    wo.CancelReason(),
		CanceledAt:      wo.CanceledAt(),
		Version:         wo.Version(),
		CreatedAt:       wo.CreatedAt(),
		UpdatedAt:       wo.UpdatedAt(),
	}
	if response.AuditTrail == nil {
		response.AuditTrail = []string{}
	}

	if c := wo.Completion(); c != nil {
		response.Completion = &servers.Completion{
			CustomerRequestedCompletion:         c.CustomerRequested,
			FurnitureCompanyRequestedCompletion: c.FurnitureCompanyRequested,
			DriverNotes:                         c.DriverNotes,
			CompletionAudioFile:                 c.AudioEvidenceRef,
			CompletedAt:                         c.CompletedAt,
		}
	}
	return response
}

func toSummary(s queries.WorkOrderSummary) servers.WorkOrderSummary {
	return servers.WorkOrderSummary{
		Id:             s.ID.Value(),
		TrackingNumber: s.TrackingNumber,
		Category:       servers.Category(s.Category.String()),
		Status:         servers.Status(s.Status.String()),
		VisitDate:      toDate(s.VisitDate),
		UpdatedAt:      s.UpdatedAt,
	}
}
