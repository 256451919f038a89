// Package workorderrepo persists work orders with GORM and maps them between
// the domain aggregate and the work_orders table.
package workorderrepo

import (
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO is the row layout of the work_orders table.
type WorkOrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"size:64;not null;uniqueIndex"`
	Category       int       `gorm:"not null"`
	RequestType    string    `gorm:"size:128;not null;default:''"`
	Status         int       `gorm:"not null;index"`
	VisitDate      time.Time `gorm:"type:date;not null;index"`
	DriverNotes    string    `gorm:"type:text;not null;default:''"`
	CancelReason   *string   `gorm:"type:text"`
	CanceledAt     *time.Time
	Completion     CompletionDTO `gorm:"embedded;embeddedPrefix:completion_"`
	Version        int64         `gorm:"not null"`
	CreatedAt      time.Time     `gorm:"not null;autoCreateTime:false"`
	UpdatedAt      time.Time     `gorm:"not null;autoUpdateTime:false"`
}

// TableName overrides GORM's default naming.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// CompletionDTO is the embedded completion record. CompletedAt being NULL
// means the order was never completed.
type CompletionDTO struct {
	CustomerRequested         bool    `gorm:"not null;default:false"`
	FurnitureCompanyRequested bool    `gorm:"not null;default:false"`
	DriverNotes               string  `gorm:"type:text;not null;default:''"`
	AudioEvidenceRef          *string `gorm:"size:512"`
	CompletedAt               *time.Time
}

func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:             wo.ID().Value(),
		TrackingNumber: wo.TrackingNumber(),
		Category:       int(wo.Category()),
		RequestType:    wo.RequestType(),
		Status:         int(wo.Status()),
		VisitDate:      wo.VisitDate().Time(),
		DriverNotes:    wo.DriverNotes(),
		CancelReason:   wo.CancelReason(),
		CanceledAt:     wo.CanceledAt(),
		Completion:     completionFromDomain(wo.Completion()),
		Version:        wo.Version(),
		CreatedAt:      wo.CreatedAt(),
		UpdatedAt:      wo.UpdatedAt(),
	}
}

func completionFromDomain(c *workorder.CompletionInfo) CompletionDTO {
	if c == nil {
		return CompletionDTO{}
	}
	completedAt := c.CompletedAt
	return CompletionDTO{
		CustomerRequested:         c.CustomerRequested,
		FurnitureCompanyRequested: c.FurnitureCompanyRequested,
		DriverNotes:               c.DriverNotes,
		AudioEvidenceRef:          c.AudioEvidenceRef,
		CompletedAt:               &completedAt,
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var completion *workorder.CompletionInfo
	if dto.Completion.CompletedAt != nil {
		completion = &workorder.CompletionInfo{
			CustomerRequested:         dto.Completion.CustomerRequested,
			FurnitureCompanyRequested: dto.Completion.FurnitureCompanyRequested,
			DriverNotes:               dto.Completion.DriverNotes,
			AudioEvidenceRef:          dto.Completion.AudioEvidenceRef,
			CompletedAt:               *dto.Completion.CompletedAt,
		}
	}

	return workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:             id,
		TrackingNumber: dto.TrackingNumber,
		Category:       workorder.Category(dto.Category),
		RequestType:    dto.RequestType,
		Status:         workorder.Status(dto.Status),
		VisitDate:      kernel.DateOf(dto.VisitDate),
		DriverNotes:    dto.DriverNotes,
		CancelReason:   dto.CancelReason,
		CanceledAt:     dto.CanceledAt,
		Completion:     completion,
		Version:        dto.Version,
		CreatedAt:      dto.CreatedAt,
		UpdatedAt:      dto.UpdatedAt,
	})
}

// patchColumns lists the columns a patch writes. version is bumped in SQL so
// the statement never depends on a value read earlier.
func patchColumns(p workorder.Patch) map[string]any {
	columns := map[string]any{
		"status":       int(p.Status),
		"driver_notes": p.DriverNotes,
		"updated_at":   p.UpdatedAt,
	}
	if p.VisitDate != nil {
		columns["visit_date"] = p.VisitDate.Time()
	}
	if p.CancelReason != nil {
		columns["cancel_reason"] = *p.CancelReason
	}
	if p.CanceledAt != nil {
		columns["canceled_at"] = *p.CanceledAt
	}
	if p.Completion != nil {
		c := completionFromDomain(p.Completion)
		columns["completion_customer_requested"] = c.CustomerRequested
		columns["completion_furniture_company_requested"] = c.FurnitureCompanyRequested
		columns["completion_driver_notes"] = c.DriverNotes
		columns["completion_audio_evidence_ref"] = c.AudioEvidenceRef
		columns["completion_completed_at"] = c.CompletedAt
	}
	return columns
}
