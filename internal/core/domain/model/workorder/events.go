package workorder

import (
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
)

// TagCreate marks the event emitted when a work order is registered. It is
// not an Action: creation goes through NewWorkOrder.
const TagCreate ActionTag = "Create"

// ChangedEvent is published after a work order was created or changed. It
// carries enough to route the notification; consumers reload the record for
// anything else.
type ChangedEvent struct {
	EventID        string    `json:"eventId"`
	WorkOrderID    string    `json:"workOrderId"`
	TrackingNumber string    `json:"trackingNumber"`
	Action         ActionTag `json:"action"`
	Category       string    `json:"category"`
	FromStatus     string    `json:"fromStatus,omitempty"`
	Status         string    `json:"status"`
	VisitDate      string    `json:"visitDate"`
	Version        int64     `json:"version"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NewCreatedEvent describes the registration of wo.
func NewCreatedEvent(wo *WorkOrder) ChangedEvent {
	return newChangedEvent(wo, TagCreate, "", wo.CreatedAt())
}

// NewChangedEvent describes wo after patch was applied.
func NewChangedEvent(wo *WorkOrder, patch Patch) ChangedEvent {
	return newChangedEvent(wo, patch.Action, patch.ExpectedStatus.String(), patch.UpdatedAt)
}

func newChangedEvent(wo *WorkOrder, action ActionTag, from string, at time.Time) ChangedEvent {
	return ChangedEvent{
		EventID:        kernel.NewUUID().String(),
		WorkOrderID:    wo.ID().String(),
		TrackingNumber: wo.TrackingNumber(),
		Action:         action,
		Category:       wo.Category().String(),
		FromStatus:     from,
		Status:         wo.Status().String(),
		VisitDate:      wo.VisitDate().String(),
		Version:        wo.Version(),
		OccurredAt:     at,
	}
}

// Key is the partition key of the event: events of one work order share it.
func (e ChangedEvent) Key() string {
	return e.WorkOrderID
}
