package workorder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/pkg/errs"
	"deliverytracker/internal/pkg/guard"
)

// ErrWorkOrderIsNotConstructed is returned by Validate for a WorkOrder that
// was not built by NewWorkOrder or RestoreWorkOrder.
var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")

// WorkOrder is a delivery, collection or remediation task. It only changes
// through Engine patches applied with WithPatch, which returns a new value.
type WorkOrder struct {
	id             kernel.UUID
	trackingNumber string
	category       Category
	requestType    string
	status         Status
	visitDate      kernel.Date
	driverNotes    string
	cancelReason   *string
	canceledAt     *time.Time
	completion     *CompletionInfo
	version        int64
	createdAt      time.Time
	updatedAt      time.Time

	guard guard.ConstructorGuard
}

// Snapshot is the flat form of a WorkOrder used by storage adapters.
type Snapshot struct {
	ID             kernel.UUID
	TrackingNumber string
	Category       Category
	RequestType    string
	Status         Status
	VisitDate      kernel.Date
	DriverNotes    string
	CancelReason   *string
	CanceledAt     *time.Time
	Completion     *CompletionInfo
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewWorkOrder registers a new order in Received. requestType is free text
// normalized by ParseCategory and kept verbatim for display. An empty
// tracking number is replaced by a generated one.
func NewWorkOrder(
	id kernel.UUID,
	trackingNumber string,
	requestType string,
	visitDate kernel.Date,
	now time.Time,
) (*WorkOrder, error) {
	category, categoryErr := ParseCategory(requestType)

	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" && id.Validate() == nil {
		trackingNumber = NewTrackingNumber(id, now)
	}

	wo := &WorkOrder{
		category:    category,
		requestType: strings.TrimSpace(requestType),
		status:      Received,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setTrackingNumber(trackingNumber),
		categoryErr,
		wo.setVisitDate(visitDate),
	); err != nil {
		return nil, err
	}

	return wo, nil
}

// RestoreWorkOrder rebuilds a persisted order. The category is not checked
// here: a stored order with an unknown category must still load so that
// actions on it are rejected with UnknownCategory rather than hidden.
func RestoreWorkOrder(s Snapshot) (*WorkOrder, error) {
	wo := &WorkOrder{
		category:     s.Category,
		requestType:  s.RequestType,
		driverNotes:  s.DriverNotes,
		cancelReason: s.CancelReason,
		canceledAt:   s.CanceledAt,
		completion:   s.Completion,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	var versionErr error
	if s.Version < 1 {
		versionErr = errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is not positive", s.Version))
	}

	if err := errors.Join(
		wo.setID(s.ID),
		wo.setTrackingNumber(s.TrackingNumber),
		wo.setStatus(s.Status),
		wo.setVisitDate(s.VisitDate),
		versionErr,
	); err != nil {
		return nil, err
	}
	wo.version = s.Version

	return wo, nil
}

// NewTrackingNumber derives a tracking number from the intake day and id,
// e.g. "WO-20261018-550E8400".
func NewTrackingNumber(id kernel.UUID, now time.Time) string {
	return fmt.Sprintf("WO-%s-%s", now.Format("20060102"), strings.ToUpper(id.String()[:8]))
}

// Validate ensures the order was built through a constructor.
func (w *WorkOrder) Validate() error {
	if w == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return w.guard.Validate(ErrWorkOrderIsNotConstructed)
}

func (w *WorkOrder) ID() kernel.UUID { return w.id }
func (w *WorkOrder) TrackingNumber() string { return w.trackingNumber }
func (w *WorkOrder) Category() Category { return w.category }
func (w *WorkOrder) RequestType() string { return w.requestType }
func (w *WorkOrder) Status() Status { return w.status }
func (w *WorkOrder) VisitDate() kernel.Date { return w.visitDate }
func (w *WorkOrder) DriverNotes() string { return w.driverNotes }
func (w *WorkOrder) CancelReason() *string { return w.cancelReason }
func (w *WorkOrder) CanceledAt() *time.Time { return w.canceledAt }
func (w *WorkOrder) Completion() *CompletionInfo { return w.completion }
func (w *WorkOrder) Version() int64 { return w.version }
func (w *WorkOrder) CreatedAt() time.Time { return w.createdAt }
func (w *WorkOrder) UpdatedAt() time.Time { return w.updatedAt }

// IsTerminal reports whether the order is cancelled or completed.
func (w *WorkOrder) IsTerminal() bool {
	return w.status.IsTerminal()
}

// Snapshot returns the flat form of the order.
func (w *WorkOrder) Snapshot() Snapshot {
	return Snapshot{
		ID:             w.id,
		TrackingNumber: w.trackingNumber,
		Category:       w.category,
		RequestType:    w.requestType,
		Status:         w.status,
		VisitDate:      w.visitDate,
		DriverNotes:    w.driverNotes,
		CancelReason:   w.cancelReason,
		CanceledAt:     w.canceledAt,
		Completion:     w.completion,
		Version:        w.version,
		CreatedAt:      w.createdAt,
		UpdatedAt:      w.updatedAt,
	}
}

// WithPatch returns the order as it is after p. The receiver is not modified
// and the returned order carries the next version.
func (w *WorkOrder) WithPatch(p Patch) *WorkOrder {
	next := *w
	next.status = p.Status
	next.driverNotes = p.DriverNotes
	next.updatedAt = p.UpdatedAt
	next.version = p.ExpectedVersion + 1

	if p.VisitDate != nil {
		next.visitDate = *p.VisitDate
	}
	if p.CancelReason != nil {
		reason := *p.CancelReason
		next.cancelReason = &reason
	}
	if p.CanceledAt != nil {
		at := *p.CanceledAt
		next.canceledAt = &at
	}
	if p.Completion != nil {
		completion := *p.Completion
		next.completion = &completion
	}
	return &next
}

func (w *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *WorkOrder) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	w.trackingNumber = trackingNumber
	return nil
}

func (w *WorkOrder) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	w.status = s
	return nil
}

func (w *WorkOrder) setVisitDate(d kernel.Date) error {
	if err := d.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("visitDate", err)
	}
	w.visitDate = d
	return nil
}
