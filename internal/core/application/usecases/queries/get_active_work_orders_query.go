// Package queries contains read-only use cases over work orders. Listing
// queries read the work_orders table directly with GORM; single-record
// lookups go through the repository so they return the full aggregate.
package queries

import (
	"errors"
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/pkg/guard"
)

var ErrGetActiveWorkOrdersQueryIsNotConstructed = errors.New(
	"GetActiveWorkOrdersQuery must be created via NewGetActiveWorkOrdersQuery constructor",
)

// GetActiveWorkOrdersQuery lists every work order that is not cancelled or
// completed, earliest visit first.
type GetActiveWorkOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveWorkOrdersQuery() GetActiveWorkOrdersQuery {
	return GetActiveWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveWorkOrdersQueryIsNotConstructed)
}

// WorkOrderSummary is one row of the active list.
type WorkOrderSummary struct {
	ID             kernel.UUID
	TrackingNumber string
	Category       workorder.Category
	Status         workorder.Status
	VisitDate      kernel.Date
	UpdatedAt      time.Time
}
