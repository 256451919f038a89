// Package ports defines the contracts between the work order core and its
// infrastructure: persistence, the transaction boundary and event publishing.
package ports

import (
	"context"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work orders.
type WorkOrderRepository interface {
	// Add persists a new work order. A reused id or tracking number yields
	// *errs.AlreadyExistsError.
	Add(ctx context.Context, wo *workorder.WorkOrder) error

	// Get loads a work order by id or returns *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetByTrackingNumber loads a work order by its tracking number or
	// returns *errs.ObjectNotFoundError.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*workorder.WorkOrder, error)

	// UpdateIfUnchanged writes patch in a single conditional statement that
	// only matches while the stored record still has patch.ExpectedStatus and
	// patch.ExpectedVersion. When nothing matches it returns
	// *errs.ConflictError and the caller must re-read before deciding again.
	// On success it returns the work order as stored.
	UpdateIfUnchanged(ctx context.Context, wo *workorder.WorkOrder, patch workorder.Patch) (*workorder.WorkOrder, error)
}
