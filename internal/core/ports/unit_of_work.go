package ports

import (
	"context"

	"deliverytracker/internal/core/domain/model/workorder"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Client code manages the
// transaction lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// WorkOrderRepository returns a repository bound to the current transaction.
	WorkOrderRepository() WorkOrderRepository

	// TrackedWorkOrders returns the work orders written through this unit of
	// work, in write order. Callers publish them once Commit succeeds.
	TrackedWorkOrders() []*workorder.WorkOrder
}
