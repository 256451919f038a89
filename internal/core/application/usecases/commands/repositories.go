// Package commands contains the operations that change work orders. Every
// handler follows the same shape: validate the command, run inside a unit of
// work, commit, then notify.
package commands

import (
	"context"
	"time"

	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work order repository within a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// WorkOrderUoW manages one transaction over work orders and reports what
	// was written so events go out after commit.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.WorkOrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	//   for _, wo := range uow.TrackedWorkOrders() { ... }
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
		TrackedWorkOrders() []*workorder.WorkOrder
	}

	// WorkOrderUoWFactory creates new work order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// ActionObserver receives the outcome of every action request.
	ActionObserver interface {
		ObserveAction(action workorder.ActionTag, outcome Outcome)
		ObserveConflictRetry(action workorder.ActionTag)
	}

	// Clock returns the current instant.
	Clock func() time.Time
)

// Outcome classifies how an action request ended.
type Outcome string

const (
	OutcomeApplied  Outcome = "applied"
	OutcomeRejected Outcome = "rejected"
	OutcomeInvalid  Outcome = "invalid"
	OutcomeNotFound Outcome = "not_found"
	OutcomeConflict Outcome = "conflict"
	OutcomeError    Outcome = "error"
)

// nopObserver is used when no ActionObserver is configured.
type nopObserver struct{}

func (nopObserver) ObserveAction(workorder.ActionTag, Outcome) {}

func (nopObserver) ObserveConflictRetry(workorder.ActionTag) {}
