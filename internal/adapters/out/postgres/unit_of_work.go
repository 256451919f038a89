// Package postgres provides the GORM-based unit of work and schema migration
// for the work order store.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it after Begin run inside that transaction, and every work order they write
// is tracked so the caller can publish events once Commit succeeds:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.WorkOrderRepository().Add(ctx, wo); err != nil {
//	    return err
//	}
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//	for _, changed := range uow.TrackedWorkOrders() {
//	    publish(changed)
//	}
//
// Each UnitOfWork instance is single-goroutine; concurrent commands create
// their own through the factory.
package postgres

import (
	"context"

	"deliverytracker/internal/adapters/out/postgres/workorderrepo"
	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a new unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and tracks the work
// orders written during it.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []*workorder.WorkOrder
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.tracked = nil
	return nil
}

// Commit finalizes the transaction. It returns gorm.ErrInvalidTransaction
// when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction and forgets tracked work orders. It
// returns gorm.ErrInvalidTransaction when none is open, which makes a
// deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = nil
	return err
}

// WorkOrderRepository returns a repository bound to the open transaction, or
// to the connection pool when no transaction is open.
func (uow *GormUnitOfWork) WorkOrderRepository() ports.WorkOrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return workorderrepo.NewGormWorkOrderRepository(db, uow)
}

// TrackAggregate records a work order written by a repository of this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(_ kernel.UUID, aggregate any) {
	if wo, ok := aggregate.(*workorder.WorkOrder); ok {
		uow.tracked = append(uow.tracked, wo)
	}
}

// TrackedWorkOrders returns the work orders written since Begin.
func (uow *GormUnitOfWork) TrackedWorkOrders() []*workorder.WorkOrder {
	out := make([]*workorder.WorkOrder, len(uow.tracked))
	copy(out, uow.tracked)
	return out
}
