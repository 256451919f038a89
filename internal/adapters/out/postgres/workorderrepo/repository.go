package workorderrepo

import (
	"context"
	"errors"
	"fmt"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkOrderRepository implements ports.WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects the work orders written by this repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new work order. The database must be opened with
// gorm.Config.TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
func (r *GormWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	if err := wo.Validate(); err != nil {
		return err
	}

	dto := fromDomain(wo)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExistsError("trackingNumber", wo.TrackingNumber())
		}
		return fmt.Errorf("insert work order %s: %w", wo.ID(), err)
	}

	r.tracker.TrackAggregate(wo.ID(), wo)
	return nil
}

// Get retrieves a work order by id.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a work order by tracking number.
func (r *GormWorkOrderRepository) GetByTrackingNumber(
	ctx context.Context,
	trackingNumber string,
) (*workorder.WorkOrder, error) {
	if trackingNumber == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}

	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "tracking_number = ?", trackingNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateIfUnchanged applies patch with one UPDATE guarded by the expected
// status and version. Zero affected rows means another writer got there first.
func (r *GormWorkOrderRepository) UpdateIfUnchanged(
	ctx context.Context,
	wo *workorder.WorkOrder,
	patch workorder.Patch,
) (*workorder.WorkOrder, error) {
	if err := wo.Validate(); err != nil {
		return nil, err
	}

	columns := patchColumns(patch)
	columns["version"] = gorm.Expr("version + 1")

	result := r.db.WithContext(ctx).
		Model(&WorkOrderDTO{}).
		Where("id = ? AND status = ? AND version = ?",
			wo.ID().Value(), int(patch.ExpectedStatus), patch.ExpectedVersion).
		Updates(columns)
	if result.Error != nil {
		return nil, fmt.Errorf("update work order %s: %w", wo.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewConflictError("workOrder", wo.ID().String())
	}

	next := wo.WithPatch(patch)
	r.tracker.TrackAggregate(next.ID(), next)
	return next, nil
}
