package queries

import (
	"context"
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetActiveWorkOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveWorkOrdersQueryHandler(db *gorm.DB) GetActiveWorkOrdersQueryHandler {
	return GetActiveWorkOrdersQueryHandler{db: db}
}

// Handle returns the active work orders ordered by visit date, then tracking number.
func (h GetActiveWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveWorkOrdersQuery,
) ([]WorkOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	terminal := make([]int, 0, 4)
	for _, s := range workorder.TerminalStatuses() {
		terminal = append(terminal, int(s))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			category,
			status,
			visit_date,
			updated_at
		FROM work_orders
		WHERE status NOT IN ?
		ORDER BY visit_date, tracking_number
	`, terminal).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]WorkOrderSummary, 0)
	for rows.Next() {
		var (
			id                 uuid.UUID
			trackingNumber     string
			category, status   int
			visitDate, updated time.Time
		)
		if err = rows.Scan(&id, &trackingNumber, &category, &status, &visitDate, &updated); err != nil {
			return nil, err
		}

		workOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		summaries = append(summaries, WorkOrderSummary{
			ID:             workOrderID,
			TrackingNumber: trackingNumber,
			Category:       workorder.Category(category),
			Status:         workorder.Status(status),
			VisitDate:      kernel.DateOf(visitDate),
			UpdatedAt:      updated,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
