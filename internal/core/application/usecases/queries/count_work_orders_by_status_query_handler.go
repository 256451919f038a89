package queries

import (
	"context"

	"deliverytracker/internal/core/domain/model/workorder"

	"gorm.io/gorm"
)

type CountWorkOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewCountWorkOrdersByStatusQueryHandler(db *gorm.DB) CountWorkOrdersByStatusQueryHandler {
	return CountWorkOrdersByStatusQueryHandler{db: db}
}

// Handle returns a count for every valid status. Rows holding a status
// outside the enumeration are ignored.
func (h CountWorkOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountWorkOrdersByStatusQuery,
) (map[workorder.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []struct {
		Status int
		Total  int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS total
		FROM work_orders
		GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[workorder.Status]int64, len(workorder.AllStatuses()))
	for _, s := range workorder.AllStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		s := workorder.Status(row.Status)
		if s.Validate() == nil {
			counts[s] = row.Total
		}
	}

	return counts, nil
}
