package postgres

import (
	"fmt"

	"deliverytracker/internal/adapters/out/postgres/workorderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&workorderrepo.WorkOrderDTO{}); err != nil {
		return fmt.Errorf("migrate work_orders: %w", err)
	}
	return nil
}
