package workorder_test

import (
	"testing"
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/require"
)

var requestTypes = map[workorder.Category]string{
	workorder.Standard:    "general",
	workorder.Collection:  "return",
	workorder.Remediation: "processing",
}

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

func restore(t *testing.T, status workorder.Status, category workorder.Category) *workorder.WorkOrder {
	t.Helper()
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	wo, err := workorder.RestoreWorkOrder(workorder.Snapshot{
		ID:             kernel.NewUUID(),
		TrackingNumber: "WO-20261001-TEST0001",
		Category:       category,
		RequestType:    requestTypes[category],
		Status:         status,
		VisitDate:      mustDate(t, "2026-10-20"),
		DriverNotes:    "Dispatch (2026-10-01): Received -> Dispatched",
		Version:        3,
		CreatedAt:      created,
		UpdatedAt:      created,
	})
	require.NoError(t, err)
	return wo
}

func nonTerminalStatuses() []workorder.Status {
	var out []workorder.Status
	for _, s := range workorder.AllStatuses() {
		if !s.IsTerminal() {
			out = append(out, s)
		}
	}
	return out
}

func categories() []workorder.Category {
	return []workorder.Category{workorder.Standard, workorder.Collection, workorder.Remediation}
}
