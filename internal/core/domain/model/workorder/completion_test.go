package workorder_test

import (
	"testing"
	"time"

	"deliverytracker/internal/core/domain/model/workorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordCompletion(t *testing.T) {
	now := time.Date(2026, 10, 18, 15, 30, 0, 0, time.UTC)

	t.Run("defaults completedAt to now", func(t *testing.T) {
		info := workorder.RecordCompletion(workorder.CompletionDetail{DriverNotes: "  delivered  "}, now)

		assert.Equal(t, now, info.CompletedAt)
		assert.Equal(t, "delivered", info.DriverNotes)
		assert.Nil(t, info.AudioEvidenceRef)
	})

	t.Run("keeps explicit completedAt and evidence", func(t *testing.T) {
		at := now.Add(-2 * time.Hour)
		info := workorder.RecordCompletion(workorder.CompletionDetail{
			AudioEvidenceRef: "audio/2026/10/wo-1.m4a",
			CompletedAt:      &at,
		}, now)

		assert.Equal(t, at, info.CompletedAt)
		require.NotNil(t, info.AudioEvidenceRef)
		assert.Equal(t, "audio/2026/10/wo-1.m4a", *info.AudioEvidenceRef)
	})

	t.Run("attribution flags are independent", func(t *testing.T) {
		for _, flags := range [][2]bool{{false, false}, {true, false}, {false, true}, {true, true}} {
			info := workorder.RecordCompletion(workorder.CompletionDetail{
				CustomerRequested:         flags[0],
				FurnitureCompanyRequested: flags[1],
			}, now)
			assert.Equal(t, flags[0], info.CustomerRequested)
			assert.Equal(t, flags[1], info.FurnitureCompanyRequested)
		}
	})
}
