package workorder_test

import (
	"testing"

	"deliverytracker/internal/core/domain/model/workorder"
	"deliverytracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range workorder.AllStatuses() {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.ErrorIs(t, workorder.Unknown.Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, workorder.Status(-1).Validate(), errs.ErrValueIsInvalid)
	assert.ErrorIs(t, workorder.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "InCollection", workorder.InCollection.String())
	assert.Equal(t, "CompletedRemediation", workorder.CompletedRemediation.String())
	assert.Equal(t, "Unknown", workorder.Status(42).String())
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[workorder.Status]bool{
		workorder.Cancelled:            true,
		workorder.CompletedStandard:    true,
		workorder.CompletedCollection:  true,
		workorder.CompletedRemediation: true,
	}

	for _, s := range workorder.AllStatuses() {
		assert.Equal(t, terminal[s], s.IsTerminal(), s.String())
	}
	assert.ElementsMatch(t, []workorder.Status{
		workorder.Cancelled,
		workorder.CompletedStandard,
		workorder.CompletedCollection,
		workorder.CompletedRemediation,
	}, workorder.TerminalStatuses())
	assert.False(t, workorder.Cancelled.IsCompleted())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want workorder.Status
	}{
		{"Received", workorder.Received},
		{"received", workorder.Received},
		{"in_delivery", workorder.InDelivery},
		{"IN-COLLECTION", workorder.InCollection},
		{" Postponed ", workorder.Postponed},
		{"completed_remediation", workorder.CompletedRemediation},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := workorder.ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, in := range []string{"", "Unknown", "shipped", "배송중"} {
			_, err := workorder.ParseStatus(in)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
		}
	})
}
