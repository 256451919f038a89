package kernel_test

import (
	"testing"
	"time"

	"deliverytracker/internal/core/domain/model/kernel"
	"deliverytracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	t.Run("accepts a calendar day", func(t *testing.T) {
		d, err := kernel.NewDate(2026, time.October, 18)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "2026-10-18", d.String())
		assert.Equal(t, 2026, d.Year())
		assert.Equal(t, time.October, d.Month())
		assert.Equal(t, 18, d.Day())
	})

	t.Run("rejects a day that does not exist", func(t *testing.T) {
		_, err := kernel.NewDate(2026, time.February, 30)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "2026-02-30 is not a calendar day")
	})

	t.Run("rejects year zero", func(t *testing.T) {
		_, err := kernel.NewDate(0, time.January, 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("parses YYYY-MM-DD", func(t *testing.T) {
		d, err := kernel.ParseDate("2026-10-19")

		require.NoError(t, err)
		assert.Equal(t, "2026-10-19", d.String())
	})

	for _, raw := range []string{"", "19-10-2026", "2026-10-19T10:00:00Z", "2026-13-01", "tomorrow"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := kernel.ParseDate(raw)

			var invalid *errs.ValueIsInvalidError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "date", invalid.ParamName)
		})
	}
}

func TestDateOf(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	instant := time.Date(2026, time.October, 18, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-10-18", kernel.DateOf(instant).String())
	assert.Equal(t, "2026-10-19", kernel.DateOf(instant.In(seoul)).String())
}

func TestDate_Compare(t *testing.T) {
	today := kernel.DateOf(time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC))
	tomorrow := kernel.DateOf(time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC))
	nextYear := kernel.DateOf(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, tomorrow.After(today))
	assert.False(t, today.After(today))
	assert.True(t, today.Before(tomorrow))
	assert.True(t, nextYear.After(tomorrow))
	assert.True(t, today.IsEqual(kernel.DateOf(time.Date(2026, time.October, 18, 23, 59, 0, 0, time.UTC))))
}

func TestDate_ZeroValue(t *testing.T) {
	var d kernel.Date

	assert.True(t, d.IsZero())
	assert.Equal(t, kernel.ErrDateIsNotConstructed, d.Validate())
}

func TestDate_Time(t *testing.T) {
	d, err := kernel.NewDate(2026, time.December, 31)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), d.Time())
	assert.True(t, d.IsEqual(kernel.DateOf(d.Time())))
}
