package kernel

import (
	"fmt"
	"time"

	"deliverytracker/internal/pkg/errs"
)

// DateLayout is the wire and audit-trail representation of a Date.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed indicates a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, ParseDate, or DateOf")

// Date is a calendar day without a time of day or zone, used for visit dates.
// Two Dates compare by year, month and day only.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date and rejects days that do not exist (e.g. February 30).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%04d-%02d-%02d is not a calendar day", year, int(month), day),
		)
	}
	if year < 1 {
		return Date{}, errs.NewValueIsOutOfRangeError("year", year, 1, 9999)
	}
	return Date{year: year, month: month, day: day}, nil
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// Validate returns ErrDateIsNotConstructed for the zero value.
func (d Date) Validate() error {
	if d.year == 0 {
		return ErrDateIsNotConstructed
	}
	return nil
}

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool {
	return d.year == 0
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.day }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.compare(other) > 0
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.compare(other) < 0
}

// IsEqual reports whether both dates are the same calendar day.
func (d Date) IsEqual(other Date) bool {
	return d.compare(other) == 0
}

// Time returns midnight UTC of d, the form used for storage.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func (d Date) compare(other Date) int {
	switch {
	case d.year != other.year:
		return d.year - other.year
	case d.month != other.month:
		return int(d.month) - int(other.month)
	default:
		return d.day - other.day
	}
}
