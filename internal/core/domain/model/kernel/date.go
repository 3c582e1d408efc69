package kernel

import (
	"errors"
	"time"

	"assettransfer/internal/pkg/errs"
	"assettransfer/internal/pkg/guard"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

const secondsPerDay = 24 * 60 * 60

var ErrDateIsNotConstructed = errors.New("Date must be created via NewDate, ParseDate or DateOf")

// Date is a calendar date without time of day. It is stored as midnight UTC
// so that day arithmetic is exact.
type Date struct {
	t     time.Time
	guard guard.ConstructorGuard
}

// NewDate builds a date from its components. Out-of-range components are
// normalised the way time.Date does.
func NewDate(year int, month time.Month, dayOfMonth int) Date {
	return Date{
		t:     time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Validate reports whether the date was built by a constructor.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// String formats the date as "YYYY-MM-DD".
func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

// DaysSince returns the signed number of calendar days from other to d.
func (d Date) DaysSince(other Date) int {
	return int((d.t.Unix() - other.t.Unix()) / secondsPerDay)
}

// AddDays shifts the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.t.AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// IsEqual compares calendar dates.
func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}
