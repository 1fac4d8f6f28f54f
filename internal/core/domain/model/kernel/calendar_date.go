package kernel

import (
	"cmp"
	"fmt"
	"time"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

// ErrCalendarDateIsNotConstructed is returned when a zero-value CalendarDate is used.
var ErrCalendarDateIsNotConstructed = errs.NewValueIsRequiredError(
	"calendar date must be created via NewCalendarDate or ParseCalendarDate")

// CalendarDate is a day in the proleptic Gregorian calendar without a time zone.
//
// The components are kept as written by the poster. They are never routed
// through an instant in some zone, so the weekday of "2024-06-01" is Saturday
// regardless of where the process runs.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
	guard guard.ConstructorGuard
}

// NewCalendarDate validates that year, month and day name an existing day.
func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, errs.NewValueIsInvalidErrorWithCause(
			"date", fmt.Errorf("%04d-%02d-%02d is not a calendar day", year, int(month), day))
	}

	return CalendarDate{
		year:  year,
		month: month,
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseCalendarDate parses an ISO "YYYY-MM-DD" date.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return CalendarDate{}, errs.NewValueIsInvalidErrorWithCause(
			"date", fmt.Errorf("%q is not in YYYY-MM-DD format", s))
	}
	return NewCalendarDate(t.Year(), t.Month(), t.Day())
}

// MustParseCalendarDate is ParseCalendarDate for constants; it panics on malformed input.
func MustParseCalendarDate(s string) CalendarDate {
	d, err := ParseCalendarDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Validate fails for the zero value.
func (d CalendarDate) Validate() error {
	return d.guard.Validate(ErrCalendarDateIsNotConstructed)
}

func (d CalendarDate) Year() int         { return d.year }
func (d CalendarDate) Month() time.Month { return d.month }
func (d CalendarDate) Day() int          { return d.day }

// Weekday returns the day of the week, Sunday being 0.
func (d CalendarDate) Weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Weekday()
}

// At combines the date with a wall-clock time in loc.
func (d CalendarDate) At(c ClockTime, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, c.Hour(), c.Minute(), 0, 0, loc)
}

// Compare orders dates chronologically.
func (d CalendarDate) Compare(other CalendarDate) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, other.day)
}

// String formats the date as "YYYY-MM-DD".
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}
