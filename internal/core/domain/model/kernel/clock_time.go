package kernel

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

const (
	// MinutesPerHour is the number of minutes in an hour.
	MinutesPerHour = 60
	// MinutesPerDay is the number of minutes in a day; ClockTime values are below it.
	MinutesPerDay = 24 * MinutesPerHour
)

// ErrClockTimeIsNotConstructed is returned when a zero-value ClockTime is used.
var ErrClockTimeIsNotConstructed = errs.NewValueIsRequiredError(
	"clock time must be created via NewClockTime or ParseClockTime")

// ClockTime is a wall-clock time of day with minute precision, from 00:00 to 23:59.
//
// Times are compared as minutes since midnight, never as strings, so "9:00"
// and "09:00" are the same value.
type ClockTime struct { //nolint:recvcheck //using for validation
	minutes int
	guard   guard.ConstructorGuard
}

// NewClockTime builds a ClockTime from an hour in [0, 23] and a minute in [0, 59].
func NewClockTime(hour, minute int) (ClockTime, error) {
	c := ClockTime{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		checkRange("hour", hour, 0, 23),
		checkRange("minute", minute, 0, MinutesPerHour-1),
	); err != nil {
		return ClockTime{}, err
	}

	c.minutes = hour*MinutesPerHour + minute
	return c, nil
}

// ParseClockTime parses "HH:MM" (a single-digit hour is accepted). Anything
// else, including seconds or signs, is rejected with a ValueIsInvalidError.
func ParseClockTime(s string) (ClockTime, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 || !isDigits(hh) || !isDigits(mm) {
		return ClockTime{}, errs.NewValueIsInvalidErrorWithCause(
			"time", fmt.Errorf("%q is not in HH:MM format", s))
	}

	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)

	return NewClockTime(hour, minute)
}

// MustParseClockTime is ParseClockTime for constants; it panics on malformed input.
func MustParseClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate fails for the zero value.
func (c ClockTime) Validate() error {
	return c.guard.Validate(ErrClockTimeIsNotConstructed)
}

// Hour returns the hour component.
func (c ClockTime) Hour() int {
	return c.minutes / MinutesPerHour
}

// Minute returns the minute component.
func (c ClockTime) Minute() int {
	return c.minutes % MinutesPerHour
}

// MinuteOfDay returns the number of minutes since midnight.
func (c ClockTime) MinuteOfDay() int {
	return c.minutes
}

// Compare returns -1, 0 or +1 depending on whether c is before, equal to or after other.
func (c ClockTime) Compare(other ClockTime) int {
	return cmp.Compare(c.minutes, other.minutes)
}

// Before reports whether c is strictly earlier than other.
func (c ClockTime) Before(other ClockTime) bool {
	return c.minutes < other.minutes
}

// After reports whether c is strictly later than other.
func (c ClockTime) After(other ClockTime) bool {
	return c.minutes > other.minutes
}

// String formats the time as zero-padded "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func checkRange(name string, value, minValue, maxValue int) error {
	if value < minValue || value > maxValue {
		return errs.NewValueIsOutOfRangeError(name, value, minValue, maxValue)
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
