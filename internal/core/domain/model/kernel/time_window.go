package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when a zero-value TimeWindow is used.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow or ParseTimeWindow")

// TimeWindow is a span of wall-clock time on a day of the week. Workers
// describe their recurring availability as a set of windows, and a job's
// occurrence projects onto one.
//
// A window whose end is not after its start (for example one meant to cross
// midnight) is accepted but contains nothing.
type TimeWindow struct { //nolint:recvcheck //using for validation
	day   time.Weekday
	start ClockTime
	end   ClockTime
	guard guard.ConstructorGuard
}

// NewTimeWindow builds a window for dayOfWeek in [0, 6], Sunday being 0.
func NewTimeWindow(dayOfWeek int, start, end ClockTime) (TimeWindow, error) {
	w := TimeWindow{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		w.setDay(dayOfWeek),
		w.setStart(start),
		w.setEnd(end),
	); err != nil {
		return TimeWindow{}, err
	}

	return w, nil
}

// ParseTimeWindow parses the form produced by String, "<day> HH:MM-HH:MM".
func ParseTimeWindow(s string) (TimeWindow, error) {
	dayPart, span, ok := strings.Cut(strings.TrimSpace(s), " ")
	startPart, endPart, okSpan := strings.Cut(span, "-")
	if !ok || !okSpan {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"timeWindow", fmt.Errorf("%q is not in \"D HH:MM-HH:MM\" format", s))
	}

	day, err := strconv.Atoi(dayPart)
	if err != nil {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("dayOfWeek", err)
	}
	start, err := ParseClockTime(startPart)
	if err != nil {
		return TimeWindow{}, err
	}
	end, err := ParseClockTime(endPart)
	if err != nil {
		return TimeWindow{}, err
	}

	return NewTimeWindow(day, start, end)
}

// Validate fails for the zero value.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

func (w TimeWindow) Day() time.Weekday { return w.day }
func (w TimeWindow) Start() ClockTime  { return w.start }
func (w TimeWindow) End() ClockTime    { return w.end }

// IsWellFormed reports whether the window ends after it starts.
func (w TimeWindow) IsWellFormed() bool {
	return w.end.After(w.start)
}

// Contains reports whether other lies entirely inside w on the same weekday.
// Both boundaries are inclusive; partial overlap is not containment.
func (w TimeWindow) Contains(other TimeWindow) bool {
	if w.Validate() != nil || other.Validate() != nil {
		return false
	}
	return w.day == other.day &&
		!other.start.Before(w.start) &&
		!other.end.After(w.end) &&
		other.end.After(other.start)
}

// Overlaps reports whether the two windows share any minute on the same weekday.
// Windows that only touch at a boundary do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	if w.Validate() != nil || other.Validate() != nil {
		return false
	}
	return w.day == other.day &&
		w.start.Before(other.end) &&
		other.start.Before(w.end)
}

// IsEqual compares day, start and end.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.day == other.day &&
		w.start.Compare(other.start) == 0 &&
		w.end.Compare(other.end) == 0
}

// String formats the window as "<day> HH:MM-HH:MM", e.g. "2 09:00-12:00".
func (w TimeWindow) String() string {
	return fmt.Sprintf("%d %s-%s", int(w.day), w.start, w.end)
}

func (w *TimeWindow) setDay(dayOfWeek int) error {
	if dayOfWeek < int(time.Sunday) || dayOfWeek > int(time.Saturday) {
		return errs.NewValueIsOutOfRangeError("dayOfWeek", dayOfWeek, int(time.Sunday), int(time.Saturday))
	}
	w.day = time.Weekday(dayOfWeek)
	return nil
}

func (w *TimeWindow) setStart(start ClockTime) error {
	if err := start.Validate(); err != nil {
		return err
	}
	w.start = start
	return nil
}

func (w *TimeWindow) setEnd(end ClockTime) error {
	if err := end.Validate(); err != nil {
		return err
	}
	w.end = end
	return nil
}
