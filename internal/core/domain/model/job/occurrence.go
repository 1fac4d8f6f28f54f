package job

import (
	"errors"
	"fmt"
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

// ErrOccurrenceIsNotConstructed is returned for a zero-value Occurrence.
var ErrOccurrenceIsNotConstructed = errs.NewValueIsRequiredError(
	"occurrence must be created via NewOccurrence")

// Occurrence is the single span of time a job takes: a calendar date and a
// start and end time on that date. Jobs never cross midnight.
type Occurrence struct {
	date  kernel.CalendarDate
	start kernel.ClockTime
	end   kernel.ClockTime
	guard guard.ConstructorGuard
}

// NewOccurrence requires end to be strictly after start.
func NewOccurrence(date kernel.CalendarDate, start, end kernel.ClockTime) (Occurrence, error) {
	if err := errors.Join(
		date.Validate(),
		start.Validate(),
		end.Validate(),
	); err != nil {
		return Occurrence{}, err
	}

	if !end.After(start) {
		return Occurrence{}, errs.NewValueIsInvalidErrorWithCause(
			"endTime", fmt.Errorf("%s is not after start time %s", end, start))
	}

	return Occurrence{
		date:  date,
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseOccurrence builds an Occurrence from "YYYY-MM-DD" and two "HH:MM" values.
func ParseOccurrence(date, start, end string) (Occurrence, error) {
	d, dateErr := kernel.ParseCalendarDate(date)
	s, startErr := kernel.ParseClockTime(start)
	e, endErr := kernel.ParseClockTime(end)
	if err := errors.Join(dateErr, startErr, endErr); err != nil {
		return Occurrence{}, err
	}
	return NewOccurrence(d, s, e)
}

func (o Occurrence) Validate() error {
	return o.guard.Validate(ErrOccurrenceIsNotConstructed)
}

func (o Occurrence) Date() kernel.CalendarDate { return o.date }
func (o Occurrence) Start() kernel.ClockTime   { return o.start }
func (o Occurrence) End() kernel.ClockTime     { return o.end }

// Window projects the occurrence onto its weekday.
func (o Occurrence) Window() kernel.TimeWindow {
	w, err := kernel.NewTimeWindow(int(o.date.Weekday()), o.start, o.end)
	if err != nil {
		// unreachable for a constructed occurrence
		return kernel.TimeWindow{}
	}
	return w
}

// StartsAt returns the start instant with the date read as wall-clock time in loc.
func (o Occurrence) StartsAt(loc *time.Location) time.Time {
	return o.date.At(o.start, loc)
}

// EndsAt returns the end instant with the date read as wall-clock time in loc.
func (o Occurrence) EndsAt(loc *time.Location) time.Time {
	return o.date.At(o.end, loc)
}

func (o Occurrence) String() string {
	return fmt.Sprintf("%s %s-%s", o.date, o.start, o.end)
}
