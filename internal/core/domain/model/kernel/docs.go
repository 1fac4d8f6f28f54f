// Package kernel holds the value objects shared by the job board aggregates.
//
//   - UUID identifies jobs.
//   - UserID is the opaque identity of a poster or worker.
//   - CalendarDate and ClockTime describe when a job happens, without a zone.
//   - TimeWindow is a weekday plus a start and end time. Worker availability is
//     a set of windows and a job's occurrence projects onto one.
//
// Values are immutable. The zero value of each type is invalid and reports an
// error from Validate.
package kernel
