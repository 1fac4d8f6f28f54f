// Package errs provides the error taxonomy shared by the job board core and its adapters.
//
// Every error type follows the same shape: a sentinel (ErrObjectNotFound,
// ErrValueIsInvalid, ErrValueIsOutOfRange, ErrValueIsRequired, ErrConflict),
// a struct carrying the offending parameter, New... and New...WithCause
// constructors, and an Unwrap method returning the sentinel. Transports
// classify failures with errors.Is against the sentinels; callers that need
// a specific failure compare against package-level pointer values built from
// these constructors (for example job.ErrAlreadyFilled).
package errs
