// Package services holds domain logic that reads across jobs and users rather
// than belonging to one aggregate.
//
//   - AvailabilityMatcher: does a worker's weekly availability cover a job
//   - JobCatalog: browse, ownership, ordering and expiry over a set of jobs
//
// Both are pure: no I/O, no logging, no clock of their own.
package services
