// Package user provides the User aggregate: an account that either posts jobs
// or works them, and the weekly availability a worker publishes.
//
// Availability is replaced as a whole; there is no per-block edit. Blocks may
// overlap, and a block whose end is not after its start is stored but never
// matches a job.
package user
