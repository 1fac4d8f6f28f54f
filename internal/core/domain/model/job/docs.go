// Package job provides the Job aggregate: a single short-term gig posted by a
// poster, and the applications workers submit for it.
//
// The package includes:
//   - Job: the aggregate root owning its applications
//   - Application: one worker's bid for a job
//   - ApplicationStatus: Pending -> Approved, where Approved is final
//   - Occurrence: the date and time span when the job takes place
//
// Key business rules:
//   - A job ends strictly after it starts, on the same calendar day
//   - A worker has at most one application per job; applying again changes nothing
//   - At most one application per job is ever approved. Approving fails with
//     ErrAlreadyFilled once a worker holds the job, and with
//     ErrApplicationNotFound when the worker never applied
//   - Competing applications stay Pending after approval. A worker learns
//     they were not selected by seeing the job filled by someone else
//
// Job is not safe for concurrent mutation. Callers serialise Apply and Approve
// on the same job through a unit of work.
package job
