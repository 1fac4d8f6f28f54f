// Package ports defines the contracts between the job board core and its
// adapters: storage, unit of work, event publishing and authentication.
package ports

import (
	"context"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
)

// JobRepository persists Job aggregates together with their applications.
//
// Jobs handed out are copies; mutating one has no effect until it is passed
// back through Update within a committed unit of work.
type JobRepository interface {
	// Add stores a new job.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update replaces the stored job and its applications.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get returns the job with id. Inside a unit of work the job stays locked
	// against other writers until commit or rollback. A missing job is
	// reported with an error matching errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// Delete removes the job and its applications.
	Delete(ctx context.Context, id kernel.UUID) error

	// List returns every job in creation order.
	List(ctx context.Context) ([]*job.Job, error)
}
