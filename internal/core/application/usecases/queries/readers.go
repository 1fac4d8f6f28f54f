// Package queries contains the read use cases of the job board. Queries never
// open a unit of work; they read committed state through the readers below
// and shape it with services.JobCatalog.
package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/domain/services"
	"jobboard/internal/core/ports"
	"jobboard/internal/pkg/errs"
)

type (
	// JobReader reads committed jobs.
	JobReader interface {
		Get(ctx context.Context, id kernel.UUID) (*job.Job, error)
		List(ctx context.Context) ([]*job.Job, error)
	}

	// UserReader reads committed users.
	UserReader interface {
		Get(ctx context.Context, id kernel.UserID) (*user.User, error)
		GetByUsername(ctx context.Context, username string) (*user.User, error)
	}

	// Clock returns the current time for expiry checks.
	Clock func() time.Time
)

// JobView is a job annotated for display.
type JobView struct {
	Job     *job.Job
	Filled  bool
	Expired bool
}

func viewsOf(catalog services.JobCatalog, jobs []*job.Job, now time.Time) []JobView {
	views := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, JobView{
			Job:     j,
			Filled:  j.IsFilled(),
			Expired: catalog.IsExpired(j, now),
		})
	}
	return views
}

func jobNotFound(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrJobNotFound, err)
	}
	return err
}

func userNotFound(err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w: %w", ports.ErrUserNotFound, err)
	}
	return err
}
