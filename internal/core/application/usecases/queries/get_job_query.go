package queries

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/services"
	"jobboard/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery fetches one job.
type GetJobQuery struct {
	jobID kernel.UUID
	guard guard.ConstructorGuard
}

func NewGetJobQuery(jobID kernel.UUID) (GetJobQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobQuery{}, err
	}
	return GetJobQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

func (q GetJobQuery) JobID() kernel.UUID { return q.jobID }

type GetJobQueryHandler struct {
	jobs    JobReader
	catalog services.JobCatalog
	now     Clock
}

func NewGetJobQueryHandler(jobs JobReader, catalog services.JobCatalog, now Clock) GetJobQueryHandler {
	return GetJobQueryHandler{jobs: jobs, catalog: catalog, now: now}
}

// Handle fails with ports.ErrJobNotFound for an unknown id.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (JobView, error) {
	if err := query.Validate(); err != nil {
		return JobView{}, err
	}

	j, err := h.jobs.Get(ctx, query.JobID())
	if err != nil {
		return JobView{}, jobNotFound(err)
	}

	return JobView{
		Job:     j,
		Filled:  j.IsFilled(),
		Expired: h.catalog.IsExpired(j, h.now()),
	}, nil
}
