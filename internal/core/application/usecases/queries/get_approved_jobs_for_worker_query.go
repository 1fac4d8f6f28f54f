package queries

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/services"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrGetApprovedJobsForWorkerQueryIsNotConstructed = errors.New(
	"GetApprovedJobsForWorkerQuery must be created via NewGetApprovedJobsForWorkerQuery constructor",
)

// GetApprovedJobsForWorkerQuery lists the jobs a worker has been given,
// soonest first.
type GetApprovedJobsForWorkerQuery struct {
	workerID kernel.UserID
	guard    guard.ConstructorGuard
}

func NewGetApprovedJobsForWorkerQuery(workerID string) (GetApprovedJobsForWorkerQuery, error) {
	id, err := kernel.NewUserID(workerID)
	if err != nil {
		return GetApprovedJobsForWorkerQuery{}, errs.NewValueIsRequiredError("workerId")
	}
	return GetApprovedJobsForWorkerQuery{workerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetApprovedJobsForWorkerQuery) Validate() error {
	return q.guard.Validate(ErrGetApprovedJobsForWorkerQueryIsNotConstructed)
}

func (q GetApprovedJobsForWorkerQuery) WorkerID() kernel.UserID { return q.workerID }

type GetApprovedJobsForWorkerQueryHandler struct {
	jobs    JobReader
	catalog services.JobCatalog
	now     Clock
}

func NewGetApprovedJobsForWorkerQueryHandler(
	jobs JobReader,
	catalog services.JobCatalog,
	now Clock,
) GetApprovedJobsForWorkerQueryHandler {
	return GetApprovedJobsForWorkerQueryHandler{jobs: jobs, catalog: catalog, now: now}
}

func (h GetApprovedJobsForWorkerQueryHandler) Handle(
	ctx context.Context,
	query GetApprovedJobsForWorkerQuery,
) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	approved := h.catalog.ApprovedFor(all, query.WorkerID())
	return viewsOf(h.catalog, h.catalog.SortByOccurrence(approved, services.Oldest), h.now()), nil
}
