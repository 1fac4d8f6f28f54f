package queries

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/services"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrListJobsForWorkerQueryIsNotConstructed = errors.New(
	"ListJobsForWorkerQuery must be created via NewListJobsForWorkerQuery constructor",
)

// ListJobsForWorkerQuery is the worker's browse screen: open jobs, optionally
// only those their availability covers, optionally without expired ones.
type ListJobsForWorkerQuery struct {
	workerID     kernel.UserID
	onlyMatching bool
	hideExpired  bool
	order        services.SortOrder
	guard        guard.ConstructorGuard
}

func NewListJobsForWorkerQuery(
	workerID string,
	onlyMatching bool,
	order string,
	hideExpired bool,
) (ListJobsForWorkerQuery, error) {
	id, idErr := kernel.NewUserID(workerID)
	if idErr != nil {
		idErr = errs.NewValueIsRequiredError("workerId")
	}
	o, orderErr := services.ParseSortOrder(order)
	if err := errors.Join(idErr, orderErr); err != nil {
		return ListJobsForWorkerQuery{}, err
	}

	return ListJobsForWorkerQuery{
		workerID:     id,
		onlyMatching: onlyMatching,
		hideExpired:  hideExpired,
		order:        o,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListJobsForWorkerQuery) Validate() error {
	return q.guard.Validate(ErrListJobsForWorkerQueryIsNotConstructed)
}

func (q ListJobsForWorkerQuery) WorkerID() kernel.UserID   { return q.workerID }
func (q ListJobsForWorkerQuery) OnlyMatching() bool        { return q.onlyMatching }
func (q ListJobsForWorkerQuery) HideExpired() bool         { return q.hideExpired }
func (q ListJobsForWorkerQuery) Order() services.SortOrder { return q.order }

// WorkerJobView is one browseable job with the worker's own application.
type WorkerJobView struct {
	Job *job.Job
	// Application is nil when the worker has not applied.
	Application *job.Application
	Matches     bool
	Expired     bool
}

type ListJobsForWorkerQueryHandler struct {
	jobs    JobReader
	users   UserReader
	catalog services.JobCatalog
	now     Clock
}

func NewListJobsForWorkerQueryHandler(
	jobs JobReader,
	users UserReader,
	catalog services.JobCatalog,
	now Clock,
) ListJobsForWorkerQueryHandler {
	return ListJobsForWorkerQueryHandler{jobs: jobs, users: users, catalog: catalog, now: now}
}

// Handle never fails for an unknown worker; such a worker simply has no
// availability, so nothing matches.
func (h ListJobsForWorkerQueryHandler) Handle(
	ctx context.Context,
	query ListJobsForWorkerQuery,
) ([]WorkerJobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var availability []kernel.TimeWindow
	worker, err := h.users.Get(ctx, query.WorkerID())
	switch {
	case err == nil:
		availability = worker.Availability()
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	all, err := h.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	now := h.now()
	candidates := h.catalog.SortByOccurrence(all, query.Order())
	if query.HideExpired() {
		candidates = h.catalog.WithoutExpired(candidates, now)
	}

	listings := h.catalog.ListForWorker(candidates, query.WorkerID(), availability, query.OnlyMatching())

	views := make([]WorkerJobView, 0, len(listings))
	for _, l := range listings {
		views = append(views, WorkerJobView{
			Job:         l.Job,
			Application: l.Application,
			Matches:     l.Matches,
			Expired:     h.catalog.IsExpired(l.Job, now),
		})
	}
	return views, nil
}
