package queries

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/services"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrListJobsForPosterQueryIsNotConstructed = errors.New(
	"ListJobsForPosterQuery must be created via NewListJobsForPosterQuery constructor",
)

// ListJobsForPosterQuery lists a poster's own jobs, filled and expired included.
type ListJobsForPosterQuery struct {
	posterID kernel.UserID
	order    services.SortOrder
	guard    guard.ConstructorGuard
}

func NewListJobsForPosterQuery(posterID, order string) (ListJobsForPosterQuery, error) {
	id, idErr := kernel.NewUserID(posterID)
	if idErr != nil {
		idErr = errs.NewValueIsRequiredError("posterId")
	}
	o, orderErr := services.ParseSortOrder(order)
	if err := errors.Join(idErr, orderErr); err != nil {
		return ListJobsForPosterQuery{}, err
	}

	return ListJobsForPosterQuery{posterID: id, order: o, guard: guard.NewConstructorGuard()}, nil
}

func (q ListJobsForPosterQuery) Validate() error {
	return q.guard.Validate(ErrListJobsForPosterQueryIsNotConstructed)
}

func (q ListJobsForPosterQuery) PosterID() kernel.UserID    { return q.posterID }
func (q ListJobsForPosterQuery) Order() services.SortOrder { return q.order }

type ListJobsForPosterQueryHandler struct {
	jobs    JobReader
	catalog services.JobCatalog
	now     Clock
}

func NewListJobsForPosterQueryHandler(
	jobs JobReader,
	catalog services.JobCatalog,
	now Clock,
) ListJobsForPosterQueryHandler {
	return ListJobsForPosterQueryHandler{jobs: jobs, catalog: catalog, now: now}
}

func (h ListJobsForPosterQueryHandler) Handle(ctx context.Context, query ListJobsForPosterQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	own := h.catalog.ListForPoster(all, query.PosterID())
	return viewsOf(h.catalog, h.catalog.SortByOccurrence(own, query.Order()), h.now()), nil
}
