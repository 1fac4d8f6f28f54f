package queries

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/services"
	"jobboard/internal/pkg/guard"
)

var ErrGetAllJobsQueryIsNotConstructed = errors.New(
	"GetAllJobsQuery must be created via NewGetAllJobsQuery constructor",
)

// GetAllJobsQuery lists every job on the board in any state.
type GetAllJobsQuery struct {
	order services.SortOrder
	guard guard.ConstructorGuard
}

// NewGetAllJobsQuery accepts "newest" (the default) or "oldest".
func NewGetAllJobsQuery(order string) (GetAllJobsQuery, error) {
	o, err := services.ParseSortOrder(order)
	if err != nil {
		return GetAllJobsQuery{}, err
	}
	return GetAllJobsQuery{order: o, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAllJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllJobsQueryIsNotConstructed)
}

func (q GetAllJobsQuery) Order() services.SortOrder { return q.order }

type GetAllJobsQueryHandler struct {
	jobs    JobReader
	catalog services.JobCatalog
	now     Clock
}

func NewGetAllJobsQueryHandler(jobs JobReader, catalog services.JobCatalog, now Clock) GetAllJobsQueryHandler {
	return GetAllJobsQueryHandler{jobs: jobs, catalog: catalog, now: now}
}

func (h GetAllJobsQueryHandler) Handle(ctx context.Context, query GetAllJobsQuery) ([]JobView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.jobs.List(ctx)
	if err != nil {
		return nil, err
	}

	return viewsOf(h.catalog, h.catalog.SortByOccurrence(all, query.Order()), h.now()), nil
}
