package queries

import (
	"context"
	"errors"

	"jobboard/internal/core/domain/services"
	"jobboard/internal/pkg/guard"
)

var ErrGetJobBoardSummaryQueryIsNotConstructed = errors.New(
	"GetJobBoardSummaryQuery must be created via NewGetJobBoardSummaryQuery constructor",
)

// GetJobBoardSummaryQuery counts jobs by state for operational reporting.
type GetJobBoardSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetJobBoardSummaryQuery() GetJobBoardSummaryQuery {
	return GetJobBoardSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetJobBoardSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetJobBoardSummaryQueryIsNotConstructed)
}

// JobBoardSummary partitions the board: every job is counted in exactly one
// of Open, Filled and ExpiredUnfilled.
type JobBoardSummary struct {
	Total           int
	Open            int
	Filled          int
	ExpiredUnfilled int
	// PendingApplications counts applications waiting on open jobs.
	PendingApplications int
}

type GetJobBoardSummaryQueryHandler struct {
	jobs    JobReader
	catalog services.JobCatalog
	now     Clock
}

func NewGetJobBoardSummaryQueryHandler(
	jobs JobReader,
	catalog services.JobCatalog,
	now Clock,
) GetJobBoardSummaryQueryHandler {
	return GetJobBoardSummaryQueryHandler{jobs: jobs, catalog: catalog, now: now}
}

func (h GetJobBoardSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetJobBoardSummaryQuery,
) (JobBoardSummary, error) {
	if err := query.Validate(); err != nil {
		return JobBoardSummary{}, err
	}

	all, err := h.jobs.List(ctx)
	if err != nil {
		return JobBoardSummary{}, err
	}

	now := h.now()
	summary := JobBoardSummary{Total: len(all)}
	for _, j := range all {
		switch {
		case j.IsFilled():
			summary.Filled++
		case h.catalog.IsExpired(j, now):
			summary.ExpiredUnfilled++
		default:
			summary.Open++
			summary.PendingApplications += len(j.Applications())
		}
	}

	return summary, nil
}
