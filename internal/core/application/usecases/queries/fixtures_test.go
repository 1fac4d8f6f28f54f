package queries_test

import (
	"testing"
	"time"

	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func utcCatalog() services.JobCatalog {
	return services.NewJobCatalog(time.UTC)
}

func jobOn(t *testing.T, postedBy kernel.UserID, date, start, end string) *job.Job {
	t.Helper()
	o, err := job.ParseOccurrence(date, start, end)
	require.NoError(t, err)
	j, err := job.NewJob(kernel.NewUUID(), job.Posting{
		Title:    "Shift " + date,
		Location: "Depot",
		Pay:      "$20/hr",
	}, postedBy, o)
	require.NoError(t, err)
	return j
}

func workerWith(t *testing.T, id kernel.UserID, blocks ...string) *user.User {
	t.Helper()
	windows := make([]kernel.TimeWindow, 0, len(blocks))
	for _, b := range blocks {
		w, err := kernel.ParseTimeWindow(b)
		require.NoError(t, err)
		windows = append(windows, w)
	}
	u, err := user.RestoreUser(id, string(id), "hash", user.Worker, windows)
	require.NoError(t, err)
	return u
}

func jobIDs(views []queries.JobView) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.Job.ID())
	}
	return ids
}
