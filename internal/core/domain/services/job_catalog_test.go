package services_test

import (
	"testing"
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/services"
	"jobboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(t *testing.T, j *job.Job, workerID kernel.UserID) {
	t.Helper()
	_, err := j.Apply(workerID)
	require.NoError(t, err)
	require.NoError(t, j.Approve(workerID))
}

func ids(jobs []*job.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID().String()
	}
	return out
}

func TestJobCatalog_ListForWorker(t *testing.T) {
	catalog := services.NewJobCatalog(time.UTC)

	open := newJobAt(t, "2024-06-04", "09:00", "12:00")
	filled := newJobAt(t, "2024-06-04", "09:00", "12:00")
	fill(t, filled, "someone-else")
	offHours := newJobAt(t, "2024-06-04", "18:00", "20:00")
	applied := newJobAt(t, "2024-06-04", "10:00", "11:00")
	_, err := applied.Apply("w1")
	require.NoError(t, err)

	all := []*job.Job{open, filled, offHours, applied}
	availability := blocks(t, "2 08:00-13:00")

	t.Run("should hide filled jobs", func(t *testing.T) {
		listings := catalog.ListForWorker(all, "w1", availability, false)

		require.Len(t, listings, 3)
		assert.Same(t, open, listings[0].Job)
		assert.Same(t, offHours, listings[1].Job)
		assert.Same(t, applied, listings[2].Job)
	})

	t.Run("should annotate matches without filtering", func(t *testing.T) {
		listings := catalog.ListForWorker(all, "w1", availability, false)

		assert.True(t, listings[0].Matches)
		assert.False(t, listings[1].Matches)
		assert.True(t, listings[2].Matches)
	})

	t.Run("should filter to matching jobs", func(t *testing.T) {
		listings := catalog.ListForWorker(all, "w1", availability, true)

		require.Len(t, listings, 2)
		assert.Same(t, open, listings[0].Job)
		assert.Same(t, applied, listings[1].Job)
	})

	t.Run("should carry the worker's own application", func(t *testing.T) {
		listings := catalog.ListForWorker(all, "w1", availability, false)

		assert.Nil(t, listings[0].Application)
		require.NotNil(t, listings[2].Application)
		assert.Equal(t, kernel.UserID("w1"), listings[2].Application.WorkerID())
		assert.Equal(t, job.Pending, listings[2].Application.Status())
	})

	t.Run("should return nothing when matching without availability", func(t *testing.T) {
		assert.Empty(t, catalog.ListForWorker(all, "w2", nil, true))
	})

	t.Run("should hide a filled job from its approved worker too", func(t *testing.T) {
		listings := catalog.ListForWorker(all, "someone-else", nil, false)

		for _, l := range listings {
			assert.NotSame(t, filled, l.Job)
		}
	})
}

func TestJobCatalog_ListForPoster(t *testing.T) {
	catalog := services.NewJobCatalog(time.UTC)

	mine := newJobAt(t, "2024-06-04", "09:00", "12:00")
	mineFilled := newJobAt(t, "2020-01-01", "09:00", "12:00")
	fill(t, mineFilled, "w1")
	o, err := job.ParseOccurrence("2024-06-04", "09:00", "12:00")
	require.NoError(t, err)
	theirs, err := job.NewJob(kernel.NewUUID(), job.Posting{Title: "x", Location: "y", Pay: "z"}, "poster-2", o)
	require.NoError(t, err)

	got := catalog.ListForPoster([]*job.Job{mine, theirs, mineFilled}, "poster-1")

	assert.Equal(t, ids([]*job.Job{mine, mineFilled}), ids(got))
	assert.Empty(t, catalog.ListForPoster([]*job.Job{mine}, "nobody"))
}

func TestJobCatalog_ApprovedFor(t *testing.T) {
	catalog := services.NewJobCatalog(time.UTC)

	won := newJobAt(t, "2024-06-04", "09:00", "12:00")
	fill(t, won, "w1")
	lost := newJobAt(t, "2024-06-05", "09:00", "12:00")
	_, _ = lost.Apply("w1")
	fill(t, lost, "w2")
	pending := newJobAt(t, "2024-06-06", "09:00", "12:00")
	_, _ = pending.Apply("w1")

	got := catalog.ApprovedFor([]*job.Job{won, lost, pending}, "w1")

	assert.Equal(t, ids([]*job.Job{won}), ids(got))
}

func TestJobCatalog_SortByOccurrence(t *testing.T) {
	catalog := services.NewJobCatalog(time.UTC)

	first := newJobAt(t, "2024-01-01", "08:00", "10:00")
	second := newJobAt(t, "2024-01-02", "08:00", "09:00")
	input := []*job.Job{first, second}

	t.Run("newest first", func(t *testing.T) {
		got := catalog.SortByOccurrence(input, services.Newest)
		assert.Equal(t, ids([]*job.Job{second, first}), ids(got))
	})

	t.Run("oldest first", func(t *testing.T) {
		got := catalog.SortByOccurrence([]*job.Job{second, first}, services.Oldest)
		assert.Equal(t, ids([]*job.Job{first, second}), ids(got))
	})

	t.Run("same day sorts by end time not start time", func(t *testing.T) {
		longShift := newJobAt(t, "2024-01-01", "06:00", "18:00")
		shortShift := newJobAt(t, "2024-01-01", "12:00", "13:00")

		got := catalog.SortByOccurrence([]*job.Job{longShift, shortShift}, services.Oldest)
		assert.Equal(t, ids([]*job.Job{shortShift, longShift}), ids(got))
	})

	t.Run("ties keep input order in both directions", func(t *testing.T) {
		a := newJobAt(t, "2024-03-03", "08:00", "12:00")
		b := newJobAt(t, "2024-03-03", "09:00", "12:00")
		c := newJobAt(t, "2024-03-03", "10:00", "12:00")

		assert.Equal(t, ids([]*job.Job{a, b, c}), ids(catalog.SortByOccurrence([]*job.Job{a, b, c}, services.Oldest)))
		assert.Equal(t, ids([]*job.Job{a, b, c}), ids(catalog.SortByOccurrence([]*job.Job{a, b, c}, services.Newest)))
	})

	t.Run("does not reorder the input", func(t *testing.T) {
		_ = catalog.SortByOccurrence(input, services.Newest)
		assert.Equal(t, ids([]*job.Job{first, second}), ids(input))
	})
}

func TestJobCatalog_IsExpired(t *testing.T) {
	catalog := services.NewJobCatalog(time.UTC)
	j := newJobAt(t, "2024-06-04", "09:00", "12:00")

	assert.False(t, catalog.IsExpired(j, time.Date(2024, time.June, 4, 11, 59, 0, 0, time.UTC)))
	assert.False(t, catalog.IsExpired(j, time.Date(2024, time.June, 4, 12, 0, 0, 0, time.UTC)), "end instant itself")
	assert.True(t, catalog.IsExpired(j, time.Date(2024, time.June, 4, 12, 0, 1, 0, time.UTC)))
}

func TestJobCatalog_IsExpiredReadsTimesInItsLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	catalog := services.NewJobCatalog(tokyo)
	j := newJobAt(t, "2024-06-04", "09:00", "12:00")

	// 12:00 JST is 03:00 UTC.
	assert.True(t, catalog.IsExpired(j, time.Date(2024, time.June, 4, 4, 0, 0, 0, time.UTC)))
	assert.False(t, catalog.IsExpired(j, time.Date(2024, time.June, 4, 2, 0, 0, 0, time.UTC)))
}

func TestJobCatalog_WithoutExpired(t *testing.T) {
	catalog := services.NewJobCatalog(time.UTC)
	past := newJobAt(t, "2020-01-01", "09:00", "12:00")
	future := newJobAt(t, "2999-01-01", "09:00", "12:00")

	got := catalog.WithoutExpired([]*job.Job{past, future}, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, ids([]*job.Job{future}), ids(got))
}

func TestParseSortOrder(t *testing.T) {
	o, err := services.ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, services.Newest, o)

	o, err = services.ParseSortOrder("Oldest")
	require.NoError(t, err)
	assert.Equal(t, services.Oldest, o)
	assert.Equal(t, "oldest", o.String())

	_, err = services.ParseSortOrder("random")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
