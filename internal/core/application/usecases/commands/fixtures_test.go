package commands_test

import (
	"testing"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func testJob(t *testing.T) *job.Job {
	t.Helper()
	o, err := job.ParseOccurrence("2024-06-04", "09:00", "12:00")
	require.NoError(t, err)
	j, err := job.NewJob(kernel.NewUUID(), job.Posting{
		Title:    "Move boxes",
		Location: "12 Main St",
		Pay:      "$25/hr",
	}, "poster-1", o)
	require.NoError(t, err)
	return j
}
