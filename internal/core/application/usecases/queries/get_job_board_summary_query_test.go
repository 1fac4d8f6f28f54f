package queries_test

import (
	"errors"
	"testing"

	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJobBoardSummaryQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	expired := jobOn(t, "p1", "2024-06-04", "09:00", "12:00")
	_, err := expired.Apply("w1")
	require.NoError(t, err)
	filledAndOver := jobOn(t, "p1", "2024-06-05", "09:00", "12:00")
	_, err = filledAndOver.Apply("w1")
	require.NoError(t, err)
	require.NoError(t, filledAndOver.Approve("w1"))
	open := jobOn(t, "p2", "2024-06-11", "09:00", "12:00")
	_, err = open.Apply("w1")
	require.NoError(t, err)
	_, err = open.Apply("w2")
	require.NoError(t, err)
	// Ends exactly at fixedNow, so it is still open.
	endingNow := jobOn(t, "p2", "2024-06-08", "09:00", "12:00")

	reader := new(MockJobReader)
	reader.On("List", ctx).Return([]*job.Job{expired, filledAndOver, open, endingNow}, nil).Once()

	h := queries.NewGetJobBoardSummaryQueryHandler(reader, utcCatalog(), fixedClock)
	summary, err := h.Handle(ctx, queries.NewGetJobBoardSummaryQuery())

	require.NoError(t, err)
	assert.Equal(t, queries.JobBoardSummary{
		Total:               4,
		Open:                2,
		Filled:              1,
		ExpiredUnfilled:     1,
		PendingApplications: 2,
	}, summary)
	reader.AssertExpectations(t)
}

func TestGetJobBoardSummaryQueryHandler_Handle_Errors(t *testing.T) {
	ctx := t.Context()
	reader := new(MockJobReader)
	h := queries.NewGetJobBoardSummaryQueryHandler(reader, utcCatalog(), fixedClock)

	_, err := h.Handle(ctx, queries.GetJobBoardSummaryQuery{})
	require.ErrorIs(t, err, queries.ErrGetJobBoardSummaryQueryIsNotConstructed)

	listErr := errors.New("storage down")
	reader.On("List", ctx).Return(nil, listErr).Once()
	_, err = h.Handle(ctx, queries.NewGetJobBoardSummaryQuery())
	require.ErrorIs(t, err, listErr)
}
