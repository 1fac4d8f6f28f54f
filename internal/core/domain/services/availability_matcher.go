package services

import (
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
)

// AvailabilityMatcher decides whether a worker is free for the whole of a job.
//
// A job matches when at least one availability block on the job's weekday
// contains the job's start and end times, boundaries included. Partial overlap
// is not a match, and an empty block set never matches.
//
// The weekday comes from the job's calendar date alone, so a job dated
// 2024-06-01 is a Saturday job wherever the server runs.
type AvailabilityMatcher struct{}

func NewAvailabilityMatcher() AvailabilityMatcher {
	return AvailabilityMatcher{}
}

// Matches reports whether some block fully contains the job's occurrence.
func (AvailabilityMatcher) Matches(j *job.Job, blocks []kernel.TimeWindow) bool {
	if j.Validate() != nil || len(blocks) == 0 {
		return false
	}

	window := j.Occurrence().Window()
	for _, b := range blocks {
		if b.Contains(window) {
			return true
		}
	}
	return false
}
