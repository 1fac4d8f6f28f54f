package services

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
)

// SortOrder is the direction of SortByOccurrence.
type SortOrder int

const (
	// Newest puts the latest-ending job first.
	Newest SortOrder = iota
	// Oldest puts the earliest-ending job first.
	Oldest
)

// ParseSortOrder accepts "newest" and "oldest"; the empty string means Newest.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "newest":
		return Newest, nil
	case "oldest":
		return Oldest, nil
	default:
		return Newest, errs.NewValueIsInvalidErrorWithCause(
			"order", fmt.Errorf("%q is not one of newest, oldest", s))
	}
}

func (o SortOrder) String() string {
	if o == Oldest {
		return "oldest"
	}
	return "newest"
}

// WorkerListing is one job as a worker sees it while browsing.
type WorkerListing struct {
	Job *job.Job
	// Application is the browsing worker's own application, nil if they have not applied.
	Application *job.Application
	// Matches is the availability match result, computed whether or not the listing was filtered by it.
	Matches bool
}

// JobCatalog answers the read-side questions about a set of jobs: what a
// worker may browse, what a poster owns, in which order, and whether a job is
// over. It never mutates the jobs it is given.
//
// Dates and times on jobs carry no zone. The catalog reads them as wall-clock
// values in its location whenever it needs an instant.
type JobCatalog struct {
	matcher  AvailabilityMatcher
	location *time.Location
}

// NewJobCatalog returns a catalog reading job times in loc; nil means time.Local.
func NewJobCatalog(loc *time.Location) JobCatalog {
	if loc == nil {
		loc = time.Local
	}
	return JobCatalog{
		matcher:  NewAvailabilityMatcher(),
		location: loc,
	}
}

// Location returns the zone job times are read in.
func (c JobCatalog) Location() *time.Location {
	return c.location
}

// ListForWorker drops filled jobs, then, when onlyMatching is set, jobs the
// availability does not cover. Input order is kept.
func (c JobCatalog) ListForWorker(
	jobs []*job.Job,
	workerID kernel.UserID,
	availability []kernel.TimeWindow,
	onlyMatching bool,
) []WorkerListing {
	listings := make([]WorkerListing, 0, len(jobs))

	for _, j := range jobs {
		if j.IsFilled() {
			continue
		}

		matches := c.matcher.Matches(j, availability)
		if onlyMatching && !matches {
			continue
		}

		own, _ := j.ApplicationOf(workerID)
		listings = append(listings, WorkerListing{
			Job:         j,
			Application: own,
			Matches:     matches,
		})
	}

	return listings
}

// ListForPoster returns every job posted by posterID, filled or expired included.
func (c JobCatalog) ListForPoster(jobs []*job.Job, posterID kernel.UserID) []*job.Job {
	out := make([]*job.Job, 0)
	for _, j := range jobs {
		if j.IsPostedBy(posterID) {
			out = append(out, j)
		}
	}
	return out
}

// ApprovedFor returns the jobs workerID has been approved for.
func (c JobCatalog) ApprovedFor(jobs []*job.Job, workerID kernel.UserID) []*job.Job {
	out := make([]*job.Job, 0)
	for _, j := range jobs {
		if worker, ok := j.ApprovedWorker(); ok && worker == workerID {
			out = append(out, j)
		}
	}
	return out
}

// SortByOccurrence returns a new slice ordered by the instant each job ends.
// Jobs ending at the same instant keep their input order.
func (c JobCatalog) SortByOccurrence(jobs []*job.Job, order SortOrder) []*job.Job {
	sorted := slices.Clone(jobs)
	slices.SortStableFunc(sorted, func(a, b *job.Job) int {
		cmp := a.EndsAt(c.location).Compare(b.EndsAt(c.location))
		if order == Newest {
			return -cmp
		}
		return cmp
	})
	return sorted
}

// IsExpired reports whether the job ended strictly before now. Expired jobs
// are never removed from listings here; callers filter if they want to.
func (c JobCatalog) IsExpired(j *job.Job, now time.Time) bool {
	return j.EndsAt(c.location).Before(now)
}

// WithoutExpired drops jobs that ended before now.
func (c JobCatalog) WithoutExpired(jobs []*job.Job, now time.Time) []*job.Job {
	out := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		if !c.IsExpired(j, now) {
			out = append(out, j)
		}
	}
	return out
}
