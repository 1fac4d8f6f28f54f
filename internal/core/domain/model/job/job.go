package job

import (
	"errors"
	"strings"
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

// Domain errors for job operations.
var (
	// ErrJobIsNotConstructed is returned for a Job not created through NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob")
	// ErrAlreadyFilled is returned when approving on a job that already has an approved worker.
	ErrAlreadyFilled = errs.NewConflictError("job", "already has an approved worker")
	// ErrApplicationNotFound is returned when approving a worker who never applied.
	ErrApplicationNotFound = errs.NewObjectNotFoundError("application", "application")

	ErrTitleIsRequired    = errs.NewValueIsRequiredError("title")
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	ErrPayIsRequired      = errs.NewValueIsRequiredError("pay")
)

// Posting is the descriptive part of a job as written by its poster. Pay is
// free text ("$20/hr", "negotiable") and is never interpreted.
type Posting struct {
	Title       string
	Description string
	Location    string
	Pay         string
}

// Job is a single short-term gig. It is the aggregate root for its
// applications and the only place the one-approved-worker rule is enforced.
type Job struct {
	id           kernel.UUID
	posting      Posting
	postedBy     kernel.UserID
	occurrence   Occurrence
	applications []*Application
	guard        guard.ConstructorGuard
}

// NewJob creates a job with no applications.
func NewJob(id kernel.UUID, posting Posting, postedBy kernel.UserID, occurrence Occurrence) (*Job, error) {
	return RestoreJob(id, posting, postedBy, occurrence, nil)
}

// RestoreJob rebuilds a job and its applications from storage. Application
// order is kept as given. Duplicate workers or more than one approved
// application are rejected.
func RestoreJob(
	id kernel.UUID,
	posting Posting,
	postedBy kernel.UserID,
	occurrence Occurrence,
	applications []*Application,
) (*Job, error) {
	j := &Job{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setPosting(posting),
		j.setPostedBy(postedBy),
		j.setOccurrence(occurrence),
		j.setApplications(applications),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate fails for a nil or unconstructed job.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares jobs by identity.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

func (j *Job) ID() kernel.UUID             { return j.id }
func (j *Job) Title() string               { return j.posting.Title }
func (j *Job) Description() string         { return j.posting.Description }
func (j *Job) Location() string            { return j.posting.Location }
func (j *Job) Pay() string                 { return j.posting.Pay }
func (j *Job) Posting() Posting            { return j.posting }
func (j *Job) PostedBy() kernel.UserID     { return j.postedBy }
func (j *Job) Occurrence() Occurrence      { return j.occurrence }
func (j *Job) Date() kernel.CalendarDate   { return j.occurrence.Date() }
func (j *Job) StartTime() kernel.ClockTime { return j.occurrence.Start() }
func (j *Job) EndTime() kernel.ClockTime   { return j.occurrence.End() }

// EndsAt is the end of the occurrence read as wall-clock time in loc.
func (j *Job) EndsAt(loc *time.Location) time.Time {
	return j.occurrence.EndsAt(loc)
}

// Applications returns a copy of the applications in arrival order.
func (j *Job) Applications() []*Application {
	out := make([]*Application, len(j.applications))
	for i, a := range j.applications {
		out[i] = a.clone()
	}
	return out
}

// ApplicationOf returns the application of workerID, if any.
func (j *Job) ApplicationOf(workerID kernel.UserID) (*Application, bool) {
	if a := j.find(workerID); a != nil {
		return a.clone(), true
	}
	return nil, false
}

// IsFilled reports whether some worker has been approved.
func (j *Job) IsFilled() bool {
	_, ok := j.ApprovedWorker()
	return ok
}

// ApprovedWorker returns the worker holding the job.
func (j *Job) ApprovedWorker() (kernel.UserID, bool) {
	for _, a := range j.applications {
		if a.IsApproved() {
			return a.workerID, true
		}
	}
	return "", false
}

// IsPostedBy reports whether userID owns the job.
func (j *Job) IsPostedBy(userID kernel.UserID) bool {
	return j.postedBy == userID
}

// Apply records a pending application for workerID. Applying twice is a no-op;
// the returned flag tells whether an application was added.
//
// Applying to a filled job is allowed. Browsing hides filled jobs, but the
// aggregate does not refuse the application.
func (j *Job) Apply(workerID kernel.UserID) (bool, error) {
	if err := workerID.Validate(); err != nil {
		return false, err
	}
	if j.find(workerID) != nil {
		return false, nil
	}

	a, err := newApplication(workerID)
	if err != nil {
		return false, err
	}
	j.applications = append(j.applications, a)
	return true, nil
}

// Approve gives the job to workerID. It fails with ErrAlreadyFilled if any
// application is already approved, including one by workerID itself, and with
// ErrApplicationNotFound if workerID never applied. Other applications are
// left untouched.
func (j *Job) Approve(workerID kernel.UserID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}
	if j.IsFilled() {
		return ErrAlreadyFilled
	}

	a := j.find(workerID)
	if a == nil {
		return ErrApplicationNotFound
	}
	return a.approve()
}

// Clone returns a deep copy that shares no mutable state with j.
func (j *Job) Clone() *Job {
	c := *j
	c.applications = j.Applications()
	return &c
}

func (j *Job) find(workerID kernel.UserID) *Application {
	for _, a := range j.applications {
		if a.workerID == workerID {
			return a
		}
	}
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setPosting(p Posting) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Location = strings.TrimSpace(p.Location)
	p.Pay = strings.TrimSpace(p.Pay)

	var errList []error
	if p.Title == "" {
		errList = append(errList, ErrTitleIsRequired)
	}
	if p.Location == "" {
		errList = append(errList, ErrLocationIsRequired)
	}
	if p.Pay == "" {
		errList = append(errList, ErrPayIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	j.posting = p
	return nil
}

func (j *Job) setPostedBy(postedBy kernel.UserID) error {
	if err := postedBy.Validate(); err != nil {
		return err
	}
	j.postedBy = postedBy
	return nil
}

func (j *Job) setOccurrence(o Occurrence) error {
	if err := o.Validate(); err != nil {
		return err
	}
	j.occurrence = o
	return nil
}

func (j *Job) setApplications(applications []*Application) error {
	seen := make(map[kernel.UserID]struct{}, len(applications))
	approved := 0
	restored := make([]*Application, 0, len(applications))

	for _, a := range applications {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, dup := seen[a.workerID]; dup {
			return errs.NewConflictError("applications", "worker "+a.workerID.String()+" applied twice")
		}
		seen[a.workerID] = struct{}{}
		if a.IsApproved() {
			approved++
		}
		restored = append(restored, a.clone())
	}

	if approved > 1 {
		return errs.NewConflictError("applications", "more than one approved application")
	}

	j.applications = restored
	return nil
}
