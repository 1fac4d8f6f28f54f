package commands

import (
	"errors"
	"strings"

	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand posts a new job. Date and times arrive as text and are
// parsed here, so a constructed command always carries a valid occurrence.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(kernel.NewUUID(), job.Posting{
//	    Title: "Move boxes", Location: "12 Main St", Pay: "$25/hr",
//	}, "poster-1", "2024-06-04", "09:00", "12:00")
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	posting    job.Posting
	postedBy   kernel.UserID
	occurrence job.Occurrence

	guard guard.ConstructorGuard
}

// NewCreateJobCommand validates every field and reports all problems at once.
// Description is optional; every other field is required.
func NewCreateJobCommand(
	jobID kernel.UUID,
	posting job.Posting,
	postedBy string,
	date, startTime, endTime string,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setPosting(posting),
		cmd.setPostedBy(postedBy),
		cmd.setOccurrence(date, startTime, endTime),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) JobID() kernel.UUID         { return c.jobID }
func (c CreateJobCommand) Posting() job.Posting       { return c.posting }
func (c CreateJobCommand) PostedBy() kernel.UserID    { return c.postedBy }
func (c CreateJobCommand) Occurrence() job.Occurrence { return c.occurrence }

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setPosting(p job.Posting) error {
	var errList []error
	if strings.TrimSpace(p.Title) == "" {
		errList = append(errList, job.ErrTitleIsRequired)
	}
	if strings.TrimSpace(p.Location) == "" {
		errList = append(errList, job.ErrLocationIsRequired)
	}
	if strings.TrimSpace(p.Pay) == "" {
		errList = append(errList, job.ErrPayIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.posting = p
	return nil
}

func (c *CreateJobCommand) setPostedBy(postedBy string) error {
	id, err := kernel.NewUserID(postedBy)
	if err != nil {
		return ErrPostedByIsRequired
	}
	c.postedBy = id
	return nil
}

func (c *CreateJobCommand) setOccurrence(date, startTime, endTime string) error {
	fields := []struct{ name, value string }{
		{"date", date},
		{"startTime", startTime},
		{"endTime", endTime},
	}

	var missing []error
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, errs.NewValueIsRequiredError(f.name))
		}
	}
	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	o, err := job.ParseOccurrence(date, startTime, endTime)
	if err != nil {
		return err
	}
	c.occurrence = o
	return nil
}
