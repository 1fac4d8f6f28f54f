package job

import (
	"errors"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/guard"
)

// Application is a worker's request to take a job. It belongs to exactly one
// Job and is only changed through that Job.
type Application struct {
	workerID kernel.UserID
	status   ApplicationStatus
	guard    guard.ConstructorGuard
}

// ErrApplicationIsNotConstructed is returned for a zero-value Application.
var ErrApplicationIsNotConstructed = errors.New("Application must be created via RestoreApplication or Job.Apply")

func newApplication(workerID kernel.UserID) (*Application, error) {
	return RestoreApplication(workerID, Pending)
}

// RestoreApplication rebuilds an application loaded from storage.
func RestoreApplication(workerID kernel.UserID, status ApplicationStatus) (*Application, error) {
	if err := errors.Join(
		workerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Application{
		workerID: workerID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate fails for applications not built by this package.
func (a *Application) Validate() error {
	if a == nil {
		return ErrApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrApplicationIsNotConstructed)
}

func (a *Application) WorkerID() kernel.UserID   { return a.workerID }
func (a *Application) Status() ApplicationStatus { return a.status }

// IsApproved reports whether this application holds the job.
func (a *Application) IsApproved() bool {
	return a.status == Approved
}

func (a *Application) approve() error {
	next, err := a.status.Approve()
	if err != nil {
		return err
	}
	a.status = next
	return nil
}

func (a *Application) clone() *Application {
	c := *a
	return &c
}
