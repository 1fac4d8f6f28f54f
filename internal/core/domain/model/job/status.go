package job

import (
	"fmt"
	"strings"

	"jobboard/internal/pkg/errs"
)

// ApplicationStatus is the lifecycle state of an application.
//
//	Pending ──> Approved
//
// There is no rejected state; an application that lost the job stays Pending.
type ApplicationStatus int

const (
	// Unknown catches uninitialised values.
	Unknown ApplicationStatus = iota
	// Pending is the state of every new application.
	Pending
	// Approved marks the one worker who got the job. It is final.
	Approved
)

func getStatusStrings() map[ApplicationStatus]string {
	return map[ApplicationStatus]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Approved: "approved",
	}
}

// ParseApplicationStatus is the inverse of String for valid statuses.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(str, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"application status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s ApplicationStatus) Validate() error {
	if s != Pending && s != Approved {
		return errs.NewValueIsInvalidErrorWithCause(
			"application status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s ApplicationStatus) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Approve transitions Pending to Approved.
func (s ApplicationStatus) Approve() (ApplicationStatus, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"application status",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}
	return Approved, nil
}
