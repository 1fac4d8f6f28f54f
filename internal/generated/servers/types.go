// Package servers holds the HTTP contract of the job board: the OpenAPI
// document, the request and response types it describes, and the echo
// bindings that decode path, query and header parameters before calling a
// ServerInterface.
package servers

// Defines values for ApplicationStatus.
const (
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusPending  ApplicationStatus = "pending"
)

// Defines values for Role.
const (
	RolePoster Role = "poster"
	RoleWorker Role = "worker"
)

// Defines values for Order.
const (
	OrderNewest Order = "newest"
	OrderOldest Order = "oldest"
)

// ApplicationStatus is the stored state of an application.
type ApplicationStatus string

// Role of an account.
type Role string

// Order of job listings by occurrence.
type Order string

// Application defines model for Application.
type Application struct {
	Status   ApplicationStatus `json:"status"`
	WorkerId string            `json:"workerId"`
}

// Availability defines model for Availability.
type Availability struct {
	Availability []AvailabilityBlock `json:"availability"`
}

// AvailabilityBlock defines model for AvailabilityBlock.
type AvailabilityBlock struct {
	// DayOfWeek 0 is Sunday
	DayOfWeek int    `json:"dayOfWeek"`
	EndTime   string `json:"endTime"`
	StartTime string `json:"startTime"`
}

// AuthResponse defines model for AuthResponse.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Job defines model for Job.
type Job struct {
	Applications []Application `json:"applications"`
	Date         string        `json:"date"`
	Description  string        `json:"description"`
	EndTime      string        `json:"endTime"`
	Expired      bool          `json:"expired"`
	Filled       bool          `json:"filled"`
	Id           string        `json:"id"`
	Location     string        `json:"location"`

	// Matches Only in worker listings.
	Matches *bool `json:"matches,omitempty"`

	// MyApplicationStatus Only in worker listings where the worker applied.
	MyApplicationStatus *ApplicationStatus `json:"myApplicationStatus,omitempty"`
	Pay                 string             `json:"pay"`
	PostedBy            string             `json:"postedBy"`
	StartTime           string             `json:"startTime"`
	Title               string             `json:"title"`
}

// LogInRequest defines model for LogInRequest.
type LogInRequest struct {
	Password string `json:"password"`
	Username string `json:"username"`
}

// NewJob defines model for NewJob.
type NewJob struct {
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
	EndTime     string  `json:"endTime"`
	Location    string  `json:"location"`
	Pay         string  `json:"pay"`
	PostedBy    string  `json:"postedBy"`
	StartTime   string  `json:"startTime"`
	Title       string  `json:"title"`
}

// SignUpRequest defines model for SignUpRequest.
type SignUpRequest struct {
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

// User defines model for User.
type User struct {
	Id       string `json:"id"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

// WorkerRequest defines model for WorkerRequest.
type WorkerRequest struct {
	WorkerId *string `json:"workerId,omitempty"`
}

// GetJobsParams defines parameters for GetJobs.
type GetJobsParams struct {
	WorkerId     *string `form:"workerId,omitempty" json:"workerId,omitempty"`
	OnlyMatching *bool   `form:"onlyMatching,omitempty" json:"onlyMatching,omitempty"`
	HideExpired  *bool   `form:"hideExpired,omitempty" json:"hideExpired,omitempty"`
	Order        *Order  `form:"order,omitempty" json:"order,omitempty"`
}

// GetPosterJobsParams defines parameters for GetPosterJobs.
type GetPosterJobsParams struct {
	Order *Order `form:"order,omitempty" json:"order,omitempty"`
}

// GetCurrentUserParams defines parameters for GetCurrentUser.
type GetCurrentUserParams struct {
	Authorization *string `json:"Authorization,omitempty"`
}

// CreateJobJSONRequestBody defines body for CreateJob for application/json ContentType.
type CreateJobJSONRequestBody = NewJob

// ApplyToJobJSONRequestBody defines body for ApplyToJob for application/json ContentType.
type ApplyToJobJSONRequestBody = WorkerRequest

// ApproveApplicationJSONRequestBody defines body for ApproveApplication for application/json ContentType.
type ApproveApplicationJSONRequestBody = WorkerRequest

// SetAvailabilityJSONRequestBody defines body for SetAvailability for application/json ContentType.
type SetAvailabilityJSONRequestBody = Availability

// SignUpJSONRequestBody defines body for SignUp for application/json ContentType.
type SignUpJSONRequestBody = SignUpRequest

// LogInJSONRequestBody defines body for LogIn for application/json ContentType.
type LogInJSONRequestBody = LogInRequest
