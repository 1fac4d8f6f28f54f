package http

import (
	"fmt"
	"net/http"
	"time"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/model/job"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/services"
	"jobboard/internal/core/ports"
	"jobboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Commands groups the write use cases served over HTTP.
type Commands struct {
	CreateJob          commands.CreateJobCommandHandler
	DeleteJob          commands.DeleteJobCommandHandler
	ApplyToJob         commands.ApplyToJobCommandHandler
	ApproveApplication commands.ApproveApplicationCommandHandler
	SetAvailability    commands.SetAvailabilityCommandHandler
	SignUp             commands.SignUpCommandHandler
}

// Queries groups the read use cases served over HTTP.
type Queries struct {
	GetAllJobs               queries.GetAllJobsQueryHandler
	GetJob                   queries.GetJobQueryHandler
	ListJobsForWorker        queries.ListJobsForWorkerQueryHandler
	ListJobsForPoster        queries.ListJobsForPosterQueryHandler
	GetApprovedJobsForWorker queries.GetApprovedJobsForWorkerQueryHandler
	GetAvailability          queries.GetAvailabilityQueryHandler
	LogIn                    queries.LogInQueryHandler
	GetCurrentUser           queries.GetCurrentUserQueryHandler
}

// Server implements servers.ServerInterface on top of the use cases.
// Failures are returned as errors and rendered by NewErrorHandler.
type Server struct {
	commands Commands
	queries  Queries
	catalog  services.JobCatalog
	now      queries.Clock
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates the HTTP server. catalog and now annotate the jobs that
// commands return, the same way the queries annotate theirs.
func NewServer(cmds Commands, qs Queries, catalog services.JobCatalog, now queries.Clock) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{
		commands: cmds,
		queries:  qs,
		catalog:  catalog,
		now:      now,
	}
}

// GetJobs handles GET /jobs. A workerId switches to the worker's view.
func (s *Server) GetJobs(ctx echo.Context, params servers.GetJobsParams) error {
	order := orderOf(params.Order)

	if params.WorkerId == nil {
		query, err := queries.NewGetAllJobsQuery(order)
		if err != nil {
			return err
		}
		views, err := s.queries.GetAllJobs.Handle(ctx.Request().Context(), query)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, toJobResponses(views))
	}

	query, err := queries.NewListJobsForWorkerQuery(
		*params.WorkerId,
		valueOf(params.OnlyMatching),
		order,
		valueOf(params.HideExpired),
	)
	if err != nil {
		return err
	}
	views, err := s.queries.ListJobsForWorker.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toWorkerJobResponses(views))
}

// CreateJob handles POST /jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	var body servers.CreateJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}

	cmd, err := commands.NewCreateJobCommand(
		kernel.NewUUID(),
		job.Posting{
			Title:       body.Title,
			Description: valueOf(body.Description),
			Location:    body.Location,
			Pay:         body.Pay,
		},
		body.PostedBy,
		body.Date, body.StartTime, body.EndTime,
	)
	if err != nil {
		return err
	}

	created, err := s.commands.CreateJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, s.jobResponse(created))
}

// DeleteJob handles DELETE /jobs/{jobId}.
func (s *Server) DeleteJob(ctx echo.Context, jobID string) error {
	id, err := parseJobID(jobID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteJobCommand(id)
	if err != nil {
		return err
	}
	if err = s.commands.DeleteJob.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetJob handles GET /jobs/{jobId}.
func (s *Server) GetJob(ctx echo.Context, jobID string) error {
	id, err := parseJobID(jobID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetJobQuery(id)
	if err != nil {
		return err
	}
	view, err := s.queries.GetJob.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toJobResponse(view))
}

// ApplyToJob handles POST /jobs/{jobId}/apply.
func (s *Server) ApplyToJob(ctx echo.Context, jobID string) error {
	var body servers.ApplyToJobJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}
	id, err := parseJobID(jobID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewApplyToJobCommand(id, valueOf(body.WorkerId))
	if err != nil {
		return err
	}

	applied, err := s.commands.ApplyToJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.jobResponse(applied))
}

// ApproveApplication handles POST /jobs/{jobId}/approve.
func (s *Server) ApproveApplication(ctx echo.Context, jobID string) error {
	var body servers.ApproveApplicationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}
	id, err := parseJobID(jobID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewApproveApplicationCommand(id, valueOf(body.WorkerId))
	if err != nil {
		return err
	}

	approved, err := s.commands.ApproveApplication.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.jobResponse(approved))
}

// GetPosterJobs handles GET /posters/{posterId}/jobs.
func (s *Server) GetPosterJobs(ctx echo.Context, posterID string, params servers.GetPosterJobsParams) error {
	query, err := queries.NewListJobsForPosterQuery(posterID, orderOf(params.Order))
	if err != nil {
		return err
	}
	views, err := s.queries.ListJobsForPoster.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toJobResponses(views))
}

// GetApprovedJobs handles GET /workers/{workerId}/approved-jobs.
func (s *Server) GetApprovedJobs(ctx echo.Context, workerID string) error {
	query, err := queries.NewGetApprovedJobsForWorkerQuery(workerID)
	if err != nil {
		return err
	}
	views, err := s.queries.GetApprovedJobsForWorker.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toJobResponses(views))
}

// GetAvailability handles GET /users/{userId}/availability.
func (s *Server) GetAvailability(ctx echo.Context, userID string) error {
	query, err := queries.NewGetAvailabilityQuery(userID)
	if err != nil {
		return err
	}
	blocks, err := s.queries.GetAvailability.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAvailabilityResponse(blocks))
}

// SetAvailability handles PUT /users/{userId}/availability.
func (s *Server) SetAvailability(ctx echo.Context, userID string) error {
	var body servers.SetAvailabilityJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}
	blocks, err := fromAvailabilityRequest(body)
	if err != nil {
		return err
	}
	cmd, err := commands.NewSetAvailabilityCommand(userID, blocks)
	if err != nil {
		return err
	}

	stored, err := s.commands.SetAvailability.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAvailabilityResponse(stored))
}

// SignUp handles POST /auth/signup.
func (s *Server) SignUp(ctx echo.Context) error {
	var body servers.SignUpJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}
	cmd, err := commands.NewSignUpCommand(body.Username, body.Password, string(body.Role))
	if err != nil {
		return err
	}

	result, err := s.commands.SignUp.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.AuthResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// LogIn handles POST /auth/login.
func (s *Server) LogIn(ctx echo.Context) error {
	var body servers.LogInJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return errInvalidBody
	}
	query, err := queries.NewLogInQuery(body.Username, body.Password)
	if err != nil {
		return err
	}

	result, err := s.queries.LogIn.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.AuthResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// GetCurrentUser handles GET /auth/me.
func (s *Server) GetCurrentUser(ctx echo.Context, params servers.GetCurrentUserParams) error {
	query, err := queries.NewGetCurrentUserQuery(valueOf(params.Authorization))
	if err != nil {
		return err
	}
	u, err := s.queries.GetCurrentUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toUserResponse(u))
}

func (s *Server) jobResponse(j *job.Job) servers.Job {
	return toJobResponse(queries.JobView{
		Job:     j,
		Filled:  j.IsFilled(),
		Expired: s.catalog.IsExpired(j, s.now()),
	})
}

// parseJobID reports a malformed id as an unknown job.
func parseJobID(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err == nil {
		err = id.Validate()
	}
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrJobNotFound, err)
	}
	return id, nil
}

func orderOf(o *servers.Order) string {
	if o == nil {
		return ""
	}
	return string(*o)
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
