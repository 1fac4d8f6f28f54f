package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List jobs
	// (GET /jobs)
	GetJobs(ctx echo.Context, params GetJobsParams) error
	// Post a job
	// (POST /jobs)
	CreateJob(ctx echo.Context) error
	// Delete a job and its applications
	// (DELETE /jobs/{jobId})
	DeleteJob(ctx echo.Context, jobId string) error
	// Get one job
	// (GET /jobs/{jobId})
	GetJob(ctx echo.Context, jobId string) error
	// Apply to a job
	// (POST /jobs/{jobId}/apply)
	ApplyToJob(ctx echo.Context, jobId string) error
	// Approve one applicant
	// (POST /jobs/{jobId}/approve)
	ApproveApplication(ctx echo.Context, jobId string) error
	// Jobs posted by one user
	// (GET /posters/{posterId}/jobs)
	GetPosterJobs(ctx echo.Context, posterId string, params GetPosterJobsParams) error
	// Jobs a worker has been approved for, soonest first
	// (GET /workers/{workerId}/approved-jobs)
	GetApprovedJobs(ctx echo.Context, workerId string) error
	// Weekly availability of a user
	// (GET /users/{userId}/availability)
	GetAvailability(ctx echo.Context, userId string) error
	// Replace the weekly availability of a user
	// (PUT /users/{userId}/availability)
	SetAvailability(ctx echo.Context, userId string) error
	// Create an account
	// (POST /auth/signup)
	SignUp(ctx echo.Context) error
	// Exchange credentials for a token
	// (POST /auth/login)
	LogIn(ctx echo.Context) error
	// The account a bearer token belongs to
	// (GET /auth/me)
	GetCurrentUser(ctx echo.Context, params GetCurrentUserParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetJobs converts echo context to params.
func (w *ServerInterfaceWrapper) GetJobs(ctx echo.Context) error {
	var err error

	var params GetJobsParams

	err = runtime.BindQueryParameter("form", true, false, "workerId", ctx.QueryParams(), &params.WorkerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter workerId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "onlyMatching", ctx.QueryParams(), &params.OnlyMatching)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter onlyMatching: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "hideExpired", ctx.QueryParams(), &params.HideExpired)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter hideExpired: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "order", ctx.QueryParams(), &params.Order)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order: %s", err))
	}

	return w.Handler.GetJobs(ctx, params)
}

// CreateJob converts echo context to params.
func (w *ServerInterfaceWrapper) CreateJob(ctx echo.Context) error {
	return w.Handler.CreateJob(ctx)
}

// DeleteJob converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteJob(ctx echo.Context) error {
	jobId, err := bindPathParameter(ctx, "jobId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteJob(ctx, jobId)
}

// GetJob converts echo context to params.
func (w *ServerInterfaceWrapper) GetJob(ctx echo.Context) error {
	jobId, err := bindPathParameter(ctx, "jobId")
	if err != nil {
		return err
	}
	return w.Handler.GetJob(ctx, jobId)
}

// ApplyToJob converts echo context to params.
func (w *ServerInterfaceWrapper) ApplyToJob(ctx echo.Context) error {
	jobId, err := bindPathParameter(ctx, "jobId")
	if err != nil {
		return err
	}
	return w.Handler.ApplyToJob(ctx, jobId)
}

// ApproveApplication converts echo context to params.
func (w *ServerInterfaceWrapper) ApproveApplication(ctx echo.Context) error {
	jobId, err := bindPathParameter(ctx, "jobId")
	if err != nil {
		return err
	}
	return w.Handler.ApproveApplication(ctx, jobId)
}

// GetPosterJobs converts echo context to params.
func (w *ServerInterfaceWrapper) GetPosterJobs(ctx echo.Context) error {
	posterId, err := bindPathParameter(ctx, "posterId")
	if err != nil {
		return err
	}

	var params GetPosterJobsParams

	err = runtime.BindQueryParameter("form", true, false, "order", ctx.QueryParams(), &params.Order)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order: %s", err))
	}

	return w.Handler.GetPosterJobs(ctx, posterId, params)
}

// GetApprovedJobs converts echo context to params.
func (w *ServerInterfaceWrapper) GetApprovedJobs(ctx echo.Context) error {
	workerId, err := bindPathParameter(ctx, "workerId")
	if err != nil {
		return err
	}
	return w.Handler.GetApprovedJobs(ctx, workerId)
}

// GetAvailability converts echo context to params.
func (w *ServerInterfaceWrapper) GetAvailability(ctx echo.Context) error {
	userId, err := bindPathParameter(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.GetAvailability(ctx, userId)
}

// SetAvailability converts echo context to params.
func (w *ServerInterfaceWrapper) SetAvailability(ctx echo.Context) error {
	userId, err := bindPathParameter(ctx, "userId")
	if err != nil {
		return err
	}
	return w.Handler.SetAvailability(ctx, userId)
}

// SignUp converts echo context to params.
func (w *ServerInterfaceWrapper) SignUp(ctx echo.Context) error {
	return w.Handler.SignUp(ctx)
}

// LogIn converts echo context to params.
func (w *ServerInterfaceWrapper) LogIn(ctx echo.Context) error {
	return w.Handler.LogIn(ctx)
}

// GetCurrentUser converts echo context to params.
func (w *ServerInterfaceWrapper) GetCurrentUser(ctx echo.Context) error {
	var err error

	var params GetCurrentUserParams

	headers := ctx.Request().Header
	if valueList, found := headers[http.CanonicalHeaderKey("Authorization")]; found {
		var authorization string
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for Authorization, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "Authorization", valueList[0], &authorization,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter Authorization: %s", err))
		}

		params.Authorization = &authorization
	}

	return w.Handler.GetCurrentUser(ctx, params)
}

func bindPathParameter(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to
// the paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/auth/login", wrapper.LogIn)
	router.GET(baseURL+"/auth/me", wrapper.GetCurrentUser)
	router.POST(baseURL+"/auth/signup", wrapper.SignUp)
	router.GET(baseURL+"/jobs", wrapper.GetJobs)
	router.POST(baseURL+"/jobs", wrapper.CreateJob)
	router.DELETE(baseURL+"/jobs/:jobId", wrapper.DeleteJob)
	router.GET(baseURL+"/jobs/:jobId", wrapper.GetJob)
	router.POST(baseURL+"/jobs/:jobId/apply", wrapper.ApplyToJob)
	router.POST(baseURL+"/jobs/:jobId/approve", wrapper.ApproveApplication)
	router.GET(baseURL+"/posters/:posterId/jobs", wrapper.GetPosterJobs)
	router.GET(baseURL+"/users/:userId/availability", wrapper.GetAvailability)
	router.PUT(baseURL+"/users/:userId/availability", wrapper.SetAvailability)
	router.GET(baseURL+"/workers/:workerId/approved-jobs", wrapper.GetApprovedJobs)
}
