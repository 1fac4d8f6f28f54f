package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "jobboard/internal/adapters/in/http"
	"jobboard/internal/adapters/out/auth"
	"jobboard/internal/adapters/out/memory"
	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/services"
	"jobboard/internal/core/ports"
	"jobboard/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, ports.Event) {}

type ServerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	store := memory.NewStore()
	uowFactory := memory.NewUnitOfWorkFactory(store)
	jobUoWs := commands.JobUoWFactoryFunc(func() commands.JobUoW { return uowFactory.Create() })
	userUoWs := commands.UserUoWFactoryFunc(func() commands.UserUoW { return uowFactory.Create() })

	catalog := services.NewJobCatalog(time.UTC)
	now := func() time.Time { return fixedNow }
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewJWTIssuer("test-secret", time.Hour)
	publisher := noopPublisher{}

	server := httpadapter.NewServer(
		httpadapter.Commands{
			CreateJob:          commands.NewCreateJobCommandHandler(jobUoWs, publisher),
			DeleteJob:          commands.NewDeleteJobCommandHandler(jobUoWs),
			ApplyToJob:         commands.NewApplyToJobCommandHandler(jobUoWs, publisher),
			ApproveApplication: commands.NewApproveApplicationCommandHandler(jobUoWs, publisher),
			SetAvailability:    commands.NewSetAvailabilityCommandHandler(userUoWs),
			SignUp:             commands.NewSignUpCommandHandler(userUoWs, hasher, tokens),
		},
		httpadapter.Queries{
			GetAllJobs:               queries.NewGetAllJobsQueryHandler(store.Jobs(), catalog, now),
			GetJob:                   queries.NewGetJobQueryHandler(store.Jobs(), catalog, now),
			ListJobsForWorker:        queries.NewListJobsForWorkerQueryHandler(store.Jobs(), store.Users(), catalog, now),
			ListJobsForPoster:        queries.NewListJobsForPosterQueryHandler(store.Jobs(), catalog, now),
			GetApprovedJobsForWorker: queries.NewGetApprovedJobsForWorkerQueryHandler(store.Jobs(), catalog, now),
			GetAvailability:          queries.NewGetAvailabilityQueryHandler(store.Users()),
			LogIn:                    queries.NewLogInQueryHandler(store.Users(), hasher, tokens),
			GetCurrentUser:           queries.NewGetCurrentUserQueryHandler(store.Users(), tokens),
		},
		catalog,
		now,
	)

	e, err := httpadapter.NewRouter(server, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.echo = e
}

func (s *ServerTestSuite) do(method, path string, body any, header ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, into any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), into), rec.Body.String())
}

func (s *ServerTestSuite) postJob(date, start, end string) servers.Job {
	rec := s.do(http.MethodPost, "/jobs", servers.NewJob{
		Title:     "Stock shelves",
		Location:  "Store 4",
		Pay:       "$19/hr",
		PostedBy:  "poster-1",
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var created servers.Job
	s.decode(rec, &created)
	return created
}

func (s *ServerTestSuite) signUp(username string, role servers.Role) servers.AuthResponse {
	rec := s.do(http.MethodPost, "/auth/signup", servers.SignUpRequest{
		Username: username,
		Password: "correct horse",
		Role:     role,
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp servers.AuthResponse
	s.decode(rec, &resp)
	return resp
}

func (s *ServerTestSuite) errorOf(rec *httptest.ResponseRecorder) servers.Error {
	var e servers.Error
	s.decode(rec, &e)
	return e
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestSwaggerDocument() {
	rec := s.do(http.MethodGet, "/swagger/doc.json", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Job Board API")
}

func (s *ServerTestSuite) TestCreateAndGetJob() {
	created := s.postJob("2024-06-08", "09:00", "17:00")

	s.NotEmpty(created.Id)
	s.Equal("Stock shelves", created.Title)
	s.Equal("2024-06-08", created.Date)
	s.Equal("09:00", created.StartTime)
	s.Empty(created.Applications)
	s.False(created.Filled)
	s.False(created.Expired)

	rec := s.do(http.MethodGet, "/jobs/"+created.Id, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var got servers.Job
	s.decode(rec, &got)
	s.Equal(created, got)

	rec = s.do(http.MethodGet, "/jobs", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var all []servers.Job
	s.decode(rec, &all)
	s.Len(all, 1)
}

func (s *ServerTestSuite) TestCreateJobRejectsInvalidInput() {
	rec := s.do(http.MethodPost, "/jobs", servers.NewJob{
		Title:     "Night shift",
		Location:  "Dock",
		Pay:       "$25/hr",
		PostedBy:  "poster-1",
		Date:      "2024-06-08",
		StartTime: "17:00",
		EndTime:   "09:00",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(http.StatusBadRequest, s.errorOf(rec).Code)

	rec = s.do(http.MethodPost, "/jobs", map[string]string{"title": "No schedule"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestUnknownOrMalformedJobIDIsNotFound() {
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/jobs/not-a-uuid", nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/jobs/8d6f8a39-6f3e-4b52-a2f7-2ad8b6a7f0c1", nil).Code)
}

func (s *ServerTestSuite) TestApproveFillsJobOnce() {
	created := s.postJob("2024-06-08", "09:00", "17:00")
	apply := "/jobs/" + created.Id + "/apply"
	approve := "/jobs/" + created.Id + "/approve"

	w1, w2 := "worker-1", "worker-2"
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, apply, servers.WorkerRequest{WorkerId: &w1}).Code)
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, apply, servers.WorkerRequest{WorkerId: &w2}).Code)

	rec := s.do(http.MethodPost, approve, servers.WorkerRequest{WorkerId: &w1})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var approved servers.Job
	s.decode(rec, &approved)
	s.True(approved.Filled)
	s.Equal([]servers.Application{
		{WorkerId: w1, Status: servers.ApplicationStatusApproved},
		{WorkerId: w2, Status: servers.ApplicationStatusPending},
	}, approved.Applications)

	rec = s.do(http.MethodPost, approve, servers.WorkerRequest{WorkerId: &w2})
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodGet, "/workers/"+w1+"/approved-jobs", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var mine []servers.Job
	s.decode(rec, &mine)
	s.Require().Len(mine, 1)
	s.Equal(created.Id, mine[0].Id)

	rec = s.do(http.MethodGet, "/jobs?workerId="+w2, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var browse []servers.Job
	s.decode(rec, &browse)
	s.Empty(browse)
}

func (s *ServerTestSuite) TestApplyIsIdempotent() {
	created := s.postJob("2024-06-08", "09:00", "17:00")
	w := "worker-1"

	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/jobs/"+created.Id+"/apply", servers.WorkerRequest{WorkerId: &w}).Code)
	rec := s.do(http.MethodPost, "/jobs/"+created.Id+"/apply", servers.WorkerRequest{WorkerId: &w})

	s.Require().Equal(http.StatusOK, rec.Code)
	var j servers.Job
	s.decode(rec, &j)
	s.Len(j.Applications, 1)
}

func (s *ServerTestSuite) TestApplyWithoutWorkerIsBadRequest() {
	created := s.postJob("2024-06-08", "09:00", "17:00")

	rec := s.do(http.MethodPost, "/jobs/"+created.Id+"/apply", servers.WorkerRequest{})

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestApproveWithoutApplicationIsNotFound() {
	created := s.postJob("2024-06-08", "09:00", "17:00")
	w := "worker-1"

	rec := s.do(http.MethodPost, "/jobs/"+created.Id+"/approve", servers.WorkerRequest{WorkerId: &w})

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestDeleteJob() {
	created := s.postJob("2024-06-08", "09:00", "17:00")

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/jobs/"+created.Id, nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, "/jobs/"+created.Id, nil).Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, "/jobs/"+created.Id, nil).Code)
}

func (s *ServerTestSuite) TestWorkerListingMatchesAvailability() {
	worker := s.signUp("wendy", servers.RoleWorker)
	saturday := s.postJob("2024-06-08", "09:00", "17:00")
	s.postJob("2024-06-10", "09:00", "17:00")

	rec := s.do(http.MethodPut, "/users/"+worker.User.Id+"/availability", servers.Availability{
		Availability: []servers.AvailabilityBlock{{DayOfWeek: 6, StartTime: "08:00", EndTime: "18:00"}},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	w := worker.User.Id
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/jobs/"+saturday.Id+"/apply", servers.WorkerRequest{WorkerId: &w}).Code)

	rec = s.do(http.MethodGet, "/jobs?workerId="+w+"&onlyMatching=true", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var matching []servers.Job
	s.decode(rec, &matching)
	s.Require().Len(matching, 1)
	s.Equal(saturday.Id, matching[0].Id)
	s.Require().NotNil(matching[0].Matches)
	s.True(*matching[0].Matches)
	s.Require().NotNil(matching[0].MyApplicationStatus)
	s.Equal(servers.ApplicationStatusPending, *matching[0].MyApplicationStatus)

	rec = s.do(http.MethodGet, "/jobs?workerId="+w+"&order=oldest", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var all []servers.Job
	s.decode(rec, &all)
	s.Require().Len(all, 2)
	s.Equal(saturday.Id, all[0].Id)
	s.Nil(all[1].MyApplicationStatus)
	s.False(*all[1].Matches)
}

func (s *ServerTestSuite) TestInvalidOrderIsBadRequest() {
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/jobs?order=sideways", nil).Code)
	s.Equal(http.StatusBadRequest, s.do(http.MethodGet, "/posters/poster-1/jobs?order=sideways", nil).Code)
}

func (s *ServerTestSuite) TestPosterJobs() {
	s.postJob("2024-06-08", "09:00", "17:00")

	rec := s.do(http.MethodGet, "/posters/poster-1/jobs", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var jobs []servers.Job
	s.decode(rec, &jobs)
	s.Len(jobs, 1)

	rec = s.do(http.MethodGet, "/posters/someone-else/jobs", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &jobs)
	s.Empty(jobs)
}

func (s *ServerTestSuite) TestAvailability() {
	worker := s.signUp("wendy", servers.RoleWorker)
	path := "/users/" + worker.User.Id + "/availability"

	rec := s.do(http.MethodGet, path, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"availability":[]}`, rec.Body.String())

	rec = s.do(http.MethodPut, path, servers.Availability{
		Availability: []servers.AvailabilityBlock{{DayOfWeek: 7, StartTime: "08:00", EndTime: "18:00"}},
	})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPut, path, servers.Availability{
		Availability: []servers.AvailabilityBlock{{DayOfWeek: 1, StartTime: "9:00", EndTime: "12:00"}},
	})
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"availability":[{"dayOfWeek":1,"startTime":"09:00","endTime":"12:00"}]}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/users/nobody/availability", nil)
	s.Equal(http.StatusNotFound, rec.Code)
	rec = s.do(http.MethodPut, "/users/nobody/availability", servers.Availability{
		Availability: []servers.AvailabilityBlock{},
	})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestAuthentication() {
	signedUp := s.signUp("pat", servers.RolePoster)
	s.NotEmpty(signedUp.Token)
	s.Equal("pat", signedUp.User.Username)
	s.Equal(servers.RolePoster, signedUp.User.Role)

	rec := s.do(http.MethodPost, "/auth/signup", servers.SignUpRequest{
		Username: "pat", Password: "another password", Role: servers.RoleWorker,
	})
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/auth/login", servers.LogInRequest{Username: "pat", Password: "correct horse"})
	s.Require().Equal(http.StatusOK, rec.Code)
	var loggedIn servers.AuthResponse
	s.decode(rec, &loggedIn)
	s.Equal(signedUp.User, loggedIn.User)

	wrongPassword := s.do(http.MethodPost, "/auth/login", servers.LogInRequest{Username: "pat", Password: "wrong password"})
	unknownUser := s.do(http.MethodPost, "/auth/login", servers.LogInRequest{Username: "nobody", Password: "correct horse"})
	s.Equal(http.StatusUnauthorized, wrongPassword.Code)
	s.Equal(http.StatusUnauthorized, unknownUser.Code)
	s.Equal(wrongPassword.Body.String(), unknownUser.Body.String())

	rec = s.do(http.MethodGet, "/auth/me", nil, echo.HeaderAuthorization, "Bearer "+loggedIn.Token)
	s.Require().Equal(http.StatusOK, rec.Code)
	var me servers.User
	s.decode(rec, &me)
	s.Equal(signedUp.User, me)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/auth/me", nil).Code)
	s.Equal(http.StatusUnauthorized,
		s.do(http.MethodGet, "/auth/me", nil, echo.HeaderAuthorization, "Bearer garbage").Code)
}

func (s *ServerTestSuite) TestSignUpRejectsShortPassword() {
	rec := s.do(http.MethodPost, "/auth/signup", servers.SignUpRequest{
		Username: "pat", Password: "short", Role: servers.RolePoster,
	})

	s.Equal(http.StatusBadRequest, rec.Code)
}
