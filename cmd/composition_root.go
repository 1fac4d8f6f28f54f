package cmd

import (
	"context"
	"errors"
	"log/slog"
	"time"

	httpadapter "jobboard/internal/adapters/in/http"
	"jobboard/internal/adapters/out/auth"
	"jobboard/internal/adapters/out/eventlog"
	"jobboard/internal/adapters/out/memory"
	"jobboard/internal/adapters/out/postgres"
	"jobboard/internal/adapters/out/postgres/jobrepo"
	"jobboard/internal/adapters/out/postgres/userrepo"
	"jobboard/internal/adapters/out/rabbitmq"
	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/application/usecases/queries"
	"jobboard/internal/core/domain/services"
	"jobboard/internal/core/ports"
	"jobboard/internal/jobs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// CompositionRoot owns the adapters chosen by Config and builds every use
// case handler from them.
type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	uowFactory ports.UnitOfWorkFactory
	jobs       queries.JobReader
	users      queries.UserReader

	publisher ports.EventPublisher
	hasher    ports.PasswordHasher
	tokens    ports.TokenIssuer
	catalog   services.JobCatalog
	now       queries.Clock

	closers []func() error
}

// NewCompositionRoot connects the configured storage and event publisher.
// Close releases them.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		cfg:     cfg,
		logger:  logger,
		hasher:  auth.NewBcryptHasher(bcrypt.DefaultCost),
		tokens:  auth.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL),
		catalog: services.NewJobCatalog(loc),
		now:     time.Now,
	}

	if err = c.openStorage(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}
	if err = c.openPublisher(); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	return c, nil
}

func (c *CompositionRoot) openStorage(ctx context.Context) error {
	if c.cfg.Storage != StoragePostgres {
		store := memory.NewStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		c.jobs = store.Jobs()
		c.users = store.Users()
		c.logger.Info("Using in-memory storage; data is lost on restart")
		return nil
	}

	db, err := postgres.Open(ctx, c.cfg.DSN(), c.logger)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	c.closers = append(c.closers, sqlDB.Close)

	if err = postgres.Migrate(ctx, db); err != nil {
		return err
	}

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	c.jobs = jobrepo.NewGormJobRepository(db, false)
	c.users = userrepo.NewGormUserRepository(db, false)
	c.logger.Info("Using postgres storage", "host", c.cfg.DBHost, "database", c.cfg.DBName)
	return nil
}

func (c *CompositionRoot) openPublisher() error {
	if c.cfg.RabbitMQURL == "" {
		c.publisher = eventlog.NewPublisher(c.logger)
		return nil
	}

	p, err := rabbitmq.Dial(rabbitmq.Config{
		URL:      c.cfg.RabbitMQURL,
		Exchange: c.cfg.RabbitMQExchange,
	}, c.logger)
	if err != nil {
		return err
	}
	c.publisher = p
	c.closers = append(c.closers, p.Close)
	return nil
}

// Close releases connections in reverse order of opening.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) jobUoWFactory() commands.JobUoWFactory {
	return commands.JobUoWFactoryFunc(func() commands.JobUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return commands.UserUoWFactoryFunc(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeleteJobCommandHandler() commands.DeleteJobCommandHandler {
	return commands.NewDeleteJobCommandHandler(c.jobUoWFactory())
}

func (c *CompositionRoot) CreateApplyToJobCommandHandler() commands.ApplyToJobCommandHandler {
	return commands.NewApplyToJobCommandHandler(c.jobUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateApproveApplicationCommandHandler() commands.ApproveApplicationCommandHandler {
	return commands.NewApproveApplicationCommandHandler(c.jobUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateSetAvailabilityCommandHandler() commands.SetAvailabilityCommandHandler {
	return commands.NewSetAvailabilityCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateSignUpCommandHandler() commands.SignUpCommandHandler {
	return commands.NewSignUpCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateGetAllJobsQueryHandler() queries.GetAllJobsQueryHandler {
	return queries.NewGetAllJobsQueryHandler(c.jobs, c.catalog, c.now)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.jobs, c.catalog, c.now)
}

func (c *CompositionRoot) CreateListJobsForWorkerQueryHandler() queries.ListJobsForWorkerQueryHandler {
	return queries.NewListJobsForWorkerQueryHandler(c.jobs, c.users, c.catalog, c.now)
}

func (c *CompositionRoot) CreateListJobsForPosterQueryHandler() queries.ListJobsForPosterQueryHandler {
	return queries.NewListJobsForPosterQueryHandler(c.jobs, c.catalog, c.now)
}

func (c *CompositionRoot) CreateGetApprovedJobsForWorkerQueryHandler() queries.GetApprovedJobsForWorkerQueryHandler {
	return queries.NewGetApprovedJobsForWorkerQueryHandler(c.jobs, c.catalog, c.now)
}

func (c *CompositionRoot) CreateGetAvailabilityQueryHandler() queries.GetAvailabilityQueryHandler {
	return queries.NewGetAvailabilityQueryHandler(c.users)
}

func (c *CompositionRoot) CreateLogInQueryHandler() queries.LogInQueryHandler {
	return queries.NewLogInQueryHandler(c.users, c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateGetCurrentUserQueryHandler() queries.GetCurrentUserQueryHandler {
	return queries.NewGetCurrentUserQueryHandler(c.users, c.tokens)
}

func (c *CompositionRoot) CreateGetJobBoardSummaryQueryHandler() queries.GetJobBoardSummaryQueryHandler {
	return queries.NewGetJobBoardSummaryQueryHandler(c.jobs, c.catalog, c.now)
}

// NewRouter builds the echo instance serving every use case.
func (c *CompositionRoot) NewRouter() (*echo.Echo, error) {
	server := httpadapter.NewServer(
		httpadapter.Commands{
			CreateJob:          c.CreateCreateJobCommandHandler(),
			DeleteJob:          c.CreateDeleteJobCommandHandler(),
			ApplyToJob:         c.CreateApplyToJobCommandHandler(),
			ApproveApplication: c.CreateApproveApplicationCommandHandler(),
			SetAvailability:    c.CreateSetAvailabilityCommandHandler(),
			SignUp:             c.CreateSignUpCommandHandler(),
		},
		httpadapter.Queries{
			GetAllJobs:               c.CreateGetAllJobsQueryHandler(),
			GetJob:                   c.CreateGetJobQueryHandler(),
			ListJobsForWorker:        c.CreateListJobsForWorkerQueryHandler(),
			ListJobsForPoster:        c.CreateListJobsForPosterQueryHandler(),
			GetApprovedJobsForWorker: c.CreateGetApprovedJobsForWorkerQueryHandler(),
			GetAvailability:          c.CreateGetAvailabilityQueryHandler(),
			LogIn:                    c.CreateLogInQueryHandler(),
			GetCurrentUser:           c.CreateGetCurrentUserQueryHandler(),
		},
		c.catalog,
		c.now,
	)
	return httpadapter.NewRouter(server, c.logger)
}

// NewJobManager builds the scheduled jobs.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetJobBoardSummaryQueryHandler(), c.cfg.ExpiryReportSchedule, c.logger)
}
