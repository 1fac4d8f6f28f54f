package userrepo_test

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/adapters/out/postgres/userrepo"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UserRepositoryIntegrationTestSuite checks the user mapping against PostgreSQL.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
	suite.repository = userrepo.NewGormUserRepository(suite.db, false)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) TestAvailabilityRoundTrip() {
	ctx := suite.T().Context()
	u, err := user.NewUser("u-1", "dana", "$hash", user.Worker)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, u))

	tue, err := kernel.ParseTimeWindow("2 08:00-13:00")
	suite.Require().NoError(err)
	sat, err := kernel.ParseTimeWindow("6 10:00-10:00")
	suite.Require().NoError(err)
	suite.Require().NoError(u.ReplaceAvailability([]kernel.TimeWindow{tue, sat}))
	suite.Require().NoError(suite.repository.Update(ctx, u))

	loaded, err := suite.repository.Get(ctx, "u-1")
	suite.Require().NoError(err)
	suite.Equal(user.Worker, loaded.Role())
	blocks := loaded.Availability()
	suite.Require().Len(blocks, 2)
	suite.True(blocks[0].IsEqual(tue))
	suite.True(blocks[1].IsEqual(sat))

	suite.Require().NoError(u.ReplaceAvailability(nil))
	suite.Require().NoError(suite.repository.Update(ctx, u))
	loaded, err = suite.repository.GetByUsername(ctx, "dana")
	suite.Require().NoError(err)
	suite.Empty(loaded.Availability())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUsernameIsUnique() {
	ctx := suite.T().Context()
	first, err := user.NewUser("u-1", "dana", "$hash", user.Worker)
	suite.Require().NoError(err)
	second, err := user.NewUser("u-2", "dana", "$hash", user.Poster)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().ErrorIs(suite.repository.Add(ctx, second), errs.ErrConflict)
}

func (suite *UserRepositoryIntegrationTestSuite) TestNotFound() {
	ctx := suite.T().Context()

	_, err := suite.repository.Get(ctx, "nobody")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetByUsername(ctx, "nobody")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	u, err := user.NewUser("u-3", "eve", "$hash", user.Poster)
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.Update(ctx, u), errs.ErrObjectNotFound)
}
