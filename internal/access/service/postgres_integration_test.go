//go:build integration
// +build integration

package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	accessModel "github.com/staffhub/staffhub/internal/access/model"
	auditModel "github.com/staffhub/staffhub/internal/audit/model"
	"github.com/staffhub/staffhub/internal/database/database"
	"github.com/staffhub/staffhub/internal/database/dbtest"
	"github.com/staffhub/staffhub/internal/database/migrate"
	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
)

// PostgresSuite runs the approval workflow against a real Postgres.
type PostgresSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("staffhub"),
		postgres.WithUsername("staffhub"),
		postgres.WithPassword("staffhub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	db, err := gorm.Open(postgresDriver.Open(connStr), database.GormConfig())
	require.NoError(s.T(), err)
	s.db = db

	require.NoError(s.T(), os.Setenv("MIGRATIONS_PATH", "../../../migrations"))
	require.NoError(s.T(), migrate.Migrate(db, zap.NewNop().Sugar()))
}

func (s *PostgresSuite) TearDownSuite() {
	_ = os.Unsetenv("MIGRATIONS_PATH")
	if s.db != nil {
		_ = database.Close(s.db)
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.db.Exec(
		"TRUNCATE audit_events, team_access_requests, team_memberships, team_settings, teams CASCADE",
	).Error)
}

func (s *PostgresSuite) TestConcurrentApprovalsCreateOneMembership() {
	team := dbtest.SeedTeam(s.T(), s.db, "core", "alice", true)
	dbtest.SeedMember(s.T(), s.db, "carol", team.ID, membershipModel.RoleAdmin)
	req := dbtest.SeedRequest(s.T(), s.db, "bob", team.ID, accessModel.StatusPending)
	svc := newService(s.db)

	const workers = 16
	errs := make([]error, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			admin := "alice"
			if i%2 == 1 {
				admin = "carol"
			}
			<-start
			_, errs[i] = svc.ApproveAccess(s.ctx, admin, team.ID, req.ID)
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, accessModel.ErrInvalidRequest)
	}
	s.Equal(1, succeeded)

	var members int64
	s.Require().NoError(s.db.Model(&membershipModel.Membership{}).
		Where("user_id = ? AND team_id = ?", "bob", team.ID).Count(&members).Error)
	s.Equal(int64(1), members)

	var approvals int64
	s.Require().NoError(s.db.Model(&auditModel.Event{}).
		Where("action = ?", string(auditModel.ActionAccessApproved)).Count(&approvals).Error)
	s.Equal(int64(1), approvals)
}

func (s *PostgresSuite) TestPendingIndexRejectsDuplicate() {
	team := dbtest.SeedTeam(s.T(), s.db, "core", "alice", true)
	svc := newService(s.db)

	_, err := svc.RequestAccess(s.ctx, "bob", team.ID, "")
	s.Require().NoError(err)

	_, err = svc.RequestAccess(s.ctx, "bob", team.ID, "")
	s.ErrorIs(err, accessModel.ErrRequestPending)
}

func (s *PostgresSuite) TestApproveRollsBackOnExistingMembership() {
	team := dbtest.SeedTeam(s.T(), s.db, "core", "alice", true)
	dbtest.SeedMember(s.T(), s.db, "bob", team.ID, membershipModel.RoleUser)
	req := dbtest.SeedRequest(s.T(), s.db, "bob", team.ID, accessModel.StatusPending)
	svc := newService(s.db)

	_, err := svc.ApproveAccess(s.ctx, "alice", team.ID, req.ID)

	s.ErrorIs(err, membershipModel.ErrAlreadyMember)
	var stored accessModel.AccessRequest
	s.Require().NoError(s.db.First(&stored, "id = ?", req.ID).Error)
	s.Equal(accessModel.StatusPending, stored.Status)
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container tests in short mode")
	}
	suite.Run(t, new(PostgresSuite))
}
