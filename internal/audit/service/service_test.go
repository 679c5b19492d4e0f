package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	auditModel "github.com/staffhub/staffhub/internal/audit/model"
	"github.com/staffhub/staffhub/internal/audit/repository"
	"github.com/staffhub/staffhub/internal/database/dbtest"
	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	membershipRepository "github.com/staffhub/staffhub/internal/membership/repository"
	membershipService "github.com/staffhub/staffhub/internal/membership/service"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
	teamRepository "github.com/staffhub/staffhub/internal/team/repository"
)

func newService(db *gorm.DB) Service {
	logger := zap.NewNop().Sugar()
	members := membershipService.New(membershipRepository.New(db), teamRepository.New(db), logger)
	return New(repository.New(db), members, logger)
}

func recordEvents(t *testing.T, db *gorm.DB, teamID string, n int) {
	t.Helper()
	repo := repository.New(db)
	for i := 0; i < n; i++ {
		_, err := repo.Record(context.Background(), teamID, "alice", auditModel.ActionAccessRequested, fmt.Sprintf("req-%03d", i))
		require.NoError(t, err)
	}
}

func TestService_ListTeamActivity(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	team := dbtest.SeedTeam(t, db, "core", "alice", true)
	dbtest.SeedMember(t, db, "bob", team.ID, membershipModel.RoleUser)
	recordEvents(t, db, team.ID, auditModel.MaxLimit+5)
	svc := newService(db)

	t.Run("default limit newest first", func(t *testing.T) {
		resp, err := svc.ListTeamActivity(ctx, "bob", team.ID, 0)

		require.NoError(t, err)
		assert.Equal(t, team.ID, resp.TeamID)
		require.Len(t, resp.Events, auditModel.DefaultLimit)
		assert.Equal(t, "req-104", resp.Events[0].TargetID)
		assert.Greater(t, resp.Events[0].ID, resp.Events[1].ID)
	})

	t.Run("explicit limit", func(t *testing.T) {
		resp, err := svc.ListTeamActivity(ctx, "alice", team.ID, 5)

		require.NoError(t, err)
		assert.Len(t, resp.Events, 5)
	})

	t.Run("limit capped", func(t *testing.T) {
		resp, err := svc.ListTeamActivity(ctx, "alice", team.ID, 1000)

		require.NoError(t, err)
		assert.Len(t, resp.Events, auditModel.MaxLimit)
	})

	t.Run("outsider", func(t *testing.T) {
		resp, err := svc.ListTeamActivity(ctx, "zed", team.ID, 0)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, membershipModel.ErrForbidden)
	})

	t.Run("team not found", func(t *testing.T) {
		_, err := svc.ListTeamActivity(ctx, "alice", "0e9ad1f4-3f0b-4a8e-9c1e-2b7d4f6a8c90", 0)

		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})

	t.Run("empty feed", func(t *testing.T) {
		quiet := dbtest.SeedTeam(t, db, "quiet", "carol", false)

		resp, err := svc.ListTeamActivity(ctx, "carol", quiet.ID, 0)

		require.NoError(t, err)
		assert.NotNil(t, resp.Events)
		assert.Empty(t, resp.Events)
	})
}
