package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditModel "github.com/staffhub/staffhub/internal/audit/model"
	"github.com/staffhub/staffhub/internal/database/dbtest"
)

const teamID = "5b0f3c8e-1d2a-4c55-9a57-0c1e2d3f4a5b"

func TestRepository_Record(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	repo := New(db)

	event, err := repo.Record(ctx, teamID, "alice", auditModel.ActionTeamCreated, teamID)

	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())

	var count int64
	require.NoError(t, db.Model(&auditModel.Event{}).Where("team_id = ?", teamID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_ListByTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first with limit", func(t *testing.T) {
		db := dbtest.New(t)
		repo := New(db)

		_, err := repo.Record(ctx, teamID, "alice", auditModel.ActionTeamCreated, teamID)
		require.NoError(t, err)
		_, err = repo.Record(ctx, teamID, "bob", auditModel.ActionAccessRequested, "r1")
		require.NoError(t, err)
		_, err = repo.Record(ctx, teamID, "alice", auditModel.ActionAccessApproved, "r1")
		require.NoError(t, err)

		events, err := repo.ListByTeam(ctx, teamID, 2)

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, auditModel.ActionAccessApproved, events[0].Action)
		assert.Equal(t, auditModel.ActionAccessRequested, events[1].Action)
	})

	t.Run("other teams excluded", func(t *testing.T) {
		db := dbtest.New(t)
		repo := New(db)

		_, err := repo.Record(ctx, "6c1f3c8e-1d2a-4c55-9a57-0c1e2d3f4a5b", "alice", auditModel.ActionTeamCreated, "x")
		require.NoError(t, err)

		events, err := repo.ListByTeam(ctx, teamID, 10)

		require.NoError(t, err)
		assert.Empty(t, events)
	})
}
