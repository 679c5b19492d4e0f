package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	"github.com/staffhub/staffhub/internal/membership/repository"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
	teamRepository "github.com/staffhub/staffhub/internal/team/repository"
)

const teamID = "5b0f3c8e-1d2a-4c55-9a57-0c1e2d3f4a5b"

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(
	ctx context.Context,
	userID, teamID string,
	role membershipModel.Role,
) (*membershipModel.Membership, error) {
	args := m.Called(ctx, userID, teamID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membershipModel.Membership), args.Error(1)
}

func (m *mockRepository) Get(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error) {
	args := m.Called(ctx, userID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membershipModel.Membership), args.Error(1)
}

func (m *mockRepository) Exists(ctx context.Context, userID, teamID string) (bool, error) {
	args := m.Called(ctx, userID, teamID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) ListByTeam(ctx context.Context, teamID string) ([]membershipModel.Membership, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membershipModel.Membership), args.Error(1)
}

func (m *mockRepository) CountByRole(ctx context.Context, teamID string) (map[membershipModel.Role]int64, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[membershipModel.Role]int64), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

type mockTeamRepository struct {
	teamRepository.Repository
	mock.Mock
}

func (m *mockTeamRepository) Exists(ctx context.Context, teamID string) (bool, error) {
	args := m.Called(ctx, teamID)
	return args.Bool(0), args.Error(1)
}

func newService(repo *mockRepository, teams *mockTeamRepository) Service {
	return New(repo, teams, zap.NewNop().Sugar())
}

func TestService_EnsureMember(t *testing.T) {
	ctx := context.Background()

	t.Run("member", func(t *testing.T) {
		repo := new(mockRepository)
		teams := new(mockTeamRepository)
		expected := &membershipModel.Membership{UserID: "bob", TeamID: teamID, Role: membershipModel.RoleUser}
		repo.On("Get", ctx, "bob", teamID).Return(expected, nil)

		m, err := newService(repo, teams).EnsureMember(ctx, "bob", teamID)

		require.NoError(t, err)
		assert.Equal(t, expected, m)
		teams.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
	})

	t.Run("not a member", func(t *testing.T) {
		repo := new(mockRepository)
		teams := new(mockTeamRepository)
		repo.On("Get", ctx, "eve", teamID).Return(nil, membershipModel.ErrMembershipNotFound)
		teams.On("Exists", ctx, teamID).Return(true, nil)

		m, err := newService(repo, teams).EnsureMember(ctx, "eve", teamID)

		assert.Nil(t, m)
		assert.ErrorIs(t, err, membershipModel.ErrForbidden)
	})

	t.Run("team missing", func(t *testing.T) {
		repo := new(mockRepository)
		teams := new(mockTeamRepository)
		repo.On("Get", ctx, "eve", teamID).Return(nil, membershipModel.ErrMembershipNotFound)
		teams.On("Exists", ctx, teamID).Return(false, nil)

		_, err := newService(repo, teams).EnsureMember(ctx, "eve", teamID)

		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})

	t.Run("invalid team id", func(t *testing.T) {
		repo := new(mockRepository)
		teams := new(mockTeamRepository)

		_, err := newService(repo, teams).EnsureMember(ctx, "eve", "not-a-uuid")

		assert.ErrorIs(t, err, teamModel.ErrInvalidTeamID)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mockRepository)
		teams := new(mockTeamRepository)
		dbErr := errors.New("connection reset")
		repo.On("Get", ctx, "bob", teamID).Return(nil, dbErr)

		_, err := newService(repo, teams).EnsureMember(ctx, "bob", teamID)

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("admin", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Get", ctx, "alice", teamID).
			Return(&membershipModel.Membership{UserID: "alice", TeamID: teamID, Role: membershipModel.RoleAdmin}, nil)

		m, err := newService(repo, new(mockTeamRepository)).EnsureAdmin(ctx, "alice", teamID)

		require.NoError(t, err)
		assert.Equal(t, membershipModel.RoleAdmin, m.Role)
	})

	t.Run("plain user", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Get", ctx, "bob", teamID).
			Return(&membershipModel.Membership{UserID: "bob", TeamID: teamID, Role: membershipModel.RoleUser}, nil)

		m, err := newService(repo, new(mockTeamRepository)).EnsureAdmin(ctx, "bob", teamID)

		assert.Nil(t, m)
		assert.ErrorIs(t, err, membershipModel.ErrForbidden)
	})
}

func TestService_ListMembers(t *testing.T) {
	ctx := context.Background()
	joined := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	members := []membershipModel.Membership{
		{UserID: "alice", TeamID: teamID, Role: membershipModel.RoleAdmin, CreatedAt: joined},
		{UserID: "bob", TeamID: teamID, Role: membershipModel.RoleUser, CreatedAt: joined},
	}

	t.Run("all roles", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Get", ctx, "bob", teamID).Return(&members[1], nil)
		repo.On("ListByTeam", ctx, teamID).Return(members, nil)

		resp, err := newService(repo, new(mockTeamRepository)).ListMembers(ctx, "bob", teamID, "")

		require.NoError(t, err)
		assert.Equal(t, teamID, resp.TeamID)
		require.Len(t, resp.Members, 2)
		assert.Equal(t, "2025-03-01T12:00:00Z", resp.Members[0].JoinedAt)
	})

	t.Run("admins only", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("Get", ctx, "bob", teamID).Return(&members[1], nil)
		repo.On("ListByTeam", ctx, teamID).Return(members, nil)

		resp, err := newService(repo, new(mockTeamRepository)).
			ListMembers(ctx, "bob", teamID, membershipModel.RoleAdmin)

		require.NoError(t, err)
		require.Len(t, resp.Members, 1)
		assert.Equal(t, "alice", resp.Members[0].UserID)
	})

	t.Run("invalid role", func(t *testing.T) {
		repo := new(mockRepository)

		_, err := newService(repo, new(mockTeamRepository)).ListMembers(ctx, "bob", teamID, "owner")

		assert.ErrorIs(t, err, membershipModel.ErrInvalidRole)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("caller not a member", func(t *testing.T) {
		repo := new(mockRepository)
		teams := new(mockTeamRepository)
		repo.On("Get", ctx, "eve", teamID).Return(nil, membershipModel.ErrMembershipNotFound)
		teams.On("Exists", ctx, teamID).Return(true, nil)

		resp, err := newService(repo, teams).ListMembers(ctx, "eve", teamID, "")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, membershipModel.ErrForbidden)
		repo.AssertNotCalled(t, "ListByTeam", mock.Anything, mock.Anything)
	})
}
