package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	"github.com/staffhub/staffhub/internal/statistics/model"
)

const teamID = "5b0f3c8e-1d2a-4c55-9a57-0c1e2d3f4a5b"

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetMemberStatistics(ctx context.Context, teamID string) (*model.MemberStatistics, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemberStatistics), args.Error(1)
}

func (m *mockRepository) GetRequestStatistics(ctx context.Context, teamID string) (*model.RequestStatistics, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RequestStatistics), args.Error(1)
}

type mockMembers struct {
	mock.Mock
}

func (m *mockMembers) EnsureMember(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error) {
	args := m.Called(ctx, userID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membershipModel.Membership), args.Error(1)
}

func (m *mockMembers) EnsureAdmin(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error) {
	args := m.Called(ctx, userID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membershipModel.Membership), args.Error(1)
}

func (m *mockMembers) ListMembers(
	ctx context.Context,
	callerID, teamID string,
	role membershipModel.Role,
) (*membershipModel.ListMembersResponse, error) {
	args := m.Called(ctx, callerID, teamID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membershipModel.ListMembersResponse), args.Error(1)
}

func TestService_GetTeamStatistics(t *testing.T) {
	ctx := context.Background()
	member := &membershipModel.Membership{UserID: "bob", TeamID: teamID, Role: membershipModel.RoleUser}

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepository)
		members := new(mockMembers)
		members.On("EnsureMember", ctx, "bob", teamID).Return(member, nil)
		repo.On("GetMemberStatistics", ctx, teamID).
			Return(&model.MemberStatistics{Total: 5, Admins: 1, Users: 4}, nil)
		repo.On("GetRequestStatistics", ctx, teamID).
			Return(&model.RequestStatistics{Pending: 2, Approved: 4, Rejected: 1}, nil)
		svc := New(repo, members, zap.NewNop().Sugar())

		resp, err := svc.GetTeamStatistics(ctx, "bob", teamID)

		require.NoError(t, err)
		assert.Equal(t, teamID, resp.TeamID)
		assert.Equal(t, model.TeamStatistics{
			MembersTotal:     5,
			Admins:           1,
			Users:            4,
			RequestsPending:  2,
			RequestsApproved: 4,
			RequestsRejected: 1,
		}, resp.Statistics)
		repo.AssertExpectations(t)
		members.AssertExpectations(t)
	})

	t.Run("not a member", func(t *testing.T) {
		repo := new(mockRepository)
		members := new(mockMembers)
		members.On("EnsureMember", ctx, "zed", teamID).Return(nil, membershipModel.ErrForbidden)
		svc := New(repo, members, zap.NewNop().Sugar())

		resp, err := svc.GetTeamStatistics(ctx, "zed", teamID)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, membershipModel.ErrForbidden)
		repo.AssertNotCalled(t, "GetMemberStatistics", mock.Anything, mock.Anything)
	})

	t.Run("member statistics error", func(t *testing.T) {
		repo := new(mockRepository)
		members := new(mockMembers)
		members.On("EnsureMember", ctx, "bob", teamID).Return(member, nil)
		repo.On("GetMemberStatistics", ctx, teamID).Return(nil, errors.New("db error"))
		svc := New(repo, members, zap.NewNop().Sugar())

		_, err := svc.GetTeamStatistics(ctx, "bob", teamID)

		assert.EqualError(t, err, "db error")
		repo.AssertNotCalled(t, "GetRequestStatistics", mock.Anything, mock.Anything)
	})

	t.Run("request statistics error", func(t *testing.T) {
		repo := new(mockRepository)
		members := new(mockMembers)
		members.On("EnsureMember", ctx, "bob", teamID).Return(member, nil)
		repo.On("GetMemberStatistics", ctx, teamID).Return(&model.MemberStatistics{}, nil)
		repo.On("GetRequestStatistics", ctx, teamID).Return(nil, errors.New("db error"))
		svc := New(repo, members, zap.NewNop().Sugar())

		resp, err := svc.GetTeamStatistics(ctx, "bob", teamID)

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}
