package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	"github.com/staffhub/staffhub/internal/membership/service"
	"github.com/staffhub/staffhub/internal/middleware"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
	"github.com/staffhub/staffhub/internal/validation"
)

const teamID = "5b0f3c8e-1d2a-4c55-9a57-0c1e2d3f4a5b"

type mockService struct {
	mock.Mock
}

func (m *mockService) EnsureMember(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error) {
	args := m.Called(ctx, userID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membershipModel.Membership), args.Error(1)
}

func (m *mockService) EnsureAdmin(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error) {
	args := m.Called(ctx, userID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membershipModel.Membership), args.Error(1)
}

func (m *mockService) ListMembers(
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

var _ service.Service = (*mockService)(nil)

func setupRouter(t *testing.T, svc service.Service, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	r := gin.New()
	if userID != "" {
		r.Use(func(c *gin.Context) { middleware.SetUserID(c, userID) })
	}
	h := New(svc, zap.NewNop().Sugar())
	r.GET("/teams/:id/members", h.ListMembers)
	return r
}

func TestHandler_ListMembers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ListMembers", mock.Anything, "bob", teamID, membershipModel.Role("")).
			Return(&membershipModel.ListMembersResponse{
				TeamID: teamID,
				Members: []membershipModel.MemberResponse{
					{UserID: "alice", TeamID: teamID, Role: membershipModel.RoleAdmin},
				},
			}, nil)

		w := httptest.NewRecorder()
		setupRouter(t, svc, "bob").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/"+teamID+"/members", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp membershipModel.ListMembersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Members, 1)
		assert.Equal(t, "alice", resp.Members[0].UserID)
		svc.AssertExpectations(t)
	})

	t.Run("role filter", func(t *testing.T) {
		svc := new(mockService)
		svc.On("ListMembers", mock.Anything, "bob", teamID, membershipModel.RoleAdmin).
			Return(&membershipModel.ListMembersResponse{TeamID: teamID}, nil)

		w := httptest.NewRecorder()
		setupRouter(t, svc, "bob").
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/"+teamID+"/members?role=admin", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	tests := []struct {
		name         string
		query        string
		userID       string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{name: "unknown role", query: "?role=owner", userID: "bob", expectedCode: http.StatusBadRequest, expectedErr: "INVALID_REQUEST"},
		{name: "unauthenticated", expectedCode: http.StatusUnauthorized, expectedErr: "UNAUTHORIZED"},
		{name: "not a member", userID: "eve", err: membershipModel.ErrForbidden, expectedCode: http.StatusForbidden, expectedErr: "FORBIDDEN"},
		{name: "team missing", userID: "eve", err: teamModel.ErrTeamNotFound, expectedCode: http.StatusNotFound, expectedErr: "NOT_FOUND"},
		{name: "invalid team id", userID: "eve", err: teamModel.ErrInvalidTeamID, expectedCode: http.StatusBadRequest, expectedErr: "INVALID_REQUEST"},
		{name: "internal error", userID: "eve", err: errors.New("db down"), expectedCode: http.StatusInternalServerError, expectedErr: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("ListMembers", mock.Anything, tt.userID, teamID, mock.Anything).Return(nil, tt.err)
			}

			w := httptest.NewRecorder()
			setupRouter(t, svc, tt.userID).
				ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teams/"+teamID+"/members"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedErr, resp.Error.Code)
			svc.AssertExpectations(t)
		})
	}
}
