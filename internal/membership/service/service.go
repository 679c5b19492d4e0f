// Package service provides business logic layer for membership module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	"github.com/staffhub/staffhub/internal/membership/repository"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
	teamRepository "github.com/staffhub/staffhub/internal/team/repository"
)

// Service defines the interface for membership business logic operations.
type Service interface {
	// EnsureMember returns the caller's membership or ErrForbidden.
	// ErrTeamNotFound is returned when the team does not exist.
	EnsureMember(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error)

	// EnsureAdmin is EnsureMember restricted to the admin role.
	EnsureAdmin(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error)

	// ListMembers returns the members of a team the caller belongs to,
	// optionally restricted to one role.
	ListMembers(
		ctx context.Context,
		callerID, teamID string,
		role membershipModel.Role,
	) (*membershipModel.ListMembersResponse, error)
}

type service struct {
	repo   repository.Repository
	teams  teamRepository.Repository
	logger *zap.SugaredLogger
}

// New creates a new membership service instance.
func New(repo repository.Repository, teams teamRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		teams:  teams,
		logger: logger,
	}
}

// EnsureMember returns the caller's membership or ErrForbidden.
func (s *service) EnsureMember(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error) {
	if err := teamModel.ValidateTeamID(teamID); err != nil {
		return nil, err
	}

	m, err := s.repo.Get(ctx, userID, teamID)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, membershipModel.ErrMembershipNotFound) {
		return nil, err
	}

	exists, err := s.teams.Exists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, teamModel.ErrTeamNotFound
	}

	s.logger.Debugw("membership required", "user_id", userID, "team_id", teamID)
	return nil, membershipModel.ErrForbidden
}

// EnsureAdmin is EnsureMember restricted to the admin role.
func (s *service) EnsureAdmin(ctx context.Context, userID, teamID string) (*membershipModel.Membership, error) {
	m, err := s.EnsureMember(ctx, userID, teamID)
	if err != nil {
		return nil, err
	}
	if m.Role != membershipModel.RoleAdmin {
		s.logger.Debugw("admin role required", "user_id", userID, "team_id", teamID, "role", m.Role)
		return nil, membershipModel.ErrForbidden
	}

	return m, nil
}

// ListMembers returns the members of a team the caller belongs to.
func (s *service) ListMembers(
	ctx context.Context,
	callerID, teamID string,
	role membershipModel.Role,
) (*membershipModel.ListMembersResponse, error) {
	if role != "" && !role.Valid() {
		return nil, membershipModel.ErrInvalidRole
	}
	if _, err := s.EnsureMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	members, err := s.repo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := &membershipModel.ListMembersResponse{
		TeamID:  teamID,
		Members: make([]membershipModel.MemberResponse, 0, len(members)),
	}
	for i := range members {
		if role != "" && members[i].Role != role {
			continue
		}
		resp.Members = append(resp.Members, members[i].ToResponse())
	}

	return resp, nil
}
