// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	membershipService "github.com/staffhub/staffhub/internal/membership/service"
	"github.com/staffhub/staffhub/internal/statistics/model"
	"github.com/staffhub/staffhub/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetTeamStatistics returns the dashboard counters of a team the caller belongs to.
	GetTeamStatistics(ctx context.Context, callerID, teamID string) (*model.TeamStatisticsResponse, error)
}

type service struct {
	repo    repository.Repository
	members membershipService.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, members membershipService.Service, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		members: members,
		logger:  logger,
	}
}

// GetTeamStatistics returns the dashboard counters of a team the caller belongs to.
func (s *service) GetTeamStatistics(
	ctx context.Context,
	callerID, teamID string,
) (*model.TeamStatisticsResponse, error) {
	s.logger.Debugw("GetTeamStatistics called", "team_id", teamID)

	if _, err := s.members.EnsureMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	members, err := s.repo.GetMemberStatistics(ctx, teamID)
	if err != nil {
		return nil, err
	}

	requests, err := s.repo.GetRequestStatistics(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &model.TeamStatisticsResponse{
		TeamID: teamID,
		Statistics: model.TeamStatistics{
			MembersTotal:     members.Total,
			Admins:           members.Admins,
			Users:            members.Users,
			RequestsPending:  requests.Pending,
			RequestsApproved: requests.Approved,
			RequestsRejected: requests.Rejected,
		},
	}, nil
}
