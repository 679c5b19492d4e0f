// Package service provides the team activity feed.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	auditModel "github.com/staffhub/staffhub/internal/audit/model"
	"github.com/staffhub/staffhub/internal/audit/repository"
	membershipService "github.com/staffhub/staffhub/internal/membership/service"
)

// Service defines the interface for activity feed operations.
type Service interface {
	// ListTeamActivity returns the newest events of a team the caller belongs to.
	ListTeamActivity(ctx context.Context, callerID, teamID string, limit int) (*auditModel.ActivityResponse, error)
}

type service struct {
	repo    repository.Repository
	members membershipService.Service
	logger  *zap.SugaredLogger
}

// New creates a new audit service instance.
func New(repo repository.Repository, members membershipService.Service, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		members: members,
		logger:  logger,
	}
}

// ListTeamActivity returns the newest events of a team the caller belongs to.
// A non-positive limit selects the default page size; larger limits are capped.
func (s *service) ListTeamActivity(
	ctx context.Context,
	callerID, teamID string,
	limit int,
) (*auditModel.ActivityResponse, error) {
	if _, err := s.members.EnsureMember(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = auditModel.DefaultLimit
	case limit > auditModel.MaxLimit:
		limit = auditModel.MaxLimit
	}

	events, err := s.repo.ListByTeam(ctx, teamID, limit)
	if err != nil {
		return nil, err
	}

	resp := &auditModel.ActivityResponse{
		TeamID: teamID,
		Events: make([]auditModel.EventResponse, 0, len(events)),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, auditModel.EventResponse{
			ID:        e.ID,
			ActorID:   e.ActorID,
			Action:    e.Action,
			TargetID:  e.TargetID,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return resp, nil
}
