// Package service provides business logic layer for team module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	auditModel "github.com/staffhub/staffhub/internal/audit/model"
	auditRepository "github.com/staffhub/staffhub/internal/audit/repository"
	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	membershipRepository "github.com/staffhub/staffhub/internal/membership/repository"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
	"github.com/staffhub/staffhub/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a team with its settings and makes the creator its admin.
	CreateTeam(ctx context.Context, userID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// ListTeams returns discoverable active teams.
	ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error)

	// ListMyTeams returns the caller's teams with the caller's role.
	ListMyTeams(ctx context.Context, userID string) ([]teamModel.MyTeamResponse, error)

	// GetTeam returns a team with settings and member count.
	GetTeam(ctx context.Context, teamID string) (*teamModel.TeamDetailsResponse, error)
}

type service struct {
	repo    repository.Repository
	members membershipRepository.Repository
	db      *gorm.DB
	logger  *zap.SugaredLogger
}

// New creates a new team service instance.
func New(
	repo repository.Repository,
	members membershipRepository.Repository,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:    repo,
		members: members,
		db:      db,
		logger:  logger,
	}
}

// CreateTeam creates the team, its settings and the creator's admin
// membership in one transaction.
func (s *service) CreateTeam(
	ctx context.Context,
	userID string,
	req *teamModel.CreateTeamRequest,
) (*teamModel.TeamResponse, error) {
	if err := req.Normalize(); err != nil {
		return nil, err
	}

	s.logger.Debugw("creating team", "name", req.Name, "user_id", userID)

	var team *teamModel.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		created, err := txRepo.Create(ctx, req.Name, req.Industry, req.IsDiscoverable, userID)
		if err != nil {
			return err
		}
		if _, err := txRepo.CreateSettings(ctx, created.ID); err != nil {
			return err
		}
		if _, err := membershipRepository.New(tx).Create(ctx, userID, created.ID, membershipModel.RoleAdmin); err != nil {
			return err
		}
		if _, err := auditRepository.New(tx).Record(
			ctx, created.ID, userID, auditModel.ActionTeamCreated, created.ID,
		); err != nil {
			return err
		}

		team = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "name", team.Name, "user_id", userID)

	resp := team.ToResponse()
	return &resp, nil
}

// ListTeams returns discoverable active teams.
func (s *service) ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error) {
	teams, err := s.repo.ListDiscoverable(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		resp = append(resp, teams[i].ToResponse())
	}
	return resp, nil
}

// ListMyTeams returns the caller's teams with the caller's role.
func (s *service) ListMyTeams(ctx context.Context, userID string) ([]teamModel.MyTeamResponse, error) {
	rows, err := s.repo.ListByMember(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]teamModel.MyTeamResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, teamModel.MyTeamResponse{
			TeamResponse: rows[i].Team.ToResponse(),
			Role:         rows[i].Role,
		})
	}
	return resp, nil
}

// GetTeam returns a team with settings and member count.
func (s *service) GetTeam(ctx context.Context, teamID string) (*teamModel.TeamDetailsResponse, error) {
	if err := teamModel.ValidateTeamID(teamID); err != nil {
		return nil, err
	}

	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.GetSettings(ctx, teamID)
	if err != nil {
		return nil, err
	}

	counts, err := s.members.CountByRole(ctx, teamID)
	if err != nil {
		return nil, err
	}

	return &teamModel.TeamDetailsResponse{
		TeamResponse: team.ToResponse(),
		Settings:     settings.ToResponse(),
		MemberCount:  counts[membershipModel.RoleAdmin] + counts[membershipModel.RoleUser],
		AdminCount:   counts[membershipModel.RoleAdmin],
	}, nil
}
