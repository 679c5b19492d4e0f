// Package service implements the access request queue and the approval workflow.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	accessModel "github.com/staffhub/staffhub/internal/access/model"
	"github.com/staffhub/staffhub/internal/access/repository"
	auditModel "github.com/staffhub/staffhub/internal/audit/model"
	auditRepository "github.com/staffhub/staffhub/internal/audit/repository"
	membershipModel "github.com/staffhub/staffhub/internal/membership/model"
	membershipRepository "github.com/staffhub/staffhub/internal/membership/repository"
	membershipService "github.com/staffhub/staffhub/internal/membership/service"
	teamModel "github.com/staffhub/staffhub/internal/team/model"
	teamRepository "github.com/staffhub/staffhub/internal/team/repository"
)

// Service defines the interface for access request operations.
type Service interface {
	// RequestAccess queues a join request of userID for teamID.
	RequestAccess(ctx context.Context, userID, teamID, message string) (*accessModel.AccessRequestResponse, error)

	// ListRequests returns the requests of a team. The caller must be a team admin.
	ListRequests(
		ctx context.Context,
		callerID, teamID string,
		status accessModel.Status,
	) ([]accessModel.AccessRequestResponse, error)

	// ApproveAccess marks a pending request approved and creates the membership atomically.
	ApproveAccess(ctx context.Context, callerID, teamID, requestID string) (*accessModel.ApproveResponse, error)

	// RejectAccess marks a request rejected.
	RejectAccess(ctx context.Context, callerID, teamID, requestID string) (*accessModel.AccessRequestResponse, error)
}

type service struct {
	repo    repository.Repository
	teams   teamRepository.Repository
	members membershipService.Service
	db      *gorm.DB
	logger  *zap.SugaredLogger
}

// New creates a new access service instance.
func New(
	repo repository.Repository,
	teams teamRepository.Repository,
	members membershipService.Service,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:    repo,
		teams:   teams,
		members: members,
		db:      db,
		logger:  logger,
	}
}

// RequestAccess queues a join request. It fails with ErrAlreadyMember when the
// user already belongs to the team and ErrRequestPending when a pending
// request exists.
func (s *service) RequestAccess(
	ctx context.Context,
	userID, teamID, message string,
) (*accessModel.AccessRequestResponse, error) {
	if err := teamModel.ValidateTeamID(teamID); err != nil {
		return nil, err
	}
	message, err := accessModel.NormalizeMessage(message)
	if err != nil {
		return nil, err
	}

	exists, err := s.teams.Exists(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, teamModel.ErrTeamNotFound
	}

	s.logger.Debugw("requesting team access", "user_id", userID, "team_id", teamID)

	var req *accessModel.AccessRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		member, err := membershipRepository.New(tx).Exists(ctx, userID, teamID)
		if err != nil {
			return err
		}
		if member {
			return membershipModel.ErrAlreadyMember
		}

		pending, err := txRepo.HasPending(ctx, userID, teamID)
		if err != nil {
			return err
		}
		if pending {
			return accessModel.ErrRequestPending
		}

		created, err := txRepo.Create(ctx, userID, teamID, message)
		if err != nil {
			return err
		}
		if _, err := auditRepository.New(tx).Record(
			ctx, teamID, userID, auditModel.ActionAccessRequested, created.ID,
		); err != nil {
			return err
		}

		req = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("access requested", "request_id", req.ID, "user_id", userID, "team_id", teamID)

	resp := req.ToResponse()
	return &resp, nil
}

// ListRequests returns the requests of a team. The caller must be a team admin.
func (s *service) ListRequests(
	ctx context.Context,
	callerID, teamID string,
	status accessModel.Status,
) ([]accessModel.AccessRequestResponse, error) {
	if status != "" && !status.Valid() {
		return nil, accessModel.ErrInvalidStatus
	}
	if _, err := s.members.EnsureAdmin(ctx, callerID, teamID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByTeam(ctx, teamID, status)
	if err != nil {
		return nil, err
	}

	return accessModel.ToResponseList(requests), nil
}

// ApproveAccess marks a pending request approved and creates the membership.
// Both writes and the audit record commit together or not at all.
func (s *service) ApproveAccess(
	ctx context.Context,
	callerID, teamID, requestID string,
) (*accessModel.ApproveResponse, error) {
	if _, err := s.members.EnsureAdmin(ctx, callerID, teamID); err != nil {
		return nil, err
	}
	if !accessModel.IsRequestID(requestID) {
		return nil, accessModel.ErrInvalidRequest
	}

	s.logger.Debugw("approving access request", "request_id", requestID, "team_id", teamID, "admin_id", callerID)

	var result *accessModel.ApproveResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		updated, err := txRepo.Transition(ctx, teamID, requestID, accessModel.StatusPending, accessModel.StatusApproved)
		if err != nil {
			return err
		}
		if !updated {
			return accessModel.ErrInvalidRequest
		}

		req, err := txRepo.GetInTeam(ctx, teamID, requestID)
		if err != nil {
			return err
		}

		membership, err := membershipRepository.New(tx).Create(ctx, req.UserID, teamID, membershipModel.RoleUser)
		if err != nil {
			return err
		}

		if _, err := auditRepository.New(tx).Record(
			ctx, teamID, callerID, auditModel.ActionAccessApproved, requestID,
		); err != nil {
			return err
		}

		result = &accessModel.ApproveResponse{
			Request:    req.ToResponse(),
			Membership: membership.ToResponse(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("access request approved",
		"request_id", requestID,
		"team_id", teamID,
		"user_id", result.Request.UserID,
		"admin_id", callerID,
	)
	return result, nil
}

// RejectAccess marks a request rejected whatever its current status.
// Memberships are never touched.
func (s *service) RejectAccess(
	ctx context.Context,
	callerID, teamID, requestID string,
) (*accessModel.AccessRequestResponse, error) {
	if _, err := s.members.EnsureAdmin(ctx, callerID, teamID); err != nil {
		return nil, err
	}
	if !accessModel.IsRequestID(requestID) {
		return nil, accessModel.ErrRequestNotFound
	}

	s.logger.Debugw("rejecting access request", "request_id", requestID, "team_id", teamID, "admin_id", callerID)

	var req *accessModel.AccessRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if err := txRepo.SetStatus(ctx, teamID, requestID, accessModel.StatusRejected); err != nil {
			return err
		}

		updated, err := txRepo.GetInTeam(ctx, teamID, requestID)
		if err != nil {
			return err
		}

		if _, err := auditRepository.New(tx).Record(
			ctx, teamID, callerID, auditModel.ActionAccessRejected, requestID,
		); err != nil {
			return err
		}

		req = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("access request rejected", "request_id", requestID, "team_id", teamID, "admin_id", callerID)

	resp := req.ToResponse()
	return &resp, nil
}
