// Package service provides business logic layer for user module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/staffhub/staffhub/internal/user/model"
	"github.com/staffhub/staffhub/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// GetMyRequests returns the caller's access requests across teams.
	GetMyRequests(ctx context.Context, userID string) (*model.MyRequestsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// GetMyRequests returns the caller's access requests across teams.
func (s *service) GetMyRequests(ctx context.Context, userID string) (*model.MyRequestsResponse, error) {
	s.logger.Debugw("GetMyRequests called", "user_id", userID)

	rows, err := s.repo.ListRequests(ctx, userID)
	if err != nil {
		s.logger.Errorw("GetMyRequests failed", "user_id", userID, "error", err)
		return nil, err
	}

	resp := &model.MyRequestsResponse{
		UserID:   userID,
		Requests: make([]model.MyRequest, 0, len(rows)),
	}
	for i := range rows {
		resp.Requests = append(resp.Requests, rows[i].ToMyRequest())
	}

	return resp, nil
}
