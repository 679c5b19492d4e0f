// Package repository provides data access layer for user module.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/staffhub/staffhub/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// ListRequests returns the user's access requests with team names, newest first.
	ListRequests(ctx context.Context, userID string) ([]model.RequestWithTeam, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new user repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListRequests returns the user's access requests with team names, newest first.
func (r *repository) ListRequests(ctx context.Context, userID string) ([]model.RequestWithTeam, error) {
	var rows []model.RequestWithTeam

	err := r.db.WithContext(ctx).
		Table("team_access_requests").
		Select("team_access_requests.*, teams.name AS team_name").
		Joins("JOIN teams ON teams.id = team_access_requests.team_id").
		Where("team_access_requests.user_id = ?", userID).
		Order("team_access_requests.created_at DESC, team_access_requests.id DESC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	if rows == nil {
		return []model.RequestWithTeam{}, nil
	}

	return rows, nil
}
