// Package repository provides data access layer for statistics module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/staffhub/staffhub/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetMemberStatistics counts the members of a team by role.
	GetMemberStatistics(ctx context.Context, teamID string) (*model.MemberStatistics, error)

	// GetRequestStatistics counts the access requests of a team by status.
	GetRequestStatistics(ctx context.Context, teamID string) (*model.RequestStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetMemberStatistics counts the members of a team by role.
func (r *repository) GetMemberStatistics(ctx context.Context, teamID string) (*model.MemberStatistics, error) {
	var stats model.MemberStatistics

	err := r.db.WithContext(ctx).
		Table("team_memberships").
		Select(`
			COUNT(*) as total,
			COALESCE(SUM(CASE WHEN role = 'admin' THEN 1 ELSE 0 END), 0) as admins,
			COALESCE(SUM(CASE WHEN role = 'user' THEN 1 ELSE 0 END), 0) as users
		`).
		Where("team_id = ?", teamID).
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetMemberStatistics database error", "team_id", teamID, "error", err)
		return nil, err
	}

	r.logger.Debugw("GetMemberStatistics completed", "team_id", teamID, "total", stats.Total)
	return &stats, nil
}

// GetRequestStatistics counts the access requests of a team by status.
func (r *repository) GetRequestStatistics(ctx context.Context, teamID string) (*model.RequestStatistics, error) {
	var stats model.RequestStatistics

	err := r.db.WithContext(ctx).
		Table("team_access_requests").
		Select(`
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) as pending,
			COALESCE(SUM(CASE WHEN status = 'approved' THEN 1 ELSE 0 END), 0) as approved,
			COALESCE(SUM(CASE WHEN status = 'rejected' THEN 1 ELSE 0 END), 0) as rejected
		`).
		Where("team_id = ?", teamID).
		Scan(&stats).Error

	if err != nil {
		r.logger.Errorw("GetRequestStatistics database error", "team_id", teamID, "error", err)
		return nil, err
	}

	r.logger.Debugw("GetRequestStatistics completed", "team_id", teamID, "pending", stats.Pending)
	return &stats, nil
}
