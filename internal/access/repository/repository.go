// Package repository provides data access layer for access requests.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	accessModel "github.com/staffhub/staffhub/internal/access/model"
	"github.com/staffhub/staffhub/internal/database/database"
)

// Repository defines the interface for access request data access operations.
type Repository interface {
	// Create queues a pending request.
	Create(ctx context.Context, userID, teamID, message string) (*accessModel.AccessRequest, error)

	// GetInTeam finds a request by id within a team.
	GetInTeam(ctx context.Context, teamID, requestID string) (*accessModel.AccessRequest, error)

	// HasPending reports whether the user has a pending request for the team.
	HasPending(ctx context.Context, userID, teamID string) (bool, error)

	// Transition moves a request of the team from one status to another.
	// It reports false when no row matched, leaving the request untouched.
	Transition(ctx context.Context, teamID, requestID string, from, to accessModel.Status) (bool, error)

	// SetStatus sets the status of a request of the team unconditionally.
	SetStatus(ctx context.Context, teamID, requestID string, status accessModel.Status) error

	// ListByTeam returns requests of a team, newest first, optionally filtered by status.
	ListByTeam(ctx context.Context, teamID string, status accessModel.Status) ([]accessModel.AccessRequest, error)

}

type repository struct {
	db *gorm.DB
}

// New creates a new access request repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create queues a pending request.
func (r *repository) Create(
	ctx context.Context,
	userID, teamID, message string,
) (*accessModel.AccessRequest, error) {
	req := &accessModel.AccessRequest{
		UserID:  userID,
		TeamID:  teamID,
		Status:  accessModel.StatusPending,
		Message: message,
	}
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		// Only the pending (user_id, team_id) index can be violated here.
		if database.IsDuplicateKey(err) {
			return nil, accessModel.ErrRequestPending
		}
		return nil, err
	}

	return req, nil
}

// GetInTeam finds a request by id within a team.
func (r *repository) GetInTeam(ctx context.Context, teamID, requestID string) (*accessModel.AccessRequest, error) {
	var req accessModel.AccessRequest
	err := r.db.WithContext(ctx).
		Where("id = ? AND team_id = ?", requestID, teamID).
		First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accessModel.ErrRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

// HasPending reports whether the user has a pending request for the team.
func (r *repository) HasPending(ctx context.Context, userID, teamID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&accessModel.AccessRequest{}).
		Where("user_id = ? AND team_id = ? AND status = ?", userID, teamID, string(accessModel.StatusPending)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Transition moves a request of the team from one status to another.
// The status predicate makes concurrent transitions of the same request
// mutually exclusive: the row lock taken by the first UPDATE makes the
// second one re-check the predicate and match nothing.
func (r *repository) Transition(
	ctx context.Context,
	teamID, requestID string,
	from, to accessModel.Status,
) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&accessModel.AccessRequest{}).
		Where("id = ? AND team_id = ? AND status = ?", requestID, teamID, string(from)).
		Updates(map[string]interface{}{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected == 1, nil
}

// SetStatus sets the status of a request of the team unconditionally.
func (r *repository) SetStatus(
	ctx context.Context,
	teamID, requestID string,
	status accessModel.Status,
) error {
	res := r.db.WithContext(ctx).
		Model(&accessModel.AccessRequest{}).
		Where("id = ? AND team_id = ?", requestID, teamID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return accessModel.ErrRequestNotFound
	}

	return nil
}

// ListByTeam returns requests of a team, newest first, optionally filtered by status.
func (r *repository) ListByTeam(
	ctx context.Context,
	teamID string,
	status accessModel.Status,
) ([]accessModel.AccessRequest, error) {
	query := r.db.WithContext(ctx).Where("team_id = ?", teamID)
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var requests []accessModel.AccessRequest
	if err := query.Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}
