package repository

import (
	"context"
	"errors"
	"time"

	"leavedesk/internal/models"

	"gorm.io/gorm"
)

// VacationRepository defines persistence operations for vacation requests.
type VacationRepository interface {
	Create(ctx context.Context, request *models.VacationRequest) error
	GetByID(ctx context.Context, id uint) (*models.VacationRequest, error)
	ListByRequester(ctx context.Context, requesterID uint) ([]models.VacationRequest, error)
	ListPending(ctx context.Context, requesterIDs []uint) ([]models.VacationRequest, error)
	ListPendingAll(ctx context.Context) ([]models.VacationRequest, error)
	Decide(ctx context.Context, id uint, outcome models.RequestStatus, actorID uint, comments *string, at time.Time) (bool, error)
}

type vacationRepository struct {
	db *gorm.DB
}

// NewVacationRepository returns a new VacationRepository implementation.
func NewVacationRepository(db *gorm.DB) VacationRepository {
	return &vacationRepository{db: db}
}

// withDisplayJoins preloads the requester and actor together with their
// locations for denormalized display in API payloads.
func withDisplayJoins(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Requester").
		Preload("Requester.Location").
		Preload("ActionedBy").
		Preload("ActionedBy.Location")
}

func (r *vacationRepository) Create(ctx context.Context, request *models.VacationRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *vacationRepository) GetByID(ctx context.Context, id uint) (*models.VacationRequest, error) {
	var request models.VacationRequest
	if err := withDisplayJoins(r.db.WithContext(ctx)).First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Vacation request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *vacationRepository) ListByRequester(ctx context.Context, requesterID uint) ([]models.VacationRequest, error) {
	var requests []models.VacationRequest
	if err := withDisplayJoins(r.db.WithContext(ctx)).
		Where("requester_id = ?", requesterID).
		Order("requested_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

// ListPending returns pending requests from the given requesters,
// oldest first so reviewers work the queue in FIFO order.
func (r *vacationRepository) ListPending(ctx context.Context, requesterIDs []uint) ([]models.VacationRequest, error) {
	if len(requesterIDs) == 0 {
		return []models.VacationRequest{}, nil
	}
	var requests []models.VacationRequest
	if err := withDisplayJoins(r.db.WithContext(ctx)).
		Where("status = ? AND requester_id IN ?", models.RequestStatusPending, requesterIDs).
		Order("requested_at ASC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

// ListPendingAll returns every pending request system-wide, oldest first.
func (r *vacationRepository) ListPendingAll(ctx context.Context) ([]models.VacationRequest, error) {
	var requests []models.VacationRequest
	if err := withDisplayJoins(r.db.WithContext(ctx)).
		Where("status = ?", models.RequestStatusPending).
		Order("requested_at ASC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

// Decide applies the terminal transition as a single conditional update
// guarded on the pending status. The returned bool reports whether the
// row was transitioned by this call; false means another decision won
// the race (or the request no longer exists).
func (r *vacationRepository) Decide(ctx context.Context, id uint, outcome models.RequestStatus, actorID uint, comments *string, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.VacationRequest{}).
		Where("id = ? AND status = ?", id, models.RequestStatusPending).
		Updates(map[string]interface{}{
			"status":            outcome,
			"actioned_by_id":    actorID,
			"actioned_at":       at,
			"decision_comments": comments,
		})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}
