package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

// TripRepository persists saved trips. The collection is append-only: trips
// are inserted and deleted, never updated.
type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.SavedTrip) error
	ListByUserId(ctx context.Context, userId uuid.UUID, page, pageSize int) ([]db_models.SavedTrip, error)
	FindByIdAndUserId(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*db_models.SavedTrip, error)
	DeleteByIdAndUserId(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{
		db: db,
	}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.SavedTrip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByUserId(ctx context.Context, userId uuid.UUID, page, pageSize int) ([]db_models.SavedTrip, error) {
	var trips []db_models.SavedTrip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) FindByIdAndUserId(ctx context.Context, id uuid.UUID, userId uuid.UUID) (*db_models.SavedTrip, error) {
	var trip db_models.SavedTrip
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) DeleteByIdAndUserId(ctx context.Context, id uuid.UUID, userId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userId).
		Delete(&db_models.SavedTrip{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
