package repository

import (
	"context"

	"gorm.io/gorm"

	"actipoint/internal/model"
)

// ActivityRepository defines activity persistence operations.
type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	FindByNameAndDate(ctx context.Context, name, date string) (*model.Activity, error)
	// ListByDate returns all activities ordered ascending by the raw date
	// string.
	ListByDate(ctx context.Context) ([]model.Activity, error)
	// ListAll returns all activities in insertion order.
	ListAll(ctx context.Context) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository builds a GORM-backed repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindByNameAndDate(ctx context.Context, name, date string) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.WithContext(ctx).
		Where("name = ? AND date = ?", name, date).
		First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListByDate(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) ListAll(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
