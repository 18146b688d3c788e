package repository

import (
	"context"

	"gorm.io/gorm"

	"actipoint/internal/model"
)

// PhotoRepository defines photo record persistence operations.
type PhotoRepository interface {
	Create(ctx context.Context, photo *model.Photo) error
}

type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository builds a GORM-backed repository.
func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *model.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

