package repository

import (
	"context"

	"gorm.io/gorm"

	"actipoint/internal/model"
)

// PointEntryRepository defines ledger journal persistence operations.
type PointEntryRepository interface {
	Create(ctx context.Context, entry *model.PointEntry) error
	CreateBatch(ctx context.Context, entries []model.PointEntry) error
}

type pointEntryRepository struct {
	db *gorm.DB
}

// NewPointEntryRepository builds a GORM-backed repository.
func NewPointEntryRepository(db *gorm.DB) PointEntryRepository {
	return &pointEntryRepository{db: db}
}

func (r *pointEntryRepository) Create(ctx context.Context, entry *model.PointEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *pointEntryRepository) CreateBatch(ctx context.Context, entries []model.PointEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

