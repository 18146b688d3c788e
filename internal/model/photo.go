package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Photo records one verification upload. The file itself lives on disk
// under the configured upload directory; storage is append-only.
type Photo struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"size:255;not null;index"`
	StoredName   string    `json:"stored_name" gorm:"size:512;not null"`
	OriginalName string    `json:"original_name" gorm:"size:512"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
