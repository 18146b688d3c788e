package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EntryKind classifies a ledger journal entry.
type EntryKind string

const (
	EntryKindSpend  EntryKind = "spend"
	EntryKindCredit EntryKind = "credit"
)

// PointEntry is a journal row for a single point balance mutation.
// Entries are written for every applied spend and credit.
type PointEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Username  string    `json:"username" gorm:"size:255;not null;index"`
	Kind      EntryKind `json:"kind" gorm:"type:varchar(20);not null;index"`
	Delta     int       `json:"delta" gorm:"not null"`
	Balance   int       `json:"balance" gorm:"not null"`
	Reference string    `json:"reference,omitempty" gorm:"size:512"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *PointEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
