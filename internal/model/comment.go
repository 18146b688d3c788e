package model

import "time"

// Comment is a reserved collection: it is migrated alongside the other
// models but no endpoint currently produces or consumes it.
type Comment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ActivityID uint      `json:"activity_id" gorm:"index"`
	Username   string    `json:"username" gorm:"size:255"`
	Body       string    `json:"body" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
