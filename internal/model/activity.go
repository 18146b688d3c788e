package model

import "time"

// Activity represents an event users may join by spending points.
// Dates are kept as strings and ordered lexicographically, so listings are
// chronological only for ISO-8601 style input.
type Activity struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	Name                 string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_activities_name_date"`
	Date                 string    `json:"date" gorm:"size:64;not null;uniqueIndex:idx_activities_name_date"`
	Time                 string    `json:"time" gorm:"size:64"`
	Location             string    `json:"location" gorm:"size:255"`
	Organizer            string    `json:"organizer" gorm:"size:255"`
	Description          string    `json:"description" gorm:"type:text"`
	Cost                 int       `json:"cost" gorm:"not null;default:0"`
	RequiredParticipants int       `json:"requiredParticipants" gorm:"not null;default:1"`
	CurrentParticipants  int       `json:"currentParticipants" gorm:"not null;default:0"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
