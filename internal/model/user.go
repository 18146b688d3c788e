package model

import "time"

// InitialPoints is the balance every user starts with at registration.
const InitialPoints = 20

// User represents a community member with a reward point balance.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Points       int       `json:"points" gorm:"not null;default:20"`
	// Advisory list of activity IDs; no endpoint mutates it.
	JoinedActivities []uint    `json:"joinedActivities" gorm:"serializer:json"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
