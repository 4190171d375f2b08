// File: /models/activity.go
package models

import (
	"time"
)

// Activity is a raw GPS track submission. ProcessedAt is nil until the batch
// processor has seen the activity; once set the activity is never touched
// again, whatever the match outcome was.
type Activity struct {
	ID             string     `json:"id" gorm:"primaryKey;size:191"`
	UserID         string     `json:"user_id" gorm:"not null;size:191;index"`
	Polyline       string     `json:"polyline" gorm:"not null;type:text"`
	StartedAt      time.Time  `json:"started_at" gorm:"not null"`
	ElapsedSeconds int        `json:"elapsed_seconds" gorm:"not null"`
	ProcessedAt    *time.Time `json:"processed_at" gorm:"index"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	User User `json:"user" gorm:"foreignKey:UserID"`
}
