// File: /models/stage_result.go
package models

import (
	"time"
)

// StageResult holds a participant's best elapsed time for one stage. Unique
// per (user, challenge, stage); BestTimeSeconds only ever decreases.
type StageResult struct {
	ID              string    `json:"id" gorm:"primaryKey;size:191"`
	UserID          string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:idx_stage_results_key,priority:1"`
	ChallengeID     string    `json:"challenge_id" gorm:"not null;size:191;uniqueIndex:idx_stage_results_key,priority:2"`
	StageNumber     int       `json:"stage_number" gorm:"not null;uniqueIndex:idx_stage_results_key,priority:3"`
	BestTimeSeconds int       `json:"best_time_seconds" gorm:"not null"`
	CompletedAt     time.Time `json:"completed_at" gorm:"not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Challenge Challenge `json:"challenge" gorm:"foreignKey:ChallengeID"`
}
