// File: /models/participant.go
package models

import (
	"time"
)

// Participant is a user's membership in a challenge. Rows are written by the
// admin/ticket-gating surface; the matching pipeline only reads the Excluded
// flag.
type Participant struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;size:191;uniqueIndex:idx_participants_user_challenge,priority:1"`
	ChallengeID string    `json:"challenge_id" gorm:"not null;size:191;uniqueIndex:idx_participants_user_challenge,priority:2"`
	Excluded    bool      `json:"excluded" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`

	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Challenge Challenge `json:"challenge" gorm:"foreignKey:ChallengeID"`
}
