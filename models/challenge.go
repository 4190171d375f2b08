// File: /models/challenge.go
package models

import (
	"time"
)

// Challenge is the timed event activities are matched against. At most one
// challenge is active at any time; activation is managed by the admin surface,
// the matching pipeline only reads it.
type Challenge struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	StartsAt  time.Time `json:"starts_at" gorm:"not null"`
	EndsAt    time.Time `json:"ends_at" gorm:"not null"`
	IsActive  bool      `json:"is_active" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Routes       []Route       `json:"routes" gorm:"foreignKey:ChallengeID"`
	Participants []Participant `json:"participants" gorm:"foreignKey:ChallengeID"`
}

// ContainsInstant reports whether t falls inside the challenge window. Both
// boundaries are inclusive.
func (ch *Challenge) ContainsInstant(t time.Time) bool {
	return !t.Before(ch.StartsAt) && !t.After(ch.EndsAt)
}
