// File: /models/route.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"stagechase-api/geo"
)

// Route is one stage of a challenge: an ordered corridor of vertices plus the
// matching tolerances. There is at most one route per (challenge, stage).
type Route struct {
	ID              string    `json:"id" gorm:"primaryKey;size:191"`
	ChallengeID     string    `json:"challenge_id" gorm:"not null;size:191;uniqueIndex:idx_routes_challenge_stage,priority:1"`
	StageNumber     int       `json:"stage_number" gorm:"not null;uniqueIndex:idx_routes_challenge_stage,priority:2"`
	Name            string    `json:"name" gorm:"size:255"`
	Corridor        Corridor  `json:"corridor" gorm:"type:json"`
	BufferMeters    float64   `json:"buffer_meters" gorm:"not null"`     // corridor half-width
	MinOverlapRatio float64   `json:"min_overlap_ratio" gorm:"not null"` // fraction of track points required inside the buffer
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Challenge Challenge `json:"challenge" gorm:"foreignKey:ChallengeID"`
}

// Corridor stores an ordered vertex sequence as a JSON column.
type Corridor []geo.Point

func (c Corridor) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *Corridor) Scan(value interface{}) error {
	if value == nil {
		*c = Corridor{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, c)
}
