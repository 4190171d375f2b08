// File: /models/audit_log.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const AuditActionStageCompleted = "STAGE_COMPLETED"

// AuditLogEntry is an append-only record of significant pipeline events. The
// pipeline writes entries as a side effect and never reads them back.
type AuditLogEntry struct {
	ID         string    `json:"id" gorm:"primaryKey;size:191"`
	ActorID    string    `json:"actor_id" gorm:"not null;size:191;index"`
	Action     string    `json:"action" gorm:"not null;size:100"`
	EntityType string    `json:"entity_type" gorm:"not null;size:100"`
	Metadata   JSONData  `json:"metadata" gorm:"type:json"`
	CreatedAt  time.Time `json:"created_at"`
}

// JSONData is a generic JSON column.
type JSONData map[string]interface{}

func (j JSONData) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONData) Scan(value interface{}) error {
	if value == nil {
		*j = JSONData{}
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

	return json.Unmarshal(bytes, j)
}
