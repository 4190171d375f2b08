// File: /repositories/audit_repository.go
package repositories

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stagechase-api/models"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append writes one audit entry. The log is append-only; nothing in the
// pipeline ever updates or deletes entries.
func (r *AuditRepository) Append(entry *models.AuditLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	return r.db.Create(entry).Error
}
