// File: /repositories/activity_repository.go
package repositories

import (
	"time"

	"gorm.io/gorm"

	"stagechase-api/models"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// CreateActivity stores a new submission with processed_at unset.
func (r *ActivityRepository) CreateActivity(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

// GetUnprocessed returns all activities the batch processor has not seen yet,
// oldest first.
func (r *ActivityRepository) GetUnprocessed() ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.Where("processed_at IS NULL").
		Order("started_at ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// MarkProcessed stamps the one-time processed marker. Once set the activity
// leaves the unprocessed queue permanently.
func (r *ActivityRepository) MarkProcessed(activityID string, processedAt time.Time) error {
	return r.db.Model(&models.Activity{}).
		Where("id = ?", activityID).
		Updates(map[string]interface{}{
			"processed_at": processedAt,
			"updated_at":   time.Now(),
		}).Error
}
