// File: /repositories/stage_result_repository.go
package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stagechase-api/models"
)

type StageResultRepository struct {
	db *gorm.DB
}

func NewStageResultRepository(db *gorm.DB) *StageResultRepository {
	return &StageResultRepository{db: db}
}

// GetResult returns the stage result for (user, challenge, stage).
func (r *StageResultRepository) GetResult(userID, challengeID string, stageNumber int) (*models.StageResult, error) {
	var result models.StageResult
	err := r.db.Where("user_id = ? AND challenge_id = ? AND stage_number = ?",
		userID, challengeID, stageNumber).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetResultsForUser returns all of a user's stage results for a challenge in
// stage order.
func (r *StageResultRepository) GetResultsForUser(userID, challengeID string) ([]models.StageResult, error) {
	var results []models.StageResult
	err := r.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Order("stage_number ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UpsertBestTime records timeSeconds for (user, challenge, stage) if it beats
// the stored best. Returns true when a row was created or improved. Rerunning
// with the same or a larger time is a no-op, which is what makes the batch
// processor safe to retry.
func (r *StageResultRepository) UpsertBestTime(userID, challengeID string, stageNumber, timeSeconds int, completedAt time.Time) (bool, error) {
	improved := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.StageResult
		err := tx.Where("user_id = ? AND challenge_id = ? AND stage_number = ?",
			userID, challengeID, stageNumber).First(&existing).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result := models.StageResult{
					ID:              uuid.New().String(),
					UserID:          userID,
					ChallengeID:     challengeID,
					StageNumber:     stageNumber,
					BestTimeSeconds: timeSeconds,
					CompletedAt:     completedAt,
					CreatedAt:       time.Now(),
					UpdatedAt:       time.Now(),
				}
				if err := tx.Create(&result).Error; err != nil {
					return err
				}
				improved = true
				return nil
			}
			return err
		}

		// Strictly smaller only: best times never move up.
		if timeSeconds >= existing.BestTimeSeconds {
			return nil
		}

		if err := tx.Model(&existing).Updates(map[string]interface{}{
			"best_time_seconds": timeSeconds,
			"completed_at":      completedAt,
			"updated_at":        time.Now(),
		}).Error; err != nil {
			return err
		}
		improved = true
		return nil
	})

	return improved, err
}
