// File: /repositories/participant_repository.go
package repositories

import (
	"gorm.io/gorm"

	"stagechase-api/models"
)

type ParticipantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// GetParticipant returns the membership row for (user, challenge).
func (r *ParticipantRepository) GetParticipant(userID, challengeID string) (*models.Participant, error) {
	var participant models.Participant
	err := r.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		First(&participant).Error
	if err != nil {
		return nil, err
	}
	return &participant, nil
}
