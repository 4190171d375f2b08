// File: /repositories/challenge_repository.go
package repositories

import (
	"gorm.io/gorm"

	"stagechase-api/models"
)

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// GetActiveChallenge returns the currently active challenge. The admin
// surface guarantees at most one row has is_active set.
func (r *ChallengeRepository) GetActiveChallenge() (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.db.Where("is_active = ?", true).First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// GetChallenge returns a challenge by ID.
func (r *ChallengeRepository) GetChallenge(id string) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.db.Where("id = ?", id).First(&challenge).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}
