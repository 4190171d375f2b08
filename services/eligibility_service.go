// File: /services/eligibility_service.go
package services

import (
	"github.com/rs/zerolog"

	"stagechase-api/models"
	"stagechase-api/repositories"
)

type EligibilityService struct {
	participantRepo *repositories.ParticipantRepository
	logger          zerolog.Logger
}

func NewEligibilityService(participantRepo *repositories.ParticipantRepository, logger zerolog.Logger) *EligibilityService {
	return &EligibilityService{
		participantRepo: participantRepo,
		logger:          logger,
	}
}

// IsEligible decides whether an activity may be matched against a challenge:
// the activity must start inside the challenge window (both boundaries
// inclusive) and its user must be a non-excluded participant. Lookup failures
// count as ineligible rather than aborting the batch.
func (s *EligibilityService) IsEligible(activity *models.Activity, challenge *models.Challenge) bool {
	if !challenge.ContainsInstant(activity.StartedAt) {
		return false
	}

	participant, err := s.participantRepo.GetParticipant(activity.UserID, challenge.ID)
	if err != nil {
		// Missing row and lookup error both fail closed.
		s.logger.Debug().
			Str("activity_id", activity.ID).
			Str("user_id", activity.UserID).
			Err(err).
			Msg("participant lookup failed, treating as ineligible")
		return false
	}

	return !participant.Excluded
}
