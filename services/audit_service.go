// File: /services/audit_service.go
package services

import (
	"github.com/rs/zerolog"

	"stagechase-api/models"
	"stagechase-api/repositories"
)

type AuditService struct {
	auditRepo *repositories.AuditRepository
	logger    zerolog.Logger
}

func NewAuditService(auditRepo *repositories.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// RecordStageCompletion writes a STAGE_COMPLETED entry. Best-effort: a failed
// audit write is logged and swallowed so it can never roll back the stage
// result it describes.
func (s *AuditService) RecordStageCompletion(userID, challengeID string, stageNumber, timeSeconds int, activityID string) {
	entry := &models.AuditLogEntry{
		ActorID:    userID,
		Action:     models.AuditActionStageCompleted,
		EntityType: "stage_result",
		Metadata: models.JSONData{
			"challenge_id": challengeID,
			"stage_number": stageNumber,
			"time_seconds": timeSeconds,
			"activity_id":  activityID,
		},
	}

	if err := s.auditRepo.Append(entry); err != nil {
		s.logger.Warn().
			Str("user_id", userID).
			Int("stage_number", stageNumber).
			Err(err).
			Msg("failed to write stage completion audit entry")
	}
}
