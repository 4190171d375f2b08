// File: /services/processor_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"stagechase-api/geo"
	"stagechase-api/models"
	"stagechase-api/repositories"
)

// ErrNoActiveChallenge signals that a processing run has nothing to do. It is
// a no-op condition, not a failure.
var ErrNoActiveChallenge = errors.New("no active challenge")

// ProcessorReport aggregates the outcome of one processing run.
type ProcessorReport struct {
	Processed int `json:"processed"`
	Improved  int `json:"improved"`
}

// ProcessorService drains the unprocessed-activity queue: eligibility check,
// polyline decode, stage-by-stage geometry match, idempotent best-time upsert,
// one-time processed marker. A failure on one activity never stops the rest
// of the batch.
type ProcessorService struct {
	challengeRepo *repositories.ChallengeRepository
	routeRepo     *repositories.RouteRepository
	activityRepo  *repositories.ActivityRepository
	resultRepo    *repositories.StageResultRepository
	eligibility   *EligibilityService
	audit         *AuditService
	logger        zerolog.Logger
}

func NewProcessorService(
	challengeRepo *repositories.ChallengeRepository,
	routeRepo *repositories.RouteRepository,
	activityRepo *repositories.ActivityRepository,
	resultRepo *repositories.StageResultRepository,
	eligibility *EligibilityService,
	audit *AuditService,
	logger zerolog.Logger,
) *ProcessorService {
	return &ProcessorService{
		challengeRepo: challengeRepo,
		routeRepo:     routeRepo,
		activityRepo:  activityRepo,
		resultRepo:    resultRepo,
		eligibility:   eligibility,
		audit:         audit,
		logger:        logger,
	}
}

// Process runs one batch pass over every unprocessed activity. When there is
// no active challenge or the challenge has no routes the pass is a no-op, not
// an error. Failures scoped to one activity are logged and skipped; failures
// loading the challenge or its routes abort the run since there is nothing to
// match against.
func (s *ProcessorService) Process() (ProcessorReport, error) {
	report := ProcessorReport{}

	challenge, routes, err := s.loadActiveRoutes()
	if err != nil {
		if errors.Is(err, ErrNoActiveChallenge) {
			s.logger.Info().Msg("no active challenge with routes, skipping run")
			return report, nil
		}
		return report, err
	}

	activities, err := s.activityRepo.GetUnprocessed()
	if err != nil {
		return report, fmt.Errorf("failed to load unprocessed activities: %w", err)
	}

	for i := range activities {
		activity := &activities[i]

		improved, err := s.processActivity(activity, challenge, routes)
		if err != nil {
			// Scoped to this activity; the batch keeps going and the
			// processed marker is still attempted below.
			s.logger.Error().
				Str("activity_id", activity.ID).
				Err(err).
				Msg("failed to process activity")
		}

		if err := s.activityRepo.MarkProcessed(activity.ID, time.Now()); err != nil {
			// The activity stays in the unprocessed queue and is retried on
			// the next run. The upsert above is idempotent, so that is safe.
			s.logger.Error().
				Str("activity_id", activity.ID).
				Err(err).
				Msg("failed to mark activity processed")
			continue
		}

		report.Processed++
		if improved {
			report.Improved++
		}
	}

	s.logger.Info().
		Int("processed", report.Processed).
		Int("improved", report.Improved).
		Msg("processing run complete")

	return report, nil
}

func (s *ProcessorService) loadActiveRoutes() (*models.Challenge, []models.Route, error) {
	challenge, err := s.challengeRepo.GetActiveChallenge()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNoActiveChallenge
		}
		return nil, nil, fmt.Errorf("failed to load active challenge: %w", err)
	}

	routes, err := s.routeRepo.GetRoutesForChallenge(challenge.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load routes for challenge %s: %w", challenge.ID, err)
	}
	if len(routes) == 0 {
		return nil, nil, ErrNoActiveChallenge
	}

	return challenge, routes, nil
}

// processActivity handles a single activity and reports whether it created or
// improved a stage result. Routes arrive in ascending stage order and the
// first match wins: stage corridors are assumed geometrically distinct enough
// that a track satisfies at most one of them.
func (s *ProcessorService) processActivity(activity *models.Activity, challenge *models.Challenge, routes []models.Route) (bool, error) {
	if !s.eligibility.IsEligible(activity, challenge) {
		s.logger.Debug().
			Str("activity_id", activity.ID).
			Str("user_id", activity.UserID).
			Msg("activity not eligible, skipping")
		return false, nil
	}

	track, err := geo.DecodePolyline(activity.Polyline, PolylinePrecision)
	if err != nil {
		// A malformed track can never match; the activity still gets its
		// processed marker so it is not retried forever.
		return false, fmt.Errorf("failed to decode activity polyline: %w", err)
	}

	for _, route := range routes {
		result, err := geo.MatchTrack(track, route.Corridor, route.BufferMeters, route.MinOverlapRatio)
		if err != nil {
			s.logger.Warn().
				Str("route_id", route.ID).
				Int("stage_number", route.StageNumber).
				Err(err).
				Msg("route match failed, trying next route")
			continue
		}
		if !result.Matched {
			continue
		}

		improved, err := s.resultRepo.UpsertBestTime(
			activity.UserID,
			challenge.ID,
			route.StageNumber,
			activity.ElapsedSeconds,
			activity.StartedAt,
		)
		if err != nil {
			return false, fmt.Errorf("failed to upsert stage result: %w", err)
		}

		if improved {
			s.logger.Info().
				Str("user_id", activity.UserID).
				Int("stage_number", route.StageNumber).
				Int("time_seconds", activity.ElapsedSeconds).
				Float64("overlap_ratio", result.OverlapRatio).
				Msg("stage completed")

			s.audit.RecordStageCompletion(
				activity.UserID,
				challenge.ID,
				route.StageNumber,
				activity.ElapsedSeconds,
				activity.ID,
			)
		}

		return improved, nil
	}

	return false, nil
}
