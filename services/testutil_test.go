// File: /services/testutil_test.go
package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stagechase-api/geo"
	"stagechase-api/models"
	"stagechase-api/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Route{},
		&models.Participant{},
		&models.Activity{},
		&models.StageResult{},
		&models.AuditLogEntry{},
	))

	return db
}

func newTestProcessor(db *gorm.DB) *ProcessorService {
	log := zerolog.Nop()

	participantRepo := repositories.NewParticipantRepository(db)
	eligibility := NewEligibilityService(participantRepo, log)
	audit := NewAuditService(repositories.NewAuditRepository(db), log)

	return NewProcessorService(
		repositories.NewChallengeRepository(db),
		repositories.NewRouteRepository(db),
		repositories.NewActivityRepository(db),
		repositories.NewStageResultRepository(db),
		eligibility,
		audit,
		log,
	)
}

func createChallenge(t *testing.T, db *gorm.DB, active bool) *models.Challenge {
	t.Helper()

	challenge := &models.Challenge{
		ID:       uuid.New().String(),
		Name:     "Summer Stage Challenge",
		StartsAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 8, 31, 23, 59, 59, 0, time.UTC),
		IsActive: active,
	}
	require.NoError(t, db.Create(challenge).Error)
	return challenge
}

func createParticipant(t *testing.T, db *gorm.DB, userID, challengeID string, excluded bool) {
	t.Helper()

	require.NoError(t, db.Create(&models.Participant{
		UserID:      userID,
		ChallengeID: challengeID,
		Excluded:    excluded,
	}).Error)
}

func createRoute(t *testing.T, db *gorm.DB, challengeID string, stage int, corridor []geo.Point) *models.Route {
	t.Helper()

	route := &models.Route{
		ID:              uuid.New().String(),
		ChallengeID:     challengeID,
		StageNumber:     stage,
		Corridor:        models.Corridor(corridor),
		BufferMeters:    30,
		MinOverlapRatio: 0.8,
	}
	require.NoError(t, db.Create(route).Error)
	return route
}

func createActivity(t *testing.T, db *gorm.DB, userID, polyline string, startedAt time.Time, elapsedSeconds int) *models.Activity {
	t.Helper()

	activity := &models.Activity{
		ID:             uuid.New().String(),
		UserID:         userID,
		Polyline:       polyline,
		StartedAt:      startedAt,
		ElapsedSeconds: elapsedSeconds,
	}
	require.NoError(t, db.Create(activity).Error)
	return activity
}

// stageCorridor builds vertices on the 47°N parallel, spaced ~76m apart,
// offset east per stage so stage corridors do not overlap.
func stageCorridor(stage, n int) []geo.Point {
	points := make([]geo.Point, n)
	for i := 0; i < n; i++ {
		points[i] = geo.Point{Lat: 47.0, Lng: 8.0 + float64(stage) + float64(i)*0.001}
	}
	return points
}

// tracePolyline encodes a track that retraces the given corridor.
func tracePolyline(corridor []geo.Point) string {
	return geo.EncodePolyline(corridor, PolylinePrecision)
}
