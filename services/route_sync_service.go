// File: /services/route_sync_service.go
package services

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"stagechase-api/geo"
	"stagechase-api/models"
	"stagechase-api/repositories"
	"stagechase-api/trackfile"
)

// ErrNoGeometryProvided is returned when a sync request carries zero
// corridors.
var ErrNoGeometryProvided = errors.New("no geometry provided")

// StageFile is one stage's corridor source in a sync request.
type StageFile struct {
	StageNumber int
	Format      string // "gpx" (default) or "fit"
	Content     []byte
}

// RouteSyncService republishes a challenge's stage routes from freshly parsed
// track-file geometry. Supplied stages are replaced in one transaction;
// stages not supplied are left alone, so callers wanting a full replacement
// must send every stage.
type RouteSyncService struct {
	routeRepo     *repositories.RouteRepository
	challengeRepo *repositories.ChallengeRepository

	defaultBufferMeters    float64
	defaultMinOverlapRatio float64

	logger zerolog.Logger
}

func NewRouteSyncService(
	routeRepo *repositories.RouteRepository,
	challengeRepo *repositories.ChallengeRepository,
	defaultBufferMeters, defaultMinOverlapRatio float64,
	logger zerolog.Logger,
) *RouteSyncService {
	return &RouteSyncService{
		routeRepo:              routeRepo,
		challengeRepo:          challengeRepo,
		defaultBufferMeters:    defaultBufferMeters,
		defaultMinOverlapRatio: defaultMinOverlapRatio,
		logger:                 logger,
	}
}

// SyncRoutes replaces the supplied stage corridors of a challenge. Every
// corridor must have at least two vertices.
func (s *RouteSyncService) SyncRoutes(challengeID string, corridors map[int][]geo.Point) (int, error) {
	if len(corridors) == 0 {
		return 0, ErrNoGeometryProvided
	}

	if _, err := s.challengeRepo.GetChallenge(challengeID); err != nil {
		return 0, fmt.Errorf("failed to load challenge %s: %w", challengeID, err)
	}

	stages := make([]int, 0, len(corridors))
	for stage := range corridors {
		stages = append(stages, stage)
	}
	sort.Ints(stages)

	routes := make([]models.Route, 0, len(stages))
	for _, stage := range stages {
		corridor := corridors[stage]
		if len(corridor) < 2 {
			return 0, fmt.Errorf("stage %d: %w", stage, geo.ErrMalformedRoute)
		}

		routes = append(routes, models.Route{
			ID:              uuid.New().String(),
			StageNumber:     stage,
			Name:            fmt.Sprintf("Stage %d", stage),
			Corridor:        models.Corridor(corridor),
			BufferMeters:    s.defaultBufferMeters,
			MinOverlapRatio: s.defaultMinOverlapRatio,
		})
	}

	if err := s.routeRepo.ReplaceStages(challengeID, routes); err != nil {
		return 0, fmt.Errorf("failed to replace stage routes: %w", err)
	}

	s.logger.Info().
		Str("challenge_id", challengeID).
		Int("synced", len(routes)).
		Msg("stage routes synced")

	return len(routes), nil
}

// SyncFromFiles parses raw GPX or FIT payloads into corridors and syncs them.
func (s *RouteSyncService) SyncFromFiles(challengeID string, files []StageFile) (int, error) {
	if len(files) == 0 {
		return 0, ErrNoGeometryProvided
	}

	corridors := make(map[int][]geo.Point, len(files))
	for _, file := range files {
		var (
			points []geo.Point
			err    error
		)

		switch file.Format {
		case "fit":
			points, err = trackfile.ParseFIT(bytes.NewReader(file.Content))
		case "", "gpx":
			points, err = trackfile.ParseGPX(bytes.NewReader(file.Content))
		default:
			return 0, fmt.Errorf("stage %d: unsupported track file format %q", file.StageNumber, file.Format)
		}
		if err != nil {
			return 0, fmt.Errorf("stage %d: %w", file.StageNumber, err)
		}

		corridors[file.StageNumber] = points
	}

	return s.SyncRoutes(challengeID, corridors)
}
