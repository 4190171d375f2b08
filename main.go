// File: /main.go
package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"stagechase-api/config"
	"stagechase-api/database"
	"stagechase-api/jobs"
	"stagechase-api/repositories"
	"stagechase-api/routes"
	"stagechase-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	// Repositories
	challengeRepo := repositories.NewChallengeRepository(db)
	routeRepo := repositories.NewRouteRepository(db)
	participantRepo := repositories.NewParticipantRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	resultRepo := repositories.NewStageResultRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	// Services
	eligibility := services.NewEligibilityService(participantRepo, logger)
	audit := services.NewAuditService(auditRepo, logger)
	matchService := services.NewMatchService(routeRepo)
	processor := services.NewProcessorService(challengeRepo, routeRepo, activityRepo, resultRepo, eligibility, audit, logger)
	syncService := services.NewRouteSyncService(routeRepo, challengeRepo, cfg.DefaultBufferMeters, cfg.DefaultMinOverlapRatio, logger)

	// Start the periodic matching pipeline
	processingJob := jobs.NewActivityProcessingJob(processor, time.Duration(cfg.ProcessIntervalSeconds)*time.Second, logger)
	processingJob.Start()
	defer processingJob.Stop()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, matchService, processor, syncService)

	// Start server
	logger.Info().Str("port", cfg.Port).Msg("starting StageChase API server")

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

func newLogger(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}).Level(parsed).With().Timestamp().Logger()
}
