// File: /database/database.go
package database

import (
	"fmt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"stagechase-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.Route{},
		&models.Participant{},
		&models.Activity{},
		&models.StageResult{},
		&models.AuditLogEntry{},
	)

	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add custom indexes for better query performance
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// The unprocessed queue is scanned every run; keep it cheap.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_activities_unprocessed ON activities(processed_at, started_at)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for activities: %v\n", err)
	}

	// Leaderboard aggregation reads results by (challenge, stage).
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_stage_results_challenge_stage ON stage_results(challenge_id, stage_number, best_time_seconds)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for stage_results: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audit_log_entries_actor_created ON audit_log_entries(actor_id, created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for audit_log_entries: %v\n", err)
	}

	return nil
}
