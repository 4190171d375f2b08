// File: /repositories/stage_result_repository_test.go
package repositories

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stagechase-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.StageResult{}))
	return db
}

func TestUpsertBestTimeCreatesAndImproves(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStageResultRepository(db)

	completedAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	improved, err := repo.UpsertBestTime("runner-1", "challenge-1", 1, 4000, completedAt)
	require.NoError(t, err)
	assert.True(t, improved)

	// Strictly smaller time wins.
	laterRun := completedAt.Add(24 * time.Hour)
	improved, err = repo.UpsertBestTime("runner-1", "challenge-1", 1, 3500, laterRun)
	require.NoError(t, err)
	assert.True(t, improved)

	result, err := repo.GetResult("runner-1", "challenge-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 3500, result.BestTimeSeconds)
	assert.True(t, result.CompletedAt.Equal(laterRun))
}

func TestUpsertBestTimeIgnoresSlowerAndEqual(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStageResultRepository(db)

	completedAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	_, err := repo.UpsertBestTime("runner-1", "challenge-1", 1, 3500, completedAt)
	require.NoError(t, err)

	improved, err := repo.UpsertBestTime("runner-1", "challenge-1", 1, 3500, completedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, improved)

	improved, err = repo.UpsertBestTime("runner-1", "challenge-1", 1, 4000, completedAt.Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, improved)

	result, err := repo.GetResult("runner-1", "challenge-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 3500, result.BestTimeSeconds)
	assert.True(t, result.CompletedAt.Equal(completedAt))
}

func TestUpsertBestTimeKeysAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStageResultRepository(db)

	completedAt := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	_, err := repo.UpsertBestTime("runner-1", "challenge-1", 1, 4000, completedAt)
	require.NoError(t, err)
	_, err = repo.UpsertBestTime("runner-1", "challenge-1", 2, 5000, completedAt)
	require.NoError(t, err)
	_, err = repo.UpsertBestTime("runner-2", "challenge-1", 1, 3000, completedAt)
	require.NoError(t, err)

	var count int64
	db.Model(&models.StageResult{}).Count(&count)
	assert.EqualValues(t, 3, count)
}
