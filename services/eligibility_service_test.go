// File: /services/eligibility_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"stagechase-api/models"
	"stagechase-api/repositories"
)

func TestIsEligibleWithinWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEligibilityService(repositories.NewParticipantRepository(db), zerolog.Nop())
	challenge := createChallenge(t, db, true)
	createParticipant(t, db, "runner-1", challenge.ID, false)

	activity := &models.Activity{
		ID:        "act-1",
		UserID:    "runner-1",
		StartedAt: challenge.StartsAt.Add(24 * time.Hour),
	}

	assert.True(t, svc.IsEligible(activity, challenge))
}

func TestIsEligibleWindowBoundaries(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEligibilityService(repositories.NewParticipantRepository(db), zerolog.Nop())
	challenge := createChallenge(t, db, true)
	createParticipant(t, db, "runner-1", challenge.ID, false)

	cases := []struct {
		name      string
		startedAt time.Time
		eligible  bool
	}{
		{"exactly at starts_at", challenge.StartsAt, true},
		{"exactly at ends_at", challenge.EndsAt, true},
		{"one microsecond after ends_at", challenge.EndsAt.Add(time.Microsecond), false},
		{"one microsecond before starts_at", challenge.StartsAt.Add(-time.Microsecond), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			activity := &models.Activity{ID: "act-1", UserID: "runner-1", StartedAt: tc.startedAt}
			assert.Equal(t, tc.eligible, svc.IsEligible(activity, challenge))
		})
	}
}

func TestIsEligibleNonParticipant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEligibilityService(repositories.NewParticipantRepository(db), zerolog.Nop())
	challenge := createChallenge(t, db, true)

	activity := &models.Activity{
		ID:        "act-1",
		UserID:    "stranger",
		StartedAt: challenge.StartsAt.Add(time.Hour),
	}

	assert.False(t, svc.IsEligible(activity, challenge))
}

func TestIsEligibleExcludedParticipant(t *testing.T) {
	db := setupTestDB(t)
	svc := NewEligibilityService(repositories.NewParticipantRepository(db), zerolog.Nop())
	challenge := createChallenge(t, db, true)
	createParticipant(t, db, "runner-1", challenge.ID, true)

	activity := &models.Activity{
		ID:        "act-1",
		UserID:    "runner-1",
		StartedAt: challenge.StartsAt.Add(time.Hour),
	}

	assert.False(t, svc.IsEligible(activity, challenge))
}
