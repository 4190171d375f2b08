// File: /geo/match_test.go
package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corridorAlongParallel builds n vertices on the 47°N parallel, spaced
// ~76m apart in longitude.
func corridorAlongParallel(n int) []Point {
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		points[i] = Point{Lat: 47.0, Lng: 8.0 + float64(i)*0.001}
	}
	return points
}

func TestMatchTrackFullTrace(t *testing.T) {
	corridor := corridorAlongParallel(100)

	// Track retraces the corridor exactly.
	track := make([]Point, len(corridor))
	copy(track, corridor)

	result, err := MatchTrack(track, corridor, 30, 0.8)
	require.NoError(t, err)

	assert.True(t, result.Matched)
	assert.InDelta(t, 1.0, result.OverlapRatio, 1e-9)
}

func TestMatchTrackHalfOverlap(t *testing.T) {
	corridor := corridorAlongParallel(100)

	// Five points on the corridor, five points ~1.1km north of it.
	track := make([]Point, 0, 10)
	for i := 0; i < 5; i++ {
		track = append(track, Point{Lat: 47.0, Lng: 8.0 + float64(i)*0.001})
	}
	for i := 0; i < 5; i++ {
		track = append(track, Point{Lat: 47.01, Lng: 8.0 + float64(i)*0.001})
	}

	result, err := MatchTrack(track, corridor, 30, 0.8)
	require.NoError(t, err)

	assert.False(t, result.Matched)
	assert.InDelta(t, 0.5, result.OverlapRatio, 1e-9)
}

func TestMatchTrackBufferBoundary(t *testing.T) {
	corridor := corridorAlongParallel(10)

	// ~20m north of the corridor line: inside a 30m buffer, outside a 10m one.
	offset := 20.0 / 111320.0
	track := []Point{{Lat: 47.0 + offset, Lng: 8.002}}

	inside, err := MatchTrack(track, corridor, 30, 0.5)
	require.NoError(t, err)
	assert.True(t, inside.Matched)
	assert.InDelta(t, 1.0, inside.OverlapRatio, 1e-9)

	outside, err := MatchTrack(track, corridor, 10, 0.5)
	require.NoError(t, err)
	assert.False(t, outside.Matched)
	assert.InDelta(t, 0.0, outside.OverlapRatio, 1e-9)
}

func TestMatchTrackThresholdIsInclusive(t *testing.T) {
	corridor := corridorAlongParallel(10)

	// Two points on the corridor, two far away: ratio exactly 0.5.
	track := []Point{
		{Lat: 47.0, Lng: 8.001},
		{Lat: 47.0, Lng: 8.002},
		{Lat: 47.05, Lng: 8.001},
		{Lat: 47.05, Lng: 8.002},
	}

	result, err := MatchTrack(track, corridor, 30, 0.5)
	require.NoError(t, err)
	assert.True(t, result.Matched)
}

func TestMatchTrackEmptyTrack(t *testing.T) {
	corridor := corridorAlongParallel(10)

	result, err := MatchTrack(nil, corridor, 30, 0.8)
	require.NoError(t, err)

	assert.False(t, result.Matched)
	assert.Equal(t, 0.0, result.OverlapRatio)
}

func TestMatchTrackMalformedCorridor(t *testing.T) {
	track := []Point{{Lat: 47.0, Lng: 8.0}}

	_, err := MatchTrack(track, nil, 30, 0.8)
	assert.ErrorIs(t, err, ErrMalformedRoute)

	_, err = MatchTrack(track, []Point{{Lat: 47.0, Lng: 8.0}}, 30, 0.8)
	assert.ErrorIs(t, err, ErrMalformedRoute)
}

func TestMatchTrackDeterministic(t *testing.T) {
	corridor := corridorAlongParallel(50)
	track := []Point{
		{Lat: 47.0001, Lng: 8.0105},
		{Lat: 47.0002, Lng: 8.0204},
		{Lat: 47.02, Lng: 8.03},
	}

	first, err := MatchTrack(track, corridor, 25, 0.6)
	require.NoError(t, err)

	second, err := MatchTrack(track, corridor, 25, 0.6)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
