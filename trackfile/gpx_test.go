// File: /trackfile/gpx_test.go
package trackfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="StageChase">
  <trk>
    <trkseg>
      <trkpt lat="47.36667" lon="8.55"><ele>408</ele></trkpt>
      <trkpt lat="47.36700" lon="8.55100"></trkpt>
      <trkpt lat="47.36750" lon="8.55200"></trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseGPXTrackPoints(t *testing.T) {
	points, err := ParseGPX(strings.NewReader(sampleGPX))
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 47.36667, points[0].Lat, 1e-9)
	assert.InDelta(t, 8.55, points[0].Lng, 1e-9)
	assert.InDelta(t, 47.3675, points[2].Lat, 1e-9)
}

func TestParseGPXSkipsMalformedWaypoints(t *testing.T) {
	gpx := `<?xml version="1.0"?>
<gpx version="1.1">
  <trk>
    <trkseg>
      <trkpt lat="47.0" lon="8.0"></trkpt>
      <trkpt lat="not-a-number" lon="8.001"></trkpt>
      <trkpt lon="8.002"></trkpt>
      <trkpt lat="95.0" lon="8.003"></trkpt>
      <trkpt lat="47.001" lon="8.004"></trkpt>
    </trkseg>
  </trk>
</gpx>`

	points, err := ParseGPX(strings.NewReader(gpx))
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.InDelta(t, 47.0, points[0].Lat, 1e-9)
	assert.InDelta(t, 47.001, points[1].Lat, 1e-9)
}

func TestParseGPXRoutePointFallback(t *testing.T) {
	gpx := `<?xml version="1.0"?>
<gpx version="1.1">
  <rte>
    <rtept lat="47.0" lon="8.0"></rtept>
    <rtept lat="47.001" lon="8.001"></rtept>
  </rte>
</gpx>`

	points, err := ParseGPX(strings.NewReader(gpx))
	require.NoError(t, err)
	assert.Len(t, points, 2)
}

func TestParseGPXNoValidWaypoints(t *testing.T) {
	gpx := `<?xml version="1.0"?>
<gpx version="1.1">
  <trk>
    <trkseg>
      <trkpt lat="oops" lon="8.0"></trkpt>
    </trkseg>
  </trk>
</gpx>`

	points, err := ParseGPX(strings.NewReader(gpx))
	assert.ErrorIs(t, err, ErrNoTrackPoints)
	assert.Nil(t, points)
}

func TestParseGPXInvalidXML(t *testing.T) {
	_, err := ParseGPX(strings.NewReader("not xml at all"))
	assert.Error(t, err)
}
