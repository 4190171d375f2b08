// File: /trackfile/fit.go
package trackfile

import (
	"fmt"
	"io"
	"math"

	"github.com/muktihari/fit/decoder"
	"github.com/muktihari/fit/profile/filedef"

	"stagechase-api/geo"
)

// ParseFIT extracts the ordered position sequence from a FIT activity file.
// Records without a GPS fix decode to NaN coordinates and are skipped, same
// policy as malformed GPX waypoints.
func ParseFIT(r io.Reader) ([]geo.Point, error) {
	dec := decoder.New(r)

	f, err := dec.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to parse fit: %w", err)
	}

	activity := filedef.NewActivity(f.Messages...)

	points := make([]geo.Point, 0, len(activity.Records))
	for _, rec := range activity.Records {
		lat := rec.PositionLatDegrees()
		lng := rec.PositionLongDegrees()

		if math.IsNaN(lat) || math.IsNaN(lng) {
			continue
		}
		points = append(points, geo.Point{Lat: lat, Lng: lng})
	}

	if len(points) == 0 {
		return nil, ErrNoTrackPoints
	}

	return points, nil
}
