// File: /trackfile/gpx.go
package trackfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"stagechase-api/geo"
)

// ErrNoTrackPoints is returned when a track file yields zero usable
// coordinate pairs after malformed waypoints have been skipped.
var ErrNoTrackPoints = errors.New("track file contains no valid track points")

type gpxDocument struct {
	XMLName xml.Name   `xml:"gpx"`
	Tracks  []gpxTrack `xml:"trk"`
	Routes  []gpxRoute `xml:"rte"`
}

type gpxTrack struct {
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxRoute struct {
	Points []gpxPoint `xml:"rtept"`
}

// Attributes are kept as strings so a single bad waypoint can be skipped
// instead of failing the whole document.
type gpxPoint struct {
	Lat string `xml:"lat,attr"`
	Lon string `xml:"lon,attr"`
}

// ParseGPX extracts the ordered waypoint sequence from a GPX document. Track
// points come first, falling back to route points for corridor-only files.
// Waypoints with missing or unparseable coordinates are skipped; parsing only
// fails when no valid waypoints remain.
func ParseGPX(r io.Reader) ([]geo.Point, error) {
	var doc gpxDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse gpx: %w", err)
	}

	var raw []gpxPoint
	for _, trk := range doc.Tracks {
		for _, seg := range trk.Segments {
			raw = append(raw, seg.Points...)
		}
	}
	if len(raw) == 0 {
		for _, rte := range doc.Routes {
			raw = append(raw, rte.Points...)
		}
	}

	points := make([]geo.Point, 0, len(raw))
	for _, p := range raw {
		lat, err := strconv.ParseFloat(p.Lat, 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(p.Lon, 64)
		if err != nil {
			continue
		}
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			continue
		}
		points = append(points, geo.Point{Lat: lat, Lng: lng})
	}

	if len(points) == 0 {
		return nil, ErrNoTrackPoints
	}

	return points, nil
}
