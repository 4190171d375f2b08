// File: /geo/match.go
package geo

import (
	"errors"
	"math"
)

// ErrMalformedRoute is returned when a route corridor has fewer than two
// vertices and therefore has no segments to match against.
var ErrMalformedRoute = errors.New("malformed route: corridor must have at least 2 vertices")

const earthRadiusMeters = 6371000.0

// MatchResult is the outcome of matching a track against a buffered corridor.
type MatchResult struct {
	Matched      bool    `json:"matched"`
	OverlapRatio float64 `json:"overlap_ratio"`
}

// MatchTrack tests how much of a GPS track falls inside the buffered corridor
// around a route and compares that fraction against minOverlapRatio.
//
// Both inputs are projected onto a local equirectangular plane centered on the
// corridor's bounding box, which keeps meter-scale distances accurate at
// buffer widths of tens of meters. The overlap ratio counts track points whose
// distance to the nearest corridor segment is at most bufferMeters, divided by
// the total number of track points. The function is pure: identical inputs
// always produce identical results.
func MatchTrack(track, corridor []Point, bufferMeters, minOverlapRatio float64) (MatchResult, error) {
	if len(corridor) < 2 {
		return MatchResult{}, ErrMalformedRoute
	}
	if len(track) == 0 {
		return MatchResult{Matched: false, OverlapRatio: 0}, nil
	}

	proj := newProjection(corridor)

	corridorXY := make([]planarPoint, len(corridor))
	for i, p := range corridor {
		corridorXY[i] = proj.toPlane(p)
	}

	inside := 0
	for _, p := range track {
		if withinBuffer(proj.toPlane(p), corridorXY, bufferMeters) {
			inside++
		}
	}

	ratio := float64(inside) / float64(len(track))

	return MatchResult{
		Matched:      ratio >= minOverlapRatio,
		OverlapRatio: ratio,
	}, nil
}

type planarPoint struct {
	x float64
	y float64
}

// projection is a local equirectangular approximation. Good to within a few
// meters for extents of a few tens of kilometers, which covers any single
// stage route.
type projection struct {
	originLat float64
	originLng float64
	cosLat    float64
}

func newProjection(corridor []Point) projection {
	minLat, maxLat := corridor[0].Lat, corridor[0].Lat
	minLng, maxLng := corridor[0].Lng, corridor[0].Lng

	for _, p := range corridor[1:] {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
		minLng = math.Min(minLng, p.Lng)
		maxLng = math.Max(maxLng, p.Lng)
	}

	originLat := (minLat + maxLat) / 2
	originLng := (minLng + maxLng) / 2

	return projection{
		originLat: originLat,
		originLng: originLng,
		cosLat:    math.Cos(originLat * math.Pi / 180),
	}
}

func (pr projection) toPlane(p Point) planarPoint {
	return planarPoint{
		x: (p.Lng - pr.originLng) * math.Pi / 180 * earthRadiusMeters * pr.cosLat,
		y: (p.Lat - pr.originLat) * math.Pi / 180 * earthRadiusMeters,
	}
}

// withinBuffer reports whether p lies within bufferMeters of any corridor
// segment, i.e. inside the tolerance tube around the route.
func withinBuffer(p planarPoint, corridor []planarPoint, bufferMeters float64) bool {
	for i := 0; i < len(corridor)-1; i++ {
		if pointSegmentDistance(p, corridor[i], corridor[i+1]) <= bufferMeters {
			return true
		}
	}
	return false
}

func pointSegmentDistance(p, a, b planarPoint) float64 {
	dx := b.x - a.x
	dy := b.y - a.y

	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		// Degenerate segment, treat as a point.
		return math.Hypot(p.x-a.x, p.y-a.y)
	}

	t := ((p.x-a.x)*dx + (p.y-a.y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	return math.Hypot(p.x-(a.x+t*dx), p.y-(a.y+t*dy))
}
