// File: /services/match_service.go
package services

import (
	"fmt"

	"stagechase-api/geo"
	"stagechase-api/repositories"
)

// MatchService answers whether a single encoded track satisfies a single
// stored route. The batch processor uses the same geometry code directly;
// this service backs the external matching invocation and its debug variant.
type MatchService struct {
	routeRepo *repositories.RouteRepository
}

func NewMatchService(routeRepo *repositories.RouteRepository) *MatchService {
	return &MatchService{routeRepo: routeRepo}
}

// PolylinePrecision is the coordinate scale used for every encoded track in
// the system (5 decimal digits, ~1.1m resolution).
const PolylinePrecision = 5

// MatchActivityToRoute reports whether the encoded track satisfies the route.
func (s *MatchService) MatchActivityToRoute(polyline, routeID string) (bool, error) {
	result, err := s.MatchActivityToRouteDebug(polyline, routeID)
	if err != nil {
		return false, err
	}
	return result.Matched, nil
}

// MatchActivityToRouteDebug is the inspection variant: it returns the overlap
// ratio alongside the verdict.
func (s *MatchService) MatchActivityToRouteDebug(polyline, routeID string) (geo.MatchResult, error) {
	route, err := s.routeRepo.GetRoute(routeID)
	if err != nil {
		return geo.MatchResult{}, fmt.Errorf("failed to load route %s: %w", routeID, err)
	}

	track, err := geo.DecodePolyline(polyline, PolylinePrecision)
	if err != nil {
		return geo.MatchResult{}, err
	}

	return geo.MatchTrack(track, route.Corridor, route.BufferMeters, route.MinOverlapRatio)
}
