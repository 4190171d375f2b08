// File: /repositories/route_repository.go
package repositories

import (
	"time"

	"gorm.io/gorm"

	"stagechase-api/models"
)

type RouteRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

// GetRoute returns a route by ID.
func (r *RouteRepository) GetRoute(id string) (*models.Route, error) {
	var route models.Route
	err := r.db.Where("id = ?", id).First(&route).Error
	if err != nil {
		return nil, err
	}
	return &route, nil
}

// GetRoutesForChallenge returns all stage routes of a challenge in ascending
// stage order. The processor iterates them in exactly this order.
func (r *RouteRepository) GetRoutesForChallenge(challengeID string) ([]models.Route, error) {
	var routes []models.Route
	err := r.db.Where("challenge_id = ?", challengeID).
		Order("stage_number ASC").
		Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

// ReplaceStages swaps out the supplied stage routes of a challenge in one
// transaction. Stages not present in the input are left untouched.
func (r *RouteRepository) ReplaceStages(challengeID string, routes []models.Route) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range routes {
			if err := tx.Where("challenge_id = ? AND stage_number = ?", challengeID, routes[i].StageNumber).
				Delete(&models.Route{}).Error; err != nil {
				return err
			}

			routes[i].ChallengeID = challengeID
			routes[i].CreatedAt = time.Now()
			routes[i].UpdatedAt = time.Now()

			if err := tx.Create(&routes[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
