// File: /controllers/activity_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"stagechase-api/geo"
	"stagechase-api/models"
	"stagechase-api/repositories"
	"stagechase-api/services"
	"stagechase-api/utils"
)

// ActivityController is the ingestion surface for GPS track submissions. It
// only stores activities; all matching happens in the batch processor.
type ActivityController struct {
	activityRepo *repositories.ActivityRepository
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{activityRepo: repositories.NewActivityRepository(db)}
}

type CreateActivityRequest struct {
	UserID         string    `json:"user_id" binding:"required"`
	Polyline       string    `json:"polyline" binding:"required"`
	StartedAt      time.Time `json:"started_at" binding:"required"`
	ElapsedSeconds *int      `json:"elapsed_seconds" binding:"required"`
}

func (ac *ActivityController) CreateActivity(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidElapsedSeconds(*req.ElapsedSeconds) {
		utils.SendValidationError(c, "elapsed_seconds must be non-negative")
		return
	}

	// Reject tracks that can never be decoded instead of letting them clog
	// the unprocessed queue.
	if _, err := geo.DecodePolyline(req.Polyline, services.PolylinePrecision); err != nil {
		if errors.Is(err, geo.ErrMalformedPolyline) {
			utils.SendValidationError(c, "polyline is malformed")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to validate polyline")
		return
	}

	activity := models.Activity{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		Polyline:       req.Polyline,
		StartedAt:      req.StartedAt,
		ElapsedSeconds: *req.ElapsedSeconds,
	}

	if err := ac.activityRepo.CreateActivity(&activity); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create activity")
		return
	}

	utils.SendCreated(c, "Activity submitted", activity)
}
