// File: /controllers/route_sync_controller.go
package controllers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stagechase-api/geo"
	"stagechase-api/services"
	"stagechase-api/trackfile"
	"stagechase-api/utils"
)

type RouteSyncController struct {
	syncService *services.RouteSyncService
}

func NewRouteSyncController(syncService *services.RouteSyncService) *RouteSyncController {
	return &RouteSyncController{syncService: syncService}
}

type SyncRoutesRequest struct {
	Stages []SyncStageRequest `json:"stages" binding:"required"`
}

// SyncStageRequest carries one stage's corridor source: format is "gpx"
// (default) or "fit"; GPX content is the raw XML text, FIT content is base64.
type SyncStageRequest struct {
	StageNumber int    `json:"stage_number" binding:"required"`
	Format      string `json:"format"`
	Content     string `json:"content" binding:"required"`
}

// SyncRoutes replaces the supplied stage routes of a challenge from track
// file payloads.
func (rc *RouteSyncController) SyncRoutes(c *gin.Context) {
	challengeID := c.Param("id")

	var req SyncRoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files := make([]services.StageFile, 0, len(req.Stages))
	for _, stage := range req.Stages {
		if !utils.IsValidStageNumber(stage.StageNumber) {
			utils.SendValidationError(c, "stage_number must be positive")
			return
		}

		content := []byte(stage.Content)
		if stage.Format == "fit" {
			decoded, err := base64.StdEncoding.DecodeString(stage.Content)
			if err != nil {
				utils.SendValidationError(c, "fit content must be base64 encoded")
				return
			}
			content = decoded
		}

		files = append(files, services.StageFile{
			StageNumber: stage.StageNumber,
			Format:      stage.Format,
			Content:     content,
		})
	}

	synced, err := rc.syncService.SyncFromFiles(challengeID, files)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoGeometryProvided):
			utils.SendValidationError(c, "no geometry provided")
		case errors.Is(err, trackfile.ErrNoTrackPoints):
			utils.SendValidationError(c, "track file contains no valid track points")
		case errors.Is(err, geo.ErrMalformedRoute):
			utils.SendValidationError(c, "corridor must have at least 2 vertices")
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.SendError(c, http.StatusNotFound, "Challenge not found")
		default:
			utils.SendError(c, http.StatusInternalServerError, "Failed to sync routes")
		}
		return
	}

	utils.SendSuccess(c, "Routes synced", gin.H{"synced_count": synced})
}
