// File: /controllers/matching_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stagechase-api/geo"
	"stagechase-api/services"
	"stagechase-api/utils"
)

type MatchingController struct {
	matchService *services.MatchService
	processor    *services.ProcessorService
}

func NewMatchingController(matchService *services.MatchService, processor *services.ProcessorService) *MatchingController {
	return &MatchingController{
		matchService: matchService,
		processor:    processor,
	}
}

type MatchRequest struct {
	Polyline string `json:"polyline" binding:"required"`
	RouteID  string `json:"route_id" binding:"required"`
}

// MatchActivity answers whether a track satisfies a route.
func (mc *MatchingController) MatchActivity(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matched, err := mc.matchService.MatchActivityToRoute(req.Polyline, req.RouteID)
	if err != nil {
		mc.sendMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matched": matched})
}

// DebugMatch is the inspection variant: verdict plus overlap ratio.
func (mc *MatchingController) DebugMatch(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := mc.matchService.MatchActivityToRouteDebug(req.Polyline, req.RouteID)
	if err != nil {
		mc.sendMatchError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matched":       result.Matched,
		"overlap_ratio": result.OverlapRatio,
	})
}

// RunProcessor triggers one batch pass and returns its counts. The periodic
// job calls the same service; this endpoint exists for operators.
func (mc *MatchingController) RunProcessor(c *gin.Context) {
	report, err := mc.processor.Process()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Processing run failed")
		return
	}

	utils.SendSuccess(c, "Processing run complete", report)
}

func (mc *MatchingController) sendMatchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.SendError(c, http.StatusNotFound, "Route not found")
	case errors.Is(err, geo.ErrMalformedPolyline):
		utils.SendValidationError(c, "polyline is malformed")
	case errors.Is(err, geo.ErrMalformedRoute):
		utils.SendValidationError(c, "route corridor is malformed")
	default:
		utils.SendError(c, http.StatusInternalServerError, "Failed to match activity")
	}
}
