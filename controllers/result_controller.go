// File: /controllers/result_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stagechase-api/repositories"
	"stagechase-api/utils"
)

type ResultController struct {
	resultRepo *repositories.StageResultRepository
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{resultRepo: repositories.NewStageResultRepository(db)}
}

// GetUserResults returns one participant's stage results for a challenge.
// Raw rows only; leaderboard aggregation lives elsewhere.
func (rc *ResultController) GetUserResults(c *gin.Context) {
	challengeID := c.Param("id")
	userID := c.Param("user_id")

	results, err := rc.resultRepo.GetResultsForUser(userID, challengeID)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch results")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"challenge_id": challengeID,
		"user_id":      userID,
		"results":      results,
	})
}
