// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"stagechase-api/config"
	"stagechase-api/controllers"
	"stagechase-api/middleware"
	"stagechase-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, matchService *services.MatchService, processor *services.ProcessorService, syncService *services.RouteSyncService) {
	// Controllers
	activityController := controllers.NewActivityController(db)
	matchingController := controllers.NewMatchingController(matchService, processor)
	routeSyncController := controllers.NewRouteSyncController(syncService)
	resultController := controllers.NewResultController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.SecurityHeaders())
	v1.Use(middleware.RateLimit(120, 20))

	// Ingestion and matching (called by the sync collaborator)
	v1.POST("/activities", activityController.CreateActivity)
	v1.POST("/matching/match", matchingController.MatchActivity)
	v1.POST("/matching/debug", matchingController.DebugMatch)

	// Results for one participant
	v1.GET("/challenges/:id/results/:user_id", resultController.GetUserResults)

	// Admin routes
	admin := v1.Group("/")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		admin.PUT("/challenges/:id/routes", routeSyncController.SyncRoutes)
		admin.POST("/matching/run", matchingController.RunProcessor)
	}
}

// SetupCORS returns the CORS middleware used by the API.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
