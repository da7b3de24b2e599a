package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/launchos/curve-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth required)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)

	v1 := router.Group("/api/v1")
	{
		curves := v1.Group("/curves")
		{
			// Read endpoints
			curves.GET("", handler.ListCurves)
			curves.GET("/:id", handler.GetCurve)
			curves.GET("/:id/holders", handler.ListHolders)
			curves.GET("/:id/events", handler.ListEvents)
			curves.GET("/:id/stats", handler.GetStats)
			curves.GET("/:id/can-launch", handler.CanLaunch)
			curves.GET("/:id/launch", handler.GetLaunchAttempt)
			curves.GET("/:id/snapshot", handler.GetSnapshot)

			// Pricing is read-only even though it is a POST
			curves.POST("/:id/quote", handler.Quote)

			// Mutating endpoints require authentication
			curves.POST("", auth, handler.CreateCurve)
			curves.POST("/:id/buy", auth, handler.Buy)
			curves.POST("/:id/sell", auth, handler.Sell)
			curves.POST("/:id/freeze", auth, handler.Freeze)
			curves.POST("/:id/unfreeze", auth, handler.Unfreeze)
			curves.POST("/:id/utility", auth, handler.MarkUtility)
			curves.POST("/:id/launch", auth, handler.TriggerLaunch)
			curves.POST("/:id/flash-reward", auth, handler.TriggerFlashReward)
		}

		wallets := v1.Group("/wallets")
		{
			wallets.GET("/:wallet/hall-pass", handler.GetHallPass)
			wallets.GET("/:wallet/streak", handler.GetStreak)
			wallets.POST("/:wallet/interactions", auth, handler.RecordInteraction)
		}
	}
}
