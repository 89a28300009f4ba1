package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/interfaces/http/handlers"
	"github.com/smartlock-inc/smartlock/internal/interfaces/http/middleware"
)

type BadgeRouteConfig struct {
	BadgeHandler       *handlers.BadgeHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

func SetupBadgeRoutes(engine *gin.Engine, config *BadgeRouteConfig) {
	badge := engine.Group("/badge")
	{
		// Called by the NFC reader with its client-credentials token
		badge.POST("/scan",
			config.IdentityMiddleware.RequireScanner(),
			config.BadgeHandler.ScanCard)

		badge.GET("/pending",
			config.IdentityMiddleware.RequireAdmin(),
			config.BadgeHandler.ListPendingCards)
		badge.PATCH("/:card_id/assign",
			config.IdentityMiddleware.RequireAdmin(),
			config.BadgeHandler.AssignCard)
	}
}
