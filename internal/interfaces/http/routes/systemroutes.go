package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/infrastructure/ratelimit"
	"github.com/smartlock-inc/smartlock/internal/interfaces/http/handlers"
	"github.com/smartlock-inc/smartlock/internal/interfaces/http/middleware"
)

type SystemRouteConfig struct {
	SystemHandler *handlers.SystemHandler
	// RateLimiter is nil when rate limiting is disabled
	RateLimiter *middleware.RateLimitMiddleware
	RootLimit   ratelimit.Limit
	HealthLimit ratelimit.Limit
}

func SetupSystemRoutes(engine *gin.Engine, config *SystemRouteConfig) {
	root := []gin.HandlerFunc{config.SystemHandler.Welcome}
	health := []gin.HandlerFunc{config.SystemHandler.HealthCheck}

	if config.RateLimiter != nil {
		root = append([]gin.HandlerFunc{config.RateLimiter.Limit("root", config.RootLimit)}, root...)
		health = append([]gin.HandlerFunc{config.RateLimiter.Limit("health", config.HealthLimit)}, health...)
	}

	engine.GET("/", root...)
	engine.GET("/health", health...)
}
