package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/smartlock-inc/smartlock/docs"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/config"
	"github.com/smartlock-inc/smartlock/internal/infrastructure/ratelimit"
	"github.com/smartlock-inc/smartlock/internal/interfaces/http/middleware"
	"github.com/smartlock-inc/smartlock/internal/interfaces/http/routes"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

// Router owns the gin engine and the container behind it.
type Router struct {
	*Container
	engine *gin.Engine
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface, opts ...Option) (*Router, error) {
	container, err := NewContainer(gdb, cfg, log, opts...)
	if err != nil {
		return nil, err
	}

	return &Router{
		Container: container,
		engine:    gin.New(),
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log.Named("http")))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	if r.metrics != nil {
		r.engine.Use(middleware.Metrics(r.metrics))
		r.engine.GET(r.metricsPath(), gin.WrapH(r.metrics.Handler()))
	}

	if r.cfg.Server.Swagger {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		SystemHandler: r.hdlrs.systemHandler,
		RateLimiter:   r.rateLimiter,
		RootLimit:     ratelimit.PerMinute(r.cfg.RateLimit.RootPerMinute),
		HealthLimit:   ratelimit.PerMinute(r.cfg.RateLimit.HealthPerMinute),
	})

	routes.SetupBadgeRoutes(r.engine, &routes.BadgeRouteConfig{
		BadgeHandler:       r.hdlrs.badgeHandler,
		IdentityMiddleware: r.identityMiddleware,
	})

	routes.SetupPermissionRoutes(r.engine, &routes.PermissionRouteConfig{
		PermissionHandler: r.hdlrs.permissionHandler,
	})

	routes.SetupInventoryRoutes(r.engine, &routes.InventoryRouteConfig{
		CategoryHandler: r.hdlrs.categoryHandler,
		ItemHandler:     r.hdlrs.itemHandler,
		LockerHandler:   r.hdlrs.lockerHandler,
		StockHandler:    r.hdlrs.stockHandler,
	})
}

func (r *Router) metricsPath() string {
	if r.cfg.Metrics.Path == "" {
		return "/metrics"
	}
	return r.cfg.Metrics.Path
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
