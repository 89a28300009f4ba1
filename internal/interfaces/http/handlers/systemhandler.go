package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/shared/constants"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
)

const healthCheckTimeout = 3 * time.Second

// DatabasePinger reports whether the store is reachable.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	db     DatabasePinger
	logger logger.Interface
}

func NewSystemHandler(db DatabasePinger, logger logger.Interface) *SystemHandler {
	return &SystemHandler{
		db:     db,
		logger: logger,
	}
}

// Welcome handles GET /
func (h *SystemHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the " + constants.ServiceName,
		"version": constants.ServiceVersion,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles GET /health
//
//	@Summary	Service health
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	map[string]string
//	@Router		/health [get]
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.WithContext(ctx).Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"service":  constants.ServiceName,
			"version":  constants.ServiceVersion,
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  constants.ServiceName,
		"version":  constants.ServiceVersion,
		"database": "connected",
	})
}
