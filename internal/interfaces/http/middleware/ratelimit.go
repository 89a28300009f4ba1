package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/smartlock-inc/smartlock/internal/infrastructure/ratelimit"
	"github.com/smartlock-inc/smartlock/internal/shared/logger"
	"github.com/smartlock-inc/smartlock/internal/shared/utils"
)

// RateLimitMiddleware enforces per client IP budgets on individual routes.
type RateLimitMiddleware struct {
	limiter    ratelimit.RateLimiter
	rejections *prometheus.CounterVec
	logger     logger.Interface
}

// NewRateLimitMiddleware builds the middleware. rejections may be nil when
// metrics are disabled.
func NewRateLimitMiddleware(limiter ratelimit.RateLimiter, rejections *prometheus.CounterVec, logger logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter:    limiter,
		rejections: rejections,
		logger:     logger,
	}
}

// Limit returns a handler allowing limit requests per client IP. When the
// limiter store is unreachable the request is let through.
func (m *RateLimitMiddleware) Limit(name string, limit ratelimit.Limit) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()

		allowed, err := m.limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			m.logger.WithContext(c.Request.Context()).Warnw("rate limiter unavailable, allowing request",
				"limit", name,
				"client_ip", c.ClientIP(),
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			if m.rejections != nil {
				m.rejections.WithLabelValues(c.FullPath()).Inc()
			}
			m.logger.WithContext(c.Request.Context()).Infow("rate limit exceeded",
				"limit", name,
				"client_ip", c.ClientIP())
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
