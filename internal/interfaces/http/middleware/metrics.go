package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smartlock-inc/smartlock/internal/infrastructure/metrics"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts, latency and in-flight requests labelled
// by route template rather than raw path.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		method := c.Request.Method

		inProgress := m.RequestInProgress.WithLabelValues(method, path)
		inProgress.Inc()
		defer inProgress.Dec()

		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		m.RequestCounter.WithLabelValues(status, method, path).Inc()
		m.RequestDuration.WithLabelValues(status, method, path).Observe(time.Since(start).Seconds())
	}
}
