package middleware

import (
	"strconv"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per route template.
// Unmatched routes use "<no-route>" so arbitrary paths cannot inflate label
// cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "<no-route>"
		}

		method := c.Request.Method
		telemetry.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		telemetry.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
