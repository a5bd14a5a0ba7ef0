package middleware

import (
	"time"

	"github.com/osa911/giraffecloud-portal/internal/logging"
	"github.com/osa911/giraffecloud-portal/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger is a middleware that logs request information.
// When disabled it is a no-op.
func RequestLogger(logger *logging.Logger, enabled bool) gin.HandlerFunc {
	logger.Debug("RequestLogger middleware initialized (enabled=%v)", enabled)

	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.ClientIP(c),
			utils.RequestID(c),
			c.Writer.Status(),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
