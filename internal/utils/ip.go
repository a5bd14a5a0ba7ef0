package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/osa911/giraffecloud-portal/internal/api/constants"
)

// ClientIP returns the caller's address. X-Forwarded-For and X-Real-IP are
// honoured only when the peer is one of the engine's trusted proxies
// (gin.Engine.SetTrustedProxies); otherwise the socket address is used.
func ClientIP(c *gin.Context) string {
	return c.ClientIP()
}

// RequestID returns the id assigned by the request id middleware
func RequestID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyRequestID)
}
