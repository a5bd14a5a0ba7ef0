package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/osa911/giraffecloud-portal/internal/api/dto/common"
	"github.com/osa911/giraffecloud-portal/internal/logging"
	"github.com/osa911/giraffecloud-portal/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 envelope. The stack goes to the
// log only.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logging.GetGlobalLogger().Error("[PANIC] %s %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					utils.ClientIP(c),
					utils.RequestID(c),
					err,
					debug.Stack(),
				)

				utils.HandleError(c, http.StatusInternalServerError, common.ErrCodeInternalServer, "Internal server error", nil)
			}
		}()

		c.Next()
	}
}
