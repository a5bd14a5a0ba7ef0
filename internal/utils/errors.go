package utils

import (
	"github.com/osa911/giraffecloud-portal/internal/api/dto/common"
	"github.com/osa911/giraffecloud-portal/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError is a utility function for consistent error handling across the API.
// Error details are only exposed outside release mode.
func HandleAPIError(c *gin.Context, err error, defaultStatus int, defaultCode common.ErrorCode, defaultMessage string) {
	logger := logging.GetGlobalLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		ClientIP(c),
		defaultStatus,
		defaultMessage,
		err,
	)

	// In production, don't expose error details
	var errorDetails interface{} = nil
	if gin.Mode() != gin.ReleaseMode && err != nil {
		errorDetails = err.Error()
	}

	HandleError(c, defaultStatus, defaultCode, defaultMessage, errorDetails)
}
