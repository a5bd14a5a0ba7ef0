package utils

import (
	"net/http"

	"github.com/osa911/giraffecloud-portal/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}

// HandleError aborts with an error envelope carrying the request id. It does not log.
func HandleError(c *gin.Context, status int, code common.ErrorCode, message string, details interface{}) {
	c.AbortWithStatusJSON(status, common.NewErrorResponse(code, message, details).WithRequestID(RequestID(c)))
}
