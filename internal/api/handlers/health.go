package handlers

import (
	"github.com/osa911/giraffecloud-portal/internal/utils"
	"github.com/osa911/giraffecloud-portal/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthResponse reports liveness and the running build
type HealthResponse struct {
	Status string            `json:"status"`
	Build  version.BuildInfo `json:"build"`
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, HealthResponse{
		Status: "ok",
		Build:  version.GetBuildInfo(),
	})
}
