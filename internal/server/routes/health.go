package routes

import (
	"github.com/osa911/giraffecloud-portal/internal/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupHealthRoutes configures health check and metrics endpoints
func SetupHealthRoutes(router *gin.Engine, health *handlers.HealthHandler) {
	router.GET("/health", health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
