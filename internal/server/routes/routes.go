package routes

import (
	"github.com/osa911/giraffecloud-portal/internal/api/middleware"
	"github.com/osa911/giraffecloud-portal/internal/logging"
	basemiddleware "github.com/osa911/giraffecloud-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	SetupHealthRoutes(router, h.Health)

	v1 := router.Group("/api/v1")
	SetupCatalogRoutes(v1, h, m)
	SetupWizardRoutes(v1, h.Wizard, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, logger *logging.Logger, opts GlobalOptions) {
	router.Use(basemiddleware.Recovery())
	router.Use(basemiddleware.RequestID())
	router.Use(otelgin.Middleware(opts.ServiceName))
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestLogger(logger, opts.LogRequests))
	router.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: opts.AllowedOrigins,
		Production:     opts.Production,
	}))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   opts.RateLimitRPS,
		Burst: opts.RateLimitBurst,
	}))
}
