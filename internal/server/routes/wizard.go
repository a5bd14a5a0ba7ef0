package routes

import (
	"github.com/osa911/giraffecloud-portal/internal/api/handlers"
	"github.com/osa911/giraffecloud-portal/internal/api/validation"

	"github.com/gin-gonic/gin"
)

// SetupWizardRoutes configures the download wizard steps
func SetupWizardRoutes(v1Group *gin.RouterGroup, wizard *handlers.WizardHandler, m *Middleware) {
	group := v1Group.Group("/wizard")
	{
		group.GET("/versions", wizard.Versions)
		group.GET("/versions/:version/platforms", validation.ValidateRouteFilter(m.Validator), wizard.Platforms)
		group.GET("/descriptor", wizard.Descriptor)
	}
}
