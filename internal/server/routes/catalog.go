package routes

import (
	"github.com/osa911/giraffecloud-portal/internal/api/validation"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes configures the releases and dev builds browsers.
// Path segments become fetch filters; ?platform= filters the fetched set.
func SetupCatalogRoutes(v1Group *gin.RouterGroup, h *Handlers, m *Middleware) {
	validate := validation.ValidateRouteFilter(m.Validator)

	releases := v1Group.Group("/releases")
	{
		releases.GET("", validate, h.Releases.List)
		releases.GET("/:version", validate, h.Releases.List)
	}

	devbuilds := v1Group.Group("/devbuilds")
	{
		devbuilds.GET("", validate, h.DevBuilds.List)
		devbuilds.GET("/:version", validate, h.DevBuilds.List)
		devbuilds.GET("/:version/:build", validate, h.DevBuilds.List)
	}
}
