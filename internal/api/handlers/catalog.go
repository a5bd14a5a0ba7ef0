package handlers

import (
	"errors"
	"net/http"

	"github.com/osa911/giraffecloud-portal/internal/api/dto/common"
	"github.com/osa911/giraffecloud-portal/internal/api/mapper"
	"github.com/osa911/giraffecloud-portal/internal/api/validation"
	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the releases or dev builds browser for one collection
type CatalogHandler struct {
	kind    models.Kind
	fetcher catalog.Fetcher
	apiRoot string
}

func NewCatalogHandler(kind models.Kind, fetcher catalog.Fetcher, apiRoot string) *CatalogHandler {
	return &CatalogHandler{
		kind:    kind,
		fetcher: fetcher,
		apiRoot: apiRoot,
	}
}

// List fetches the collection for the route-derived version/build filters and
// applies the platform query filter over the fetched set
func (h *CatalogHandler) List(c *gin.Context) {
	rf := validation.GetRouteFilter(c)

	store := catalog.NewStore(h.kind, h.fetcher)
	result := store.Fetch(c.Request.Context(), catalog.Query{
		Version: rf.Version,
		BuildID: rf.BuildID,
	})

	if result.State != catalog.StateLoaded {
		utils.HandleAPIError(c, errors.New(result.Reason), http.StatusBadGateway, common.ErrCodeBadGateway, result.Reason)
		return
	}

	filter := catalog.Filter{Version: rf.Version, Platform: rf.Platform}
	view := catalog.NewView(result.Catalog, filter)
	utils.HandleSuccess(c, mapper.ViewToResponse(result.Catalog, filter, view, h.apiRoot))
}
