package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/api/dto/common"
	wizarddto "github.com/osa911/giraffecloud-portal/internal/api/dto/v1/wizard"
	"github.com/osa911/giraffecloud-portal/internal/api/mapper"
	"github.com/osa911/giraffecloud-portal/internal/api/validation"
	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/download"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/utils"
	"github.com/osa911/giraffecloud-portal/internal/wizard"

	"github.com/gin-gonic/gin"
)

// WizardHandler exposes the wizard derivations statelessly: each request
// fetches the unfiltered releases list and derives one step from it
type WizardHandler struct {
	fetcher   catalog.Fetcher
	apiRoot   string
	platforms []string
	now       func() time.Time
}

func NewWizardHandler(fetcher catalog.Fetcher, apiRoot string, platforms []string) *WizardHandler {
	if len(platforms) == 0 {
		platforms = wizard.DefaultPlatforms
	}
	validation.RegisterGinValidators()
	return &WizardHandler{
		fetcher:   fetcher,
		apiRoot:   apiRoot,
		platforms: platforms,
		now:       time.Now,
	}
}

func (h *WizardHandler) load(c *gin.Context) ([]models.Artifact, bool) {
	store := catalog.NewStore(models.KindRelease, h.fetcher)
	result := store.Fetch(c.Request.Context(), catalog.Query{})
	if result.State != catalog.StateLoaded {
		utils.HandleAPIError(c, errors.New(result.Reason), http.StatusBadGateway, common.ErrCodeBadGateway, result.Reason)
		return nil, false
	}
	return result.Artifacts(), true
}

// Versions lists the selectable versions, newest first
func (h *WizardHandler) Versions(c *gin.Context) {
	artifacts, ok := h.load(c)
	if !ok {
		return
	}
	utils.HandleSuccess(c, wizarddto.VersionsResponse{Versions: wizard.Versions(artifacts)})
}

// Platforms lists the candidate platforms of a version with their availability
func (h *WizardHandler) Platforms(c *gin.Context) {
	version := validation.GetRouteFilter(c).Version

	artifacts, ok := h.load(c)
	if !ok {
		return
	}
	if !wizard.HasVersion(artifacts, version) {
		utils.HandleError(c, http.StatusNotFound, common.ErrCodeNotFound, fmt.Sprintf("Version %s not found", version), nil)
		return
	}

	options := wizard.PlatformOptions(artifacts, version, h.platforms)
	utils.HandleSuccess(c, mapper.PlatformOptionsToResponse(version, options))
}

// Descriptor resolves the download descriptor for a version and platform
func (h *WizardHandler) Descriptor(c *gin.Context) {
	var req wizarddto.DescriptorRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.HandleError(c, http.StatusBadRequest, common.ErrCodeValidation, "Invalid request", validation.FormatValidationError(err))
		return
	}

	artifacts, ok := h.load(c)
	if !ok {
		return
	}

	artifact, found := wizard.Match(artifacts, req.Version, req.Platform)
	if !found {
		utils.HandleError(c, http.StatusNotFound, common.ErrCodeNotFound,
			fmt.Sprintf("No release for version %s on %s", req.Version, req.Platform), nil)
		return
	}

	descriptor := download.Resolve(h.apiRoot, models.KindRelease, artifact, h.now)
	utils.HandleSuccess(c, mapper.DescriptorToResponse(descriptor))
}
