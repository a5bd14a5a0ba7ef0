package validation

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/osa911/giraffecloud-portal/internal/api/constants"
	"github.com/osa911/giraffecloud-portal/internal/api/dto/common"
	"github.com/osa911/giraffecloud-portal/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RouteFilter carries the route-derived fetch filters and the in-page
// platform filter of a catalog request
type RouteFilter struct {
	Version  string `validate:"omitempty,version"`
	BuildID  string `validate:"omitempty,numeric,max=19"`
	Platform string `validate:"omitempty,platform"`
}

// New returns a validator with the custom validators registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("version", validateVersion)
	v.RegisterValidation("platform", validatePlatform)
}

// validateVersion checks if the version is usable as a filter
func validateVersion(fl validator.FieldLevel) bool {
	return utils.IsValidVersion(fl.Field().String())
}

// validatePlatform checks if the platform is usable as a filter
func validatePlatform(fl validator.FieldLevel) bool {
	return utils.IsValidPlatform(fl.Field().String())
}

// FormatValidationError formats validation errors into a user-friendly response
func FormatValidationError(err error) []common.ValidationError {
	var errors []common.ValidationError
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, common.ValidationError{
				Field:   e.Field(),
				Message: fmt.Sprintf("failed on the '%s' rule", e.Tag()),
				Value:   fmt.Sprintf("%v", e.Value()),
			})
		}
	}
	return errors
}

// ValidateRouteFilter validates the :version and :build path segments and the
// platform query parameter, storing the RouteFilter in the context
func ValidateRouteFilter(v *validator.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := RouteFilter{
			Version:  c.Param("version"),
			BuildID:  c.Param("build"),
			Platform: c.Query("platform"),
		}

		if err := v.Struct(filter); err != nil {
			utils.HandleError(c, http.StatusBadRequest, common.ErrCodeValidation, "Invalid filter", FormatValidationError(err))
			return
		}

		c.Set(constants.ContextKeyRouteFilter, filter)
		c.Next()
	}
}

// GetRouteFilter returns the filter stored by ValidateRouteFilter
func GetRouteFilter(c *gin.Context) RouteFilter {
	if val, exists := c.Get(constants.ContextKeyRouteFilter); exists {
		if filter, ok := val.(RouteFilter); ok {
			return filter
		}
	}
	return RouteFilter{}
}

var registerGinOnce sync.Once

// RegisterGinValidators adds the custom validators to gin's binding engine
// so `binding:"version"` tags work in ShouldBind calls
func RegisterGinValidators() {
	registerGinOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterValidators(v)
		}
	})
}
