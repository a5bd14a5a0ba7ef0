package routes

import (
	"github.com/osa911/giraffecloud-portal/internal/api/handlers"

	"github.com/go-playground/validator/v10"
)

// Handlers contains all the route handlers
type Handlers struct {
	Health    *handlers.HealthHandler
	Releases  *handlers.CatalogHandler
	DevBuilds *handlers.CatalogHandler
	Wizard    *handlers.WizardHandler
}

// Middleware contains the shared middleware dependencies
type Middleware struct {
	Validator *validator.Validate
}

// GlobalOptions configures middleware that applies to all routes
type GlobalOptions struct {
	AllowedOrigins []string
	Production     bool
	LogRequests    bool
	RateLimitRPS   float64
	RateLimitBurst int
	ServiceName    string
}
