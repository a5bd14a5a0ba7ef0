package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"

	cfgenv "github.com/osa911/giraffecloud-portal/internal/config/env"
)

// Config holds all configuration for the portal server and CLI
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development" validate:"oneof=development production test"`
	Port        string `env:"API_PORT" envDefault:"8080" validate:"required,numeric"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"true"`

	// Backend API Configuration
	APIBase     string        `env:"PORTAL_API_BASE" envDefault:"https://api.giraffecloud.xyz" validate:"required,http_url"`
	WizardURL   string        `env:"PORTAL_WIZARD_URL" envDefault:"https://api.giraffecloud.xyz/releases" validate:"required,http_url"`
	HTTPTimeout time.Duration `env:"PORTAL_HTTP_TIMEOUT" envDefault:"30s" validate:"gt=0"`

	// Wizard Configuration
	WizardPlatforms    []string      `env:"PORTAL_WIZARD_PLATFORMS" envSeparator:"," envDefault:"windows,macos,linux" validate:"min=1,dive,required"`
	WizardResetDelay   time.Duration `env:"PORTAL_WIZARD_RESET_DELAY" envDefault:"300ms" validate:"gt=0"`
	WizardExitDuration time.Duration `env:"PORTAL_WIZARD_EXIT_DURATION" envDefault:"1500ms" validate:"gt=0"`

	// Client Configuration
	// Empty means preferences.DefaultPath()
	PreferencesFile string `env:"PORTAL_PREFERENCES_FILE"`

	// Rate Limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10" validate:"gt=0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20" validate:"gt=0"`

	// Catalog Cache (0 disables)
	CatalogCacheSize int           `env:"CATALOG_CACHE_SIZE" envDefault:"64" validate:"gte=0"`
	CatalogCacheTTL  time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"30s" validate:"gte=0"`

	// CORS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Proxies whose X-Forwarded-For / X-Real-IP headers are believed; empty trusts none
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:"," validate:"dive,cidr|ip"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	cfgenv.LoadEnv()
	return Parse()
}

// Parse reads the configuration from the process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")
	for i, p := range cfg.WizardPlatforms {
		cfg.WizardPlatforms[i] = strings.TrimSpace(p)
	}
	for i, p := range cfg.TrustedProxies {
		cfg.TrustedProxies[i] = strings.TrimSpace(p)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ReleasesEndpoint is the releases collection URL
func (c *Config) ReleasesEndpoint() string {
	return c.APIBase + "/releases"
}

// DevBuildsEndpoint is the dev builds collection URL
func (c *Config) DevBuildsEndpoint() string {
	return c.APIBase + "/devbuilds"
}
