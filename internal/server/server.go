package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/api/handlers"
	"github.com/osa911/giraffecloud-portal/internal/api/validation"
	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/config"
	"github.com/osa911/giraffecloud-portal/internal/logging"
	"github.com/osa911/giraffecloud-portal/internal/models"
	"github.com/osa911/giraffecloud-portal/internal/server/routes"
	"github.com/osa911/giraffecloud-portal/internal/telemetry"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// NewServer creates a new server instance with all routes registered
func NewServer(cfg *config.Config, h *routes.Handlers) *Server {
	// Set release mode for production
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	logger := logging.GetGlobalLogger()
	// Forwarding headers count only when the peer is a configured proxy
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Warn("Invalid trusted proxies %v, trusting none: %v", cfg.TrustedProxies, err)
		router.SetTrustedProxies(nil)
	}
	routes.SetupGlobalMiddleware(router, logger, routes.GlobalOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		Production:     cfg.IsProduction(),
		LogRequests:    cfg.LogRequests,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		ServiceName:    telemetry.ServiceName,
	})
	routes.Setup(router, h, &routes.Middleware{Validator: validation.New()})

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// NewHandlers wires the handlers to the backend collection endpoints,
// sharing one response cache per collection when caching is enabled
func NewHandlers(cfg *config.Config) *routes.Handlers {
	releases := newFetcher(cfg, cfg.ReleasesEndpoint())
	devbuilds := newFetcher(cfg, cfg.DevBuildsEndpoint())
	wizardFetcher := releases
	if cfg.WizardURL != cfg.ReleasesEndpoint() {
		wizardFetcher = newFetcher(cfg, cfg.WizardURL)
	}

	return &routes.Handlers{
		Health:    handlers.NewHealthHandler(),
		Releases:  handlers.NewCatalogHandler(models.KindRelease, releases, cfg.APIBase),
		DevBuilds: handlers.NewCatalogHandler(models.KindDevBuild, devbuilds, cfg.APIBase),
		Wizard:    handlers.NewWizardHandler(wizardFetcher, cfg.APIBase, cfg.WizardPlatforms),
	}
}

func newFetcher(cfg *config.Config, endpoint string) catalog.Fetcher {
	fetcher := catalog.NewHTTPFetcher(endpoint, cfg.HTTPTimeout)
	if cfg.CatalogCacheSize <= 0 || cfg.CatalogCacheTTL <= 0 {
		return fetcher
	}
	return catalog.NewCachedFetcher(fetcher, cfg.CatalogCacheSize, cfg.CatalogCacheTTL)
}

// Handler returns the HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Portal API listening on :%s", s.cfg.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down portal API...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
