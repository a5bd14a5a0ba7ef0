package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/config"
	"github.com/osa911/giraffecloud-portal/internal/logging"
	"github.com/osa911/giraffecloud-portal/internal/server"
	"github.com/osa911/giraffecloud-portal/internal/telemetry"
	"github.com/osa911/giraffecloud-portal/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger configuration
	logConfig := &logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	// Use default values if not set
	if logConfig.File == "" {
		logConfig.File = "./logs/portal.log"
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting portal API %s in %s mode", version.Info(), cfg.Environment)
	logger.Info("Backend API: %s", cfg.APIBase)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.OTLPEndpoint, version.Version)
	if err != nil {
		logger.Error("Failed to set up tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	srv := server.NewServer(cfg, server.NewHandlers(cfg))
	if err := srv.Start(ctx); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
	logger.Info("Portal API stopped")
}
