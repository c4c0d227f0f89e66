package main

import (
	"context"
	"os"
	"strings"

	"github.com/amaumene/cinetro/internal/config"
	"github.com/amaumene/cinetro/internal/handlers"
	"github.com/amaumene/cinetro/internal/services"
	"github.com/amaumene/cinetro/internal/session"
	"github.com/amaumene/cinetro/pkg/logger"
)

var (
	Logger           logger.Logger
	cfg              *config.Config
	handler          *handlers.Handler
	serviceContainer *services.Container
)

func InitializeConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		// The configured level is unknown until the config loads.
		logger.New().Fatalf("[App] failed to load configuration: %v", err)
	}
}

func InitializeLogger() {
	Logger = logger.NewWithWriter(os.Stderr, logger.ParseLevel(cfg.LogLevel))

	// Log level validation (for user feedback)
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		Logger.Warnf("[App] unknown log level '%s', defaulting to info", cfg.LogLevel)
	}
}

func InitializeServices(ctx context.Context) {
	sessions := session.NewStore(cfg.SessionCapacity, cfg.SessionTTL, session.WithLogger(Logger))

	cleanupService := services.NewCleanupService(sessions, Logger)
	if err := cleanupService.Start(ctx); err != nil {
		Logger.Fatalf("[App] failed to start session sweeper: %v", err)
	}

	serviceContainer = &services.Container{
		Catalog:  services.NewCatalog(cfg, Logger),
		Sessions: sessions,
		Logger:   Logger,
		Cleanup:  cleanupService,
	}

	handler = handlers.New(serviceContainer, cfg)

	Logger.Infof("[App] services initialized, catalog API at %s", cfg.APIBaseURL)
}

// ShutdownServices stops the sweeper and closes every live session so carousel and
// player timers are released.
func ShutdownServices() {
	if serviceContainer == nil {
		return
	}
	serviceContainer.Cleanup.Stop()
	serviceContainer.Sessions.Close()
}
