package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/cinetro/internal/constants"
	"github.com/amaumene/cinetro/internal/middleware"
)

func main() {
	InitializeConfig()
	InitializeLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	InitializeServices(ctx)

	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(Logger))
	r.Use(middleware.Gzip())

	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  constants.ReadTimeout,
		WriteTimeout: constants.WriteTimeout,
		IdleTimeout:  constants.IdleTimeout,
	}

	go func() {
		Logger.Infof("[App] starting HTTP server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Logger.Fatalf("[App] server failed: %v", err)
		}
	}()

	<-ctx.Done()
	Logger.Infof("[App] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		Logger.Errorf("[App] graceful shutdown failed: %v", err)
	}
	ShutdownServices()
}
