// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lagerkoll/backend-go/internal/api"
	"github.com/lagerkoll/backend-go/internal/cache"
	"github.com/lagerkoll/backend-go/internal/centra"
	"github.com/lagerkoll/backend-go/internal/config"
	"github.com/lagerkoll/backend-go/internal/service"
	"github.com/lagerkoll/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Centra.Endpoint == "" || cfg.Centra.Token == "" {
		logger.Log.Fatal().Msg("CENTRA_API_ENDPOINT and CENTRA_API_TOKEN must be set")
	}

	// Initialize catalog client and report cache
	client := centra.NewClient(cfg.Centra.Endpoint, cfg.Centra.Token,
		centra.WithTimeout(cfg.Centra.HTTPTimeout),
		centra.WithLogger(logger.Log),
	)

	reportCache, err := cache.NewReportCache(cfg.Cache)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize report cache")
	}

	// Initialize services
	inventoryService := service.NewInventoryService(client, reportCache, cfg.Centra, logger.Log)

	// Initialize HTTP server
	router := api.NewRouter(inventoryService, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
