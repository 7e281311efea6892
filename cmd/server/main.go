package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jefferson5286/taskmanage/internal/api"
	"github.com/jefferson5286/taskmanage/internal/pkg/config"
	"github.com/jefferson5286/taskmanage/internal/pkg/logger"
	"github.com/jefferson5286/taskmanage/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	zap.L().Info("Starting Task Manage API")

	// Open the store
	store, err := repository.Open(cfg.Database.Path)
	if err != nil {
		zap.L().Fatal("Failed to open database",
			zap.Error(err))
	}
	defer store.Close()

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	// Setup routes
	api.SetupRouter(r, store)

	srv := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Failed to start server",
				zap.Error(err))
		}
	}()

	zap.L().Info("Task Manage API listening",
		zap.String("addr", cfg.ServerAddr()),
		zap.String("database", cfg.Database.Path))

	// Wait for shutdown signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	zap.L().Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Server shutdown failed",
			zap.Error(err))
	}
}
