package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DannyahIA/profile-metrics/internal/server"
	"github.com/DannyahIA/profile-metrics/internal/storage"
	"github.com/DannyahIA/profile-metrics/pkg/config"
	"github.com/DannyahIA/profile-metrics/pkg/logger"
)

func main() {
	logger.Init()

	if err := config.Load(); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.AppConfig

	store := storage.NewStore(cfg.Paths.DataDir)
	srv := server.New(store, cfg.Paths.AssetsDir)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: srv.Handler(),
	}

	go func() {
		logger.Infof("preview server listening on :%s", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf("shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
