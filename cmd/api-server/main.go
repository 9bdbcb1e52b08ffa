package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"kushfilms/internal/config"
	"kushfilms/internal/logger"
	"kushfilms/internal/server"

	"go.uber.org/zap"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("could not build logger: %v", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg, zl); err != nil {
		zl.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	zl.Info("server stopped")
}
