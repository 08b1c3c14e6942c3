package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/technaptix/site-api/internal/config"
	"github.com/technaptix/site-api/internal/logging"
	"github.com/technaptix/site-api/internal/server"
	"github.com/technaptix/site-api/internal/telemetry"
	"github.com/technaptix/site-api/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.GetGlobalLogger().Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(logging.DefaultConfig(cfg.LogLevel, cfg.LogFile)); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode (%s)", cfg.Environment, version.Info())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.OTLPEndpoint)
	if err != nil {
		logger.Error("Failed to initialize tracing: %v", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(flushCtx); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	srv, err := server.NewServer(cfg, server.Dependencies{})
	if err != nil {
		logger.Error("Failed to create server: %v", err)
		os.Exit(1)
	}

	if err := srv.Start(ctx); err != nil {
		logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
