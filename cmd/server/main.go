package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"infrabed/config"
	_ "infrabed/docs" // Swagger docs
	embeddingHTTP "infrabed/internal/embedding/delivery/http"
	embeddingUC "infrabed/internal/embedding/usecase"
	"infrabed/internal/httpserver"
	"infrabed/internal/middleware"
	"infrabed/pkg/log"
)

// @title       Infrabed Embedding API
// @description Signed embedding endpoints and health checks.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting infrabed embedding service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := cfg.Service.Validate(); err != nil {
		logger.Errorf(ctx, "Invalid service config: %v", err)
		os.Exit(1)
	}

	// 3. Request verification
	mw := middleware.New(logger, middleware.Config{
		Credentials:     cfg.Service.CredentialMap(),
		NonceTTL:        cfg.Service.NonceTTL,
		RateLimitPerMin: cfg.Service.RateLimitPerMin,
		Prefix:          httpserver.APIPrefix + "/",
	})

	// 4. Embedding domain
	uc := embeddingUC.New(logger, embeddingUC.Config{
		Models:       cfg.Service.Models,
		DefaultModel: cfg.Service.DefaultModel,
		Dimensions:   cfg.Service.Dimensions,
	})
	logger.Infof(ctx, "Serving %d model(s), default %q, %d dimensions",
		len(uc.Models()), cfg.Service.DefaultModel, cfg.Service.Dimensions)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		EmbeddingHandler: embeddingHTTP.New(logger, uc),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
