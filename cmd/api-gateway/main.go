// Package main is the entry point for the freight weight HTTP API.
// The service is stateless: every request carries the full shipment.
//
// 12-Factor App compilance:
//   - III. Config: Configuration via environment variables
//   - VI. Processes: Stateless processes
//   - VII. Port Binding: Self-contained HTTP server
//   - IX. Disposability: Graceful shutdown
//   - XI. Logs: Structured logging to stdout
//
// Usage:
//
//	go run ./cmd/api-gateway
//
// Environment Variables:
//
//	FWC_ENVIRONMENT - Deployment environment (development, staging, production)
//	FWC_SERVER_PORT - HTTP server port (default: 8080)
//	FWC_CONFIG      - Optional path to a YAML config file
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hapkiduki/freight-weight/internal/application/usecase"
	"github.com/hapkiduki/freight-weight/internal/infrastructure/config"
	"github.com/hapkiduki/freight-weight/internal/infrastructure/logging"
	"github.com/hapkiduki/freight-weight/internal/interfaces/http/middleware"
	"github.com/hapkiduki/freight-weight/internal/interfaces/http/router"
	"github.com/hapkiduki/freight-weight/pkg/logger"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	// Load configuration
	cfg := config.MustLoad(os.Getenv("FWC_CONFIG"))

	// Initialize logger
	log := logger.MustNew(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.IsDevelopment(),
	})
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("Starting freight weight API",
		"version", version,
		"environment", cfg.App.Environment,
	)

	// Create context that listens for shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logAdapter := logging.New(log.Named("api"))
	calc := usecase.NewCalculator(logAdapter, cfg.CalculatorOptions())

	routerCfg := router.Config{
		Version:            version,
		RequestTimeout:     cfg.Server.RequestTimeout,
		MaxRequestSize:     cfg.Server.MaxRequestSize,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}
	if cfg.RateLimit.Enabled {
		rl := middleware.DefaultRateLimiterConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		routerCfg.RateLimit = &rl
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.New(routerCfg, calc, logAdapter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server shutdown complete")
}
