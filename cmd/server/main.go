package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/shiftsync/internal/server/coordinator"
	"github.com/iudanet/shiftsync/internal/server/handlers"
	"github.com/iudanet/shiftsync/internal/server/middleware"
	"github.com/iudanet/shiftsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", envOr("SHIFTSYNC_ADDR", ":8080"), "Listen address")
	dbPath := flag.String("db", envOr("SHIFTSYNC_DB", "shiftsync.db"), "Path to SQLite database")
	rateLimit := flag.Int("rate-limit", 120, "Requests per minute per node")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger, *addr, *dbPath, *rateLimit); err != nil {
		logger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string, rateLimit int) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	coord := coordinator.New(store, logger, coordinator.DefaultConfig())
	syncHandler := handlers.NewSyncHandler(logger, coord)
	healthHandler := handlers.NewHealthHandler(logger, store.DB(), Version)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/sync/initialize", syncHandler.HandleInitialize)
	mux.HandleFunc("POST /api/v1/sync/synchronize", syncHandler.HandleSynchronize)
	mux.HandleFunc("GET /api/v1/sync/state/{nodeID}", syncHandler.HandleGetState)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Порядок: request id снаружи, чтобы логирование и recovery его видели
	var handler http.Handler = mux
	handler = middleware.RecoveryMiddleware(logger)(handler)
	handler = middleware.RateLimitMiddleware(rateLimit, time.Minute, logger)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(handler)
	handler = middleware.RequestIDMiddleware()(handler)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down gracefully: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printVersion() {
	fmt.Printf("ShiftSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
