package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dosewise/backend/config"
	httpDelivery "github.com/dosewise/backend/internal/delivery/http"
	"github.com/dosewise/backend/internal/domain"
	"github.com/dosewise/backend/internal/infrastructure/cache"
	"github.com/dosewise/backend/internal/infrastructure/datafile"
	"github.com/dosewise/backend/internal/logging"
	"github.com/dosewise/backend/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	slog.SetDefault(logger)

	logger.Info("starting DoseWise backend",
		"version", httpDelivery.Version,
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"cache", cfg.Cache.Type,
		"cache_ttl", cfg.Cache.TTL,
		"data_dir", cfg.Data.Dir)

	var cacheRepo domain.CacheRepository
	if cfg.Cache.Type == "memory" {
		memoryCache := cache.NewMemoryCache()
		defer memoryCache.Close()
		cacheRepo = memoryCache
	}

	store := datafile.NewStore(datafile.Config{
		Dir:          cfg.Data.Dir,
		ProductsFile: cfg.Data.ProductsFile,
		SinglesFile:  cfg.Data.SinglesFile,
		DosagesFile:  cfg.Data.DosagesFile,
		Strict:       cfg.Data.Strict,
	}, domain.NewDefaultNormalizer(), logger)

	evaluationService := usecase.NewEvaluationService(store, cacheRepo, usecase.EvaluationServiceConfig{
		CacheTTL: cfg.Cache.TTL,
		Logger:   logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Fail at startup rather than on the first request when the data files are bad
	if err := evaluationService.Reload(ctx); err != nil {
		return err
	}

	handler := httpDelivery.NewHandler(evaluationService, logger)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
