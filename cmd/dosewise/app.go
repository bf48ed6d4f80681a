package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dosewise/backend/config"
	"github.com/dosewise/backend/internal/domain"
	"github.com/dosewise/backend/internal/infrastructure/cache"
	"github.com/dosewise/backend/internal/infrastructure/datafile"
	"github.com/dosewise/backend/internal/logging"
	"github.com/dosewise/backend/internal/usecase"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	configFile string
	dataDir    string
	logLevel   string
	logFormat  string
}

// app bundles what a command needs once configuration is resolved
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *datafile.Store
	service *usecase.EvaluationService
	cache   *cache.MemoryCache
}

// loadConfig reads the config file and applies flag overrides
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(o.configFile)
	if err != nil {
		return nil, err
	}

	if o.dataDir != "" {
		cfg.Data.Dir = o.dataDir
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}
	return cfg, nil
}

// newApp wires config, logging, the data-file store and the evaluation service.
// Logs go to stderr so command output stays clean.
func newApp(cmd *cobra.Command, opts *globalOptions) (*app, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	store := datafile.NewStore(datafile.Config{
		Dir:          cfg.Data.Dir,
		ProductsFile: cfg.Data.ProductsFile,
		SinglesFile:  cfg.Data.SinglesFile,
		DosagesFile:  cfg.Data.DosagesFile,
		Strict:       cfg.Data.Strict,
	}, domain.NewDefaultNormalizer(), logger)

	a := &app{cfg: cfg, logger: logger, store: store}

	var cacheRepo domain.CacheRepository
	if cfg.Cache.Type == "memory" {
		a.cache = cache.NewMemoryCache()
		cacheRepo = a.cache
	}

	a.service = usecase.NewEvaluationService(store, cacheRepo, usecase.EvaluationServiceConfig{
		CacheTTL: cfg.Cache.TTL,
		Logger:   logger,
	})
	return a, nil
}

// Close stops background work started by newApp
func (a *app) Close() {
	if a.cache != nil {
		_ = a.cache.Close()
	}
}

// withApp runs fn with a wired app and closes it afterwards
func withApp(cmd *cobra.Command, opts *globalOptions, fn func(a *app) error) error {
	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// dataHint points the user at 'dosewise init' when the data files are missing
func dataHint(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrDataFileNotFound) {
		return fmt.Errorf("%w\nrun 'dosewise init' to create example data files", err)
	}
	return err
}
