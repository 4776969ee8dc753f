package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/haukened/backlist/internal/backlist/common/clock"
	"github.com/haukened/backlist/internal/backlist/common/log"
	"github.com/haukened/backlist/internal/backlist/config"
	"github.com/haukened/backlist/internal/backlist/repos/listcache"
	"github.com/haukened/backlist/internal/backlist/repos/settings"
	"github.com/haukened/backlist/internal/backlist/services/admin"
	"github.com/haukened/backlist/internal/backlist/services/filter"
)

const (
	version = "0.1.0-dev"
	appName = "backlist"

	// exitRejected is returned by `check` when the submission would be rejected.
	exitRejected = 2
)

// Application holds the wired components behind the CLI.
type Application struct {
	config *config.AppConfig
	store  settings.Store
	cache  *listcache.Cache
	filter *filter.Service
	admin  *admin.Service
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Debug(map[string]any{
		"version":    version,
		"env":        cfg.Env,
		"log_level":  cfg.LogLevel,
		"db":         cfg.DB,
		"cache_size": cfg.CacheSize,
	}, "Starting backlist")

	app, err := buildApplication(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}

	err = newCLI(app, os.Stdout).Run(os.Args)
	if cerr := app.Close(); cerr != nil {
		log.Error(map[string]any{"error": cerr}, "Failed to close settings store")
	}
	switch {
	case errors.Is(err, filter.ErrRejected):
		os.Exit(exitRejected)
	case err != nil:
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// buildApplication opens the settings store and wires the services on top of it.
// The caller owns the returned Application and must Close it.
func buildApplication(cfg *config.AppConfig, reg prometheus.Registerer) (*Application, error) {
	logger := log.GetLogger()

	store, err := settings.NewBolt(cfg.DB, clock.RealClock{})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}

	cache, err := listcache.New(cfg.CacheSize, cfg.BloomFPRate)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to build list cache: %w", err)
	}

	filterService, err := filter.New(filter.Options{
		Settings:   store,
		Cache:      cache,
		Logger:     logger,
		Registerer: reg,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to build filter service: %w", err)
	}

	adminService, err := admin.New(admin.Options{
		Settings: store,
		Logger:   logger,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to build admin service: %w", err)
	}

	return &Application{
		config: cfg,
		store:  store,
		cache:  cache,
		filter: filterService,
		admin:  adminService,
	}, nil
}

// Close releases the settings store.
func (app *Application) Close() error {
	return app.store.Close()
}
