package cmd

import (
	"fmt"

	"inventory-sync/core/assets"
	"inventory-sync/core/config"
	"inventory-sync/core/database"
	"inventory-sync/core/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// configPath is where .env is looked up.
var configPath = "."

// bootstrap loads configuration, validates the sections the command needs and
// builds a run scoped logger. A *config.ConfigurationError stops the command
// before any client is constructed.
func bootstrap(op string, sections ...string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Require(sections...); err != nil {
		return nil, nil, err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	runLog, _ := logger.ForRun(l, op)
	return cfg, runLog, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// openAssets builds the configured object store and a lifecycle manager on top of it.
func openAssets(cfg *config.Config, l *zap.Logger) (assets.Store, *assets.Manager, error) {
	store, err := assets.NewStore(cfg.Assets, cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to asset store: %w", err)
	}
	return store, assets.NewManager(store, assets.NewIdentifier(cfg.Assets), l), nil
}
