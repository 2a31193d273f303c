package cmd

import (
	"context"
	"fmt"

	"inventory-sync/core/assets"
	"inventory-sync/core/config"
	"inventory-sync/core/database"
	"inventory-sync/core/model"
	"inventory-sync/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	Long: `Applies the embedded SQL migrations on postgres (tables, foreign keys and the
stok_summary materialized view). Other drivers get the tables through gorm
AutoMigrate. With the minio asset provider the bucket is created when missing.`,
	RunE: runMigrate,
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, l, err := bootstrap("migrate", config.SectionDatabase)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(cfg.Database, db, l, model.All()...); err != nil {
		return err
	}

	if cfg.Assets.Provider != assets.ProviderMinio {
		return nil
	}
	if err := cfg.Require(config.SectionStorage); err != nil {
		return err
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}
	created, err := storage.EnsureBucket(context.Background(), client, cfg.Storage)
	if err != nil {
		return err
	}
	l.Info("Bucket ready", zap.String("bucket", cfg.Storage.Bucket), zap.Bool("created", created))
	return nil
}
