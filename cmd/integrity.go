package cmd

import (
	"context"
	"errors"

	"inventory-sync/core/assets"
	"inventory-sync/core/config"
	"inventory-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and the asset store",
	Long: `Verifies that every entity table exists with the expected columns and that the
configured asset store answers. Exits non-zero when a check fails.`,
	RunE: runIntegrity,
}

func init() {
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrity(cmd *cobra.Command, args []string) error {
	cfg, l, err := bootstrap("integrity", config.SectionDatabase, config.SectionAssets)
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	var store assets.Store
	if s, _, err := openAssets(cfg, l); err != nil {
		l.Warn("Asset store unavailable", zap.Error(err))
	} else {
		store = s
	}

	report := integrity.NewService(db, store, cfg.Assets.Provider, l).CheckAll(context.Background())
	if report.Schema != nil {
		for table, tbl := range report.Schema.Tables {
			fields := []zap.Field{zap.String("table", table), zap.String("status", tbl.Status)}
			if len(tbl.MissingColumns) > 0 {
				fields = append(fields, zap.Strings("missing_columns", tbl.MissingColumns))
			}
			l.Info("Table checked", fields...)
		}
	}
	l.Info("Asset store checked",
		zap.String("provider", report.Storage.Provider),
		zap.Bool("reachable", report.Storage.Reachable),
		zap.String("error", report.Storage.Error),
	)

	if !report.Healthy {
		return errors.New("integrity check failed")
	}
	l.Info("All integrity checks passed")
	return nil
}
