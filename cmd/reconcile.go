package cmd

import (
	"context"

	"inventory-sync/core/config"
	"inventory-sync/core/reconcile"
	"inventory-sync/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	reconcilePrefix string
	reconcileLimit  int
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Compare object storage with the database",
}

var reconcileImagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Report stored images no database row references",
	Long: `Lists objects under a prefix and compares their URLs with every gambar_url
and logo_url in the database. The report is advisory: nothing is deleted.

Examples:
  reconcile images
  reconcile images --prefix trk-inventory/vendor --limit 200`,
	RunE: runReconcileImages,
}

func init() {
	reconcileImagesCmd.Flags().StringVar(&reconcilePrefix, "prefix", "", "Folder prefix (default: ASSETS_PREFIX)")
	reconcileImagesCmd.Flags().IntVar(&reconcileLimit, "limit", 0, "Maximum objects scanned, at most 500 (default: ASSETS_LIST_LIMIT)")
	reconcileCmd.AddCommand(reconcileImagesCmd)
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcileImages(cmd *cobra.Command, args []string) error {
	cfg, l, err := bootstrap("reconcile", config.SectionDatabase, config.SectionAssets)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	store, _, err := openAssets(cfg, l)
	if err != nil {
		return err
	}

	prefix := reconcilePrefix
	if prefix == "" {
		prefix = cfg.Assets.Prefix
	}

	l.Info("Scanning for orphaned images", zap.String("prefix", prefix))
	report, err := reconcile.Scan(context.Background(), store, inventory.NewReferenceLoader(db), prefix, reconcileLimit)
	if err != nil {
		return err
	}

	printOrphanReport(l, report)
	return nil
}

func printOrphanReport(l *zap.Logger, report *reconcile.Report) {
	l.Info("Orphan report",
		zap.String("prefix", report.Prefix),
		zap.Int("total_in_storage", report.TotalInStorage),
		zap.Int("total_in_store", report.TotalInStore),
		zap.Int("orphans", report.OrphanCount),
	)
	for _, url := range report.Orphans {
		l.Warn("Orphaned image", zap.String("url", url))
	}
	if report.OrphanCount > 0 {
		l.Info("Review the orphans and remove them with: images delete --url <url>")
	}
}
