package cmd

import (
	"context"

	"inventory-sync/core/assets"
	"inventory-sync/core/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	imageKey string
	imageURL string
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Manage stored images",
}

var imagesDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete one stored image by key or public URL",
	Long: `Deletes one object. With --url the key is derived from the public URL, e.g.

  https://res.cloudinary.com/demo/image/upload/v1234567890/trk-inventory/barang/image123.jpg

maps to trk-inventory/barang/image123.

Examples:
  images delete --key trk-inventory/barang/image123
  images delete --url https://res.cloudinary.com/demo/image/upload/v1/trk-inventory/barang/image123.jpg`,
	RunE: runImagesDelete,
}

func init() {
	imagesDeleteCmd.Flags().StringVar(&imageKey, "key", "", "Object key")
	imagesDeleteCmd.Flags().StringVar(&imageURL, "url", "", "Public image URL")
	imagesDeleteCmd.MarkFlagsMutuallyExclusive("key", "url")
	imagesDeleteCmd.MarkFlagsOneRequired("key", "url")
	imagesCmd.AddCommand(imagesDeleteCmd)
	RootCmd.AddCommand(imagesCmd)
}

func runImagesDelete(cmd *cobra.Command, args []string) error {
	cfg, l, err := bootstrap("images-delete", config.SectionAssets)
	if err != nil {
		return err
	}
	_, mgr, err := openAssets(cfg, l)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var res assets.Result
	if imageURL != "" {
		res, err = mgr.DeleteByURL(ctx, imageURL)
		if err != nil {
			return err
		}
	} else {
		res = mgr.DeleteByKey(ctx, imageKey)
	}

	switch res.Outcome {
	case assets.OutcomeFailed:
		return res.Err
	case assets.OutcomeNotFound:
		l.Warn("Image was already absent", zap.String("key", res.Key))
	default:
		l.Info("Image deleted", zap.String("key", res.Key))
	}
	return nil
}
