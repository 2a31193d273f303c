package cmd

import (
	"context"
	"errors"
	"fmt"

	"inventory-sync/core/config"
	"inventory-sync/core/schema"
	"inventory-sync/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	userEmail    string
	userPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage application users",
}

var userSetPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Store a new bcrypt hashed password for a user",
	Long: `Hashes the given password with IMPORT_BCRYPT_COST and stores it for the user.

Example:
  user set-password --email admin@example.com --password admin123`,
	RunE: runUserSetPassword,
}

func init() {
	userSetPasswordCmd.Flags().StringVar(&userEmail, "email", "", "User email")
	userSetPasswordCmd.Flags().StringVar(&userPassword, "password", "", "New password")
	_ = userSetPasswordCmd.MarkFlagRequired("email")
	_ = userSetPasswordCmd.MarkFlagRequired("password")
	userCmd.AddCommand(userSetPasswordCmd)
	RootCmd.AddCommand(userCmd)
}

func runUserSetPassword(cmd *cobra.Command, args []string) error {
	cfg, l, err := bootstrap("set-password", config.SectionDatabase, config.SectionImport)
	if err != nil {
		return err
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}

	svc := inventory.NewService(db, nil, schema.NewBcryptHasher(cfg.Import.BcryptCost), l)
	if err := svc.SetPassword(context.Background(), userEmail, userPassword); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			return fmt.Errorf("user %s not found", userEmail)
		}
		return err
	}
	l.Info("Password updated", zap.String("email", userEmail))
	return nil
}
