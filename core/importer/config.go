package importer

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultRefreshStatement rebuilds the stock aggregate after a load.
const DefaultRefreshStatement = "REFRESH MATERIALIZED VIEW stok_summary"

// Config holds importer settings.
type Config struct {
	// SnapshotDir is where extract writes and import reads snapshot files.
	SnapshotDir string `mapstructure:"snapshot_dir" default:"export"`
	// Concurrency bounds parallel inserts within one kind. 1 keeps source order.
	Concurrency int `mapstructure:"concurrency" default:"1"`
	// RefreshStatement runs after all kinds are loaded. Empty disables the refresh.
	RefreshStatement string `mapstructure:"refresh_statement" default:"REFRESH MATERIALIZED VIEW stok_summary"`
	// BcryptCost is used to hash raw user passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" default:"10"`
}

// Validate checks importer settings.
func (c Config) Validate() error {
	if c.SnapshotDir == "" {
		return errors.New("snapshot_dir is not set")
	}
	if c.Concurrency < 1 {
		return errors.New("concurrency must be at least 1")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return errors.New("bcrypt_cost must be between 4 and 31")
	}
	return nil
}
