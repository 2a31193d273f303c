package config

import (
	"fmt"

	"inventory-sync/core/assets"
)

// Section names accepted by Require.
const (
	SectionServer   = "server"
	SectionDatabase = "database"
	SectionStorage  = "storage"
	SectionAssets   = "assets"
	SectionSource   = "source"
	SectionImport   = "import"
)

// ConfigurationError reports a missing or malformed setting. Commands treat it as
// fatal and stop before doing any I/O.
type ConfigurationError struct {
	Section string
	Err     error
	Hint    string
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("invalid %s configuration: %v", e.Section, e.Err)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

var hints = map[string]string{
	SectionServer:   "set SERVER_PORT",
	SectionDatabase: "set DATABASE_DRIVER and DATABASE_HOST, DATABASE_PORT, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME in .env",
	SectionStorage:  "set STORAGE_ENDPOINT, STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY and STORAGE_BUCKET in .env",
	SectionAssets:   "set ASSETS_PROVIDER and its credentials, e.g. ASSETS_CLOUDINARY_CLOUD_NAME, ASSETS_CLOUDINARY_API_KEY, ASSETS_CLOUDINARY_API_SECRET",
	SectionSource:   "set SOURCE_SPREADSHEET_ID and SOURCE_CREDENTIALS_FILE (service account key), or SOURCE_PROVIDER=csv with SOURCE_CSV_DIR",
	SectionImport:   "check IMPORT_SNAPSHOT_DIR, IMPORT_CONCURRENCY (>= 1) and IMPORT_BCRYPT_COST (4-31)",
}

// Require validates the named sections and returns the first failure as a
// *ConfigurationError. Sections a command does not use are not checked.
func (c *Config) Require(sections ...string) error {
	for _, section := range sections {
		var err error
		switch section {
		case SectionServer:
			err = c.Server.Validate()
		case SectionDatabase:
			err = c.Database.Validate()
		case SectionStorage:
			err = c.Storage.Validate()
		case SectionAssets:
			err = c.Assets.Validate()
			if err == nil && c.Assets.Provider == assets.ProviderMinio {
				if serr := c.Storage.Validate(); serr != nil {
					return &ConfigurationError{Section: SectionStorage, Err: serr, Hint: hints[SectionStorage]}
				}
			}
		case SectionSource:
			err = c.Source.Validate()
		case SectionImport:
			err = c.Import.Validate()
		default:
			err = fmt.Errorf("unknown section %q", section)
		}
		if err != nil {
			return &ConfigurationError{Section: section, Err: err, Hint: hints[section]}
		}
	}
	return nil
}
