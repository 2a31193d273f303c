package extract

import (
	"errors"
	"fmt"
)

// Source providers.
const (
	ProviderSheets = "sheets"
	ProviderCSV    = "csv"
)

// Config selects and configures the tabular source.
type Config struct {
	// Provider is "sheets" (Google Sheets API) or "csv" (one file per sheet).
	Provider string `mapstructure:"provider" default:"sheets"`
	// SpreadsheetID is the Google spreadsheet to read.
	SpreadsheetID string `mapstructure:"spreadsheet_id" default:""`
	// CredentialsFile is a service account JSON key with read access to the spreadsheet.
	CredentialsFile string `mapstructure:"credentials_file" default:"credentials.json"`
	// CSVDir holds "<sheet file name>.csv" files for the csv provider.
	CSVDir string `mapstructure:"csv_dir" default:"export/csv"`
	// CSVEncoding is a WHATWG encoding label used when a file has no BOM.
	CSVEncoding string `mapstructure:"csv_encoding" default:"utf-8"`
	// Sheets is the comma separated list of sheets to extract.
	Sheets []string `mapstructure:"sheets" default:"Users,Barang,Vendor,Pembelian,Mutasi Gudang"`
}

// Validate checks the settings of the selected provider.
func (c Config) Validate() error {
	if len(c.Sheets) == 0 {
		return errors.New("no sheets configured")
	}
	switch c.Provider {
	case ProviderSheets:
		if c.SpreadsheetID == "" {
			return errors.New("spreadsheet_id is not set")
		}
		if c.CredentialsFile == "" {
			return errors.New("credentials_file is not set")
		}
	case ProviderCSV:
		if c.CSVDir == "" {
			return errors.New("csv_dir is not set")
		}
	default:
		return fmt.Errorf("unknown provider %q (expected sheets or csv)", c.Provider)
	}
	return nil
}
