package extract

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ErrSheetNotFound is returned by a source that has no data for the requested sheet.
var ErrSheetNotFound = errors.New("sheet not found")

// Source fetches the full grid of one sheet. Row 0 is the header row.
type Source interface {
	Fetch(ctx context.Context, sheet string) ([][]string, error)
}

// NewSource builds the source selected by cfg.Provider.
func NewSource(ctx context.Context, cfg Config) (Source, error) {
	switch cfg.Provider {
	case ProviderSheets:
		return NewSheetsSource(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
	case ProviderCSV:
		return NewCSVSource(cfg.CSVDir, cfg.CSVEncoding)
	}
	return nil, fmt.Errorf("unknown source provider %q", cfg.Provider)
}

// SheetsSource reads from the Google Sheets values API.
type SheetsSource struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

// NewSheetsSource authenticates with a service account key file using the read-only scope.
func NewSheetsSource(ctx context.Context, spreadsheetID, credentialsFile string, opts ...option.ClientOption) (*SheetsSource, error) {
	opts = append([]option.ClientOption{
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	}, opts...)

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &SheetsSource{values: srv.Spreadsheets.Values, spreadsheetID: spreadsheetID}, nil
}

// Fetch reads columns A through Z of the sheet.
func (s *SheetsSource) Fetch(ctx context.Context, sheet string) ([][]string, error) {
	resp, err := s.values.Get(s.spreadsheetID, sheet+"!A:Z").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get values of %s: %w", sheet, err)
	}

	grid := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		grid[i] = cells
	}
	return grid, nil
}

// CSVSource reads "<dir>/<sheet file name>.csv", e.g. "mutasi_gudang.csv" for "Mutasi Gudang".
// UTF-8 and UTF-16 byte order marks are honoured; other files are decoded with the fallback encoding.
type CSVSource struct {
	dir      string
	fallback encoding.Encoding
}

// NewCSVSource resolves encodingName as a WHATWG label ("utf-8", "latin1", "windows-1252", ...).
func NewCSVSource(dir, encodingName string) (*CSVSource, error) {
	if encodingName == "" {
		encodingName = "utf-8"
	}
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unknown csv encoding %q: %w", encodingName, err)
	}
	return &CSVSource{dir: dir, fallback: enc}, nil
}

func (s *CSVSource) Fetch(_ context.Context, sheet string) ([][]string, error) {
	path := filepath.Join(s.dir, CSVFileName(sheet))
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	decoded := transform.NewReader(f, unicode.BOMOverride(s.fallback.NewDecoder()))
	r := csv.NewReader(decoded)
	// Sheets exports drop trailing empty cells, so row widths vary.
	r.FieldsPerRecord = -1

	var grid [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		grid = append(grid, row)
	}
	return grid, nil
}

// CSVFileName maps a sheet name to its csv file name.
func CSVFileName(sheet string) string {
	return strings.ReplaceAll(strings.ToLower(sheet), " ", "_") + ".csv"
}
