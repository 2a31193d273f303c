package extract

import (
	"context"
	"errors"
	"fmt"

	"inventory-sync/core/snapshot"

	"go.uber.org/zap"
)

// SheetResult reports what happened to one sheet.
type SheetResult struct {
	Sheet   string `json:"sheet"`
	Records int    `json:"records"`
	// Warning is set when the sheet was missing, empty or failed to fetch.
	Warning string `json:"warning,omitempty"`
}

// Result is the outcome of one extraction run, in sheet order.
type Result struct {
	Sheets []SheetResult `json:"sheets"`
}

// Total is the number of records written across all sheets.
func (r Result) Total() int {
	total := 0
	for _, s := range r.Sheets {
		total += s.Records
	}
	return total
}

// Extractor copies sheets from a Source into snapshot files.
type Extractor struct {
	source Source
	outDir string
	log    *zap.Logger
}

// New creates an Extractor writing to outDir.
func New(source Source, outDir string, log *zap.Logger) *Extractor {
	return &Extractor{source: source, outDir: outDir, log: log}
}

// Run fetches every sheet and rewrites the snapshot. A sheet that fails or has no
// rows is recorded as empty with a warning; the other sheets are still extracted.
// Only a failure to write the snapshot is returned as an error.
func (e *Extractor) Run(ctx context.Context, sheets []string) (Result, error) {
	var result Result
	data := make(map[string][]snapshot.Record, len(sheets))

	for _, sheet := range sheets {
		records, warning := e.extractSheet(ctx, sheet)
		data[sheet] = records
		result.Sheets = append(result.Sheets, SheetResult{Sheet: sheet, Records: len(records), Warning: warning})
	}

	if err := snapshot.Write(e.outDir, sheets, data); err != nil {
		return result, fmt.Errorf("write snapshot: %w", err)
	}
	return result, nil
}

func (e *Extractor) extractSheet(ctx context.Context, sheet string) ([]snapshot.Record, string) {
	grid, err := e.source.Fetch(ctx, sheet)
	if err != nil {
		level := e.log.Error
		if errors.Is(err, ErrSheetNotFound) {
			level = e.log.Warn
		}
		level("Failed to fetch sheet", zap.String("sheet", sheet), zap.Error(err))
		return []snapshot.Record{}, err.Error()
	}
	if len(grid) == 0 {
		e.log.Warn("No data found in sheet", zap.String("sheet", sheet))
		return []snapshot.Record{}, "no data found"
	}

	headers := grid[0]
	records := make([]snapshot.Record, 0, len(grid)-1)
	for _, row := range grid[1:] {
		records = append(records, snapshot.NewRecord(headers, row))
	}

	e.log.Info("Exported sheet", zap.String("sheet", sheet), zap.Int("records", len(records)))
	return records, ""
}
