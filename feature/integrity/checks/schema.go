package checks

import (
	"fmt"

	"inventory-sync/core/database"
	"inventory-sync/core/model"

	"gorm.io/gorm"
)

// Table statuses.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusMissing = "missing"
)

// SchemaReport compares the store schema with the canonical entity models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"`
}

// CheckSchema verifies every kind's table exists with every column its gorm model maps.
func CheckSchema(db *gorm.DB) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, kind := range model.LoadOrder {
		expected, err := modelColumns(db, kind)
		if err != nil {
			return nil, err
		}

		actual, err := database.GetTableColumns(db, kind.Table())
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", kind.Table(), err))
			report.Tables[kind.Table()] = TableReport{MissingColumns: expected, Status: StatusError}
			report.Matched = false
			continue
		}
		if len(actual) == 0 {
			report.Tables[kind.Table()] = TableReport{MissingColumns: expected, Status: StatusMissing}
			report.Matched = false
			continue
		}

		present := make(map[string]struct{}, len(actual))
		for _, col := range actual {
			present[col.Field] = struct{}{}
		}

		tbl := TableReport{MissingColumns: []string{}, Status: StatusOK}
		for _, col := range expected {
			if _, ok := present[col]; !ok {
				tbl.MissingColumns = append(tbl.MissingColumns, col)
				tbl.Status = StatusError
				report.Matched = false
			}
		}
		report.Tables[kind.Table()] = tbl
	}

	return report, nil
}

func modelColumns(db *gorm.DB, kind model.Kind) ([]string, error) {
	entity, ok := model.New(kind)
	if !ok {
		return nil, fmt.Errorf("no model for kind %s", kind)
	}
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(entity); err != nil {
		return nil, fmt.Errorf("parse %s model: %w", kind, err)
	}
	return append([]string(nil), stmt.Schema.DBNames...), nil
}
