package integrity

import (
	"context"

	"inventory-sync/core/assets"
	"inventory-sync/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report combines every check.
type Report struct {
	Healthy bool                 `json:"healthy"`
	Schema  *checks.SchemaReport `json:"schema,omitempty"`
	Storage checks.StorageReport `json:"storage"`
	Errors  []string             `json:"errors,omitempty"`
}

// Service handles integrity checks.
type Service struct {
	db       *gorm.DB
	store    assets.Store
	provider string
	logger   *zap.Logger
}

// NewService creates a new integrity service. db and store may be nil when
// unavailable; the matching check then reports the failure.
func NewService(db *gorm.DB, store assets.Store, provider string, logger *zap.Logger) *Service {
	return &Service{db: db, store: store, provider: provider, logger: logger}
}

// CheckSchema compares the store schema with the entity models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckStorage pings the asset store.
func (s *Service) CheckStorage(ctx context.Context) checks.StorageReport {
	return checks.CheckStorage(ctx, s.store, s.provider)
}

// CheckAll runs every check.
func (s *Service) CheckAll(ctx context.Context) *Report {
	report := &Report{Healthy: true}

	schema, err := s.CheckSchema()
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		report.Healthy = false
	} else {
		report.Schema = schema
		report.Healthy = schema.Matched
	}

	report.Storage = s.CheckStorage(ctx)
	if !report.Storage.Reachable {
		report.Healthy = false
	}
	return report
}
