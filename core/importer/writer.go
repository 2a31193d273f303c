package importer

import (
	"context"
	"fmt"

	"inventory-sync/core/database"
	"inventory-sync/core/model"

	"gorm.io/gorm"
)

// Writer persists entities.
type Writer interface {
	// Insert adds one entity. It returns ErrDuplicateKey (possibly wrapped) when the
	// natural key exists and a *StoreWriteError for anything else.
	Insert(ctx context.Context, entity model.Entity) error
	// RefreshAggregates runs the post-load refresh statement.
	RefreshAggregates(ctx context.Context, statement string) error
}

// GormWriter inserts with a plain INSERT so the store's unique index is the
// conflict check, which keeps concurrent workers safe.
type GormWriter struct {
	db *gorm.DB
}

// NewGormWriter creates a writer on db.
func NewGormWriter(db *gorm.DB) *GormWriter {
	return &GormWriter{db: db}
}

func (w *GormWriter) Insert(ctx context.Context, entity model.Entity) error {
	err := w.db.WithContext(ctx).Create(entity).Error
	if err == nil {
		return nil
	}
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %s %q", ErrDuplicateKey, entity.Kind(), entity.NaturalKey())
	}
	return &StoreWriteError{Kind: entity.Kind(), Key: entity.NaturalKey(), Err: err}
}

func (w *GormWriter) RefreshAggregates(ctx context.Context, statement string) error {
	if err := w.db.WithContext(ctx).Exec(statement).Error; err != nil {
		return fmt.Errorf("refresh aggregates: %w", err)
	}
	return nil
}
