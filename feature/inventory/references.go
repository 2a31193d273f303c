package inventory

import (
	"context"
	"fmt"

	"inventory-sync/core/model"

	"gorm.io/gorm"
)

// ReferenceLoader reads every asset reference held by the store. It backs the
// orphan scan.
type ReferenceLoader struct {
	db *gorm.DB
}

// NewReferenceLoader creates a ReferenceLoader.
func NewReferenceLoader(db *gorm.DB) *ReferenceLoader {
	return &ReferenceLoader{db: db}
}

// AssetReferences returns the non-null, non-empty asset columns of every
// asset-bearing kind.
func (r *ReferenceLoader) AssetReferences(ctx context.Context) ([]string, error) {
	var out []string
	for _, kind := range model.AssetKinds() {
		col, _ := kind.AssetColumn()
		var refs []string
		err := r.db.WithContext(ctx).Table(kind.Table()).
			Where(col+" IS NOT NULL AND "+col+" <> ''").
			Pluck(col, &refs).Error
		if err != nil {
			return nil, fmt.Errorf("load %s.%s: %w", kind.Table(), col, err)
		}
		out = append(out, refs...)
	}
	return out, nil
}
