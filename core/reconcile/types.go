package reconcile

import (
	"context"
	"time"

	"inventory-sync/core/assets"
)

// Lister lists stored objects. assets.Store satisfies it.
type Lister interface {
	List(ctx context.Context, prefix string, limit int) ([]assets.Resource, error)
}

// ReferenceSource returns every non-null asset reference held by the store,
// across all asset-bearing kinds.
type ReferenceSource interface {
	AssetReferences(ctx context.Context) ([]string, error)
}

// Report is the outcome of one orphan scan. It is advisory: the two reads
// behind it are not taken from one consistent snapshot.
type Report struct {
	Prefix         string    `json:"prefix"`
	TotalInStorage int       `json:"totalInStorage"`
	TotalInStore   int       `json:"totalInStore"`
	OrphanCount    int       `json:"orphanCount"`
	Orphans        []string  `json:"orphans"`
	ScannedAt      time.Time `json:"scannedAt"`
}
