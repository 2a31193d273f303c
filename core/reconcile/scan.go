package reconcile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"inventory-sync/core/assets"
	"inventory-sync/core/metrics"

	"golang.org/x/sync/errgroup"
)

// Scan lists objects under prefix (at most limit) and, concurrently, loads the
// store's asset references. Orphans are listed URLs with no identical reference;
// URLs are compared byte for byte, without normalization. Nothing is deleted.
func Scan(ctx context.Context, lister Lister, refs ReferenceSource, prefix string, limit int) (*Report, error) {
	var (
		resources  []assets.Resource
		references []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resources, err = lister.List(gctx, prefix, assets.ClampLimit(limit, assets.MaxListLimit))
		if err != nil {
			return fmt.Errorf("list storage: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		references, err = refs.AssetReferences(gctx)
		if err != nil {
			return fmt.Errorf("query asset references: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := Diff(urls(resources), references)
	report.Prefix = prefix
	report.ScannedAt = time.Now()
	metrics.OrphanObjects.WithLabelValues(prefix).Set(float64(report.OrphanCount))
	return report, nil
}

// Diff computes storage minus store as sets. Totals count distinct values.
func Diff(storageURLs, storeRefs []string) *Report {
	storage := toSet(storageURLs)
	store := toSet(storeRefs)

	orphans := make([]string, 0)
	for u := range storage {
		if _, ok := store[u]; !ok {
			orphans = append(orphans, u)
		}
	}
	sort.Strings(orphans)

	return &Report{
		TotalInStorage: len(storage),
		TotalInStore:   len(store),
		OrphanCount:    len(orphans),
		Orphans:        orphans,
	}
}

func urls(resources []assets.Resource) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.URL)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
