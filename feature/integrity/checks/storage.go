package checks

import (
	"context"

	"inventory-sync/core/assets"
)

// StorageReport tells whether the asset store answered with the configured credentials.
type StorageReport struct {
	Provider  string `json:"provider"`
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}

// CheckStorage pings the asset store.
func CheckStorage(ctx context.Context, store assets.Store, provider string) StorageReport {
	report := StorageReport{Provider: provider}
	if store == nil {
		report.Error = "asset store is not configured"
		return report
	}
	if err := store.Ping(ctx); err != nil {
		report.Error = err.Error()
		return report
	}
	report.Reachable = true
	return report
}
