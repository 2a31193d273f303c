package images

import (
	"context"
	"strings"

	"inventory-sync/core/assets"
	"inventory-sync/core/reconcile"

	"go.uber.org/zap"
)

// Service exposes the asset lifecycle and the orphan scan to HTTP callers.
type Service struct {
	manager *assets.Manager
	store   assets.Store
	scans   *reconcile.Cache
	cfg     assets.Config
	logger  *zap.Logger
}

// NewService creates a new images service.
func NewService(manager *assets.Manager, store assets.Store, scans *reconcile.Cache, cfg assets.Config, logger *zap.Logger) *Service {
	return &Service{manager: manager, store: store, scans: scans, cfg: cfg, logger: logger}
}

// DeleteByKey removes one object by its derived key.
func (s *Service) DeleteByKey(ctx context.Context, key string) assets.Result {
	res := s.manager.DeleteByKey(ctx, key)
	s.afterDelete(res)
	return res
}

// DeleteByURL removes the object a public URL points at.
func (s *Service) DeleteByURL(ctx context.Context, url string) (assets.Result, error) {
	res, err := s.manager.DeleteByURL(ctx, url)
	if err != nil {
		return res, err
	}
	s.afterDelete(res)
	return res, nil
}

// List returns objects under prefix. Empty prefix and non-positive limit use the
// configured defaults.
func (s *Service) List(ctx context.Context, prefix string, limit int) ([]assets.Resource, error) {
	prefix, limit = s.defaults(prefix, limit)
	return s.store.List(ctx, prefix, limit)
}

// CleanupCheck reports objects under prefix that no stored entity references.
func (s *Service) CleanupCheck(ctx context.Context, prefix string, limit int) (*reconcile.Report, error) {
	prefix, limit = s.defaults(prefix, limit)
	return s.scans.GetOrScan(ctx, prefix, limit)
}

func (s *Service) defaults(prefix string, limit int) (string, int) {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = s.cfg.Prefix
	}
	return prefix, assets.ClampLimit(limit, s.cfg.ListLimit)
}

// afterDelete drops cached scan reports once storage changed.
func (s *Service) afterDelete(res assets.Result) {
	if res.Outcome == assets.OutcomeDeleted {
		s.scans.Invalidate()
	}
}
