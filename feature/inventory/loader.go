package inventory

import (
	"inventory-sync/core/assets"
	"inventory-sync/core/schema"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the inventory feature. It is disabled without a database.
// scans may be nil.
func NewFeature(db *gorm.DB, mgr *assets.Manager, hasher schema.Hasher, scans ScanCache, logger *zap.Logger) *Feature {
	svc := NewService(db, mgr, hasher, logger)
	if scans != nil {
		svc.WithScanCache(scans)
	}
	return &Feature{service: svc, handler: NewHandler(svc)}
}

func (f *Feature) Name() string {
	return "inventory"
}

func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
