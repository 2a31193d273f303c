package images

import (
	"errors"
	"net/url"

	"inventory-sync/core/assets"
	"inventory-sync/core/logger"
	"inventory-sync/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stored images.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the image routes. Listing and the cleanup check are
// admin only.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/images")
	group.Get("/list", auth.RequireRole(auth.RoleAdmin), h.HandleList)
	group.Get("/cleanup-check", auth.RequireRole(auth.RoleAdmin), h.HandleCleanupCheck)
	group.Post("/delete-by-url", h.HandleDeleteByURL)
	group.Delete("/:key", h.HandleDeleteByKey)
}

type deleteByURLRequest struct {
	URL string `json:"url"`
}

// HandleDeleteByKey deletes one image by key.
// @Summary Delete Image
// @Description Deletes the object with the given (URL encoded) key, e.g. trk-inventory%2Fbarang%2Fimage123.
// @Tags images
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Failure 500 {object} map[string]interface{} "Storage Error"
// @Router /api/images/{key} [delete]
func (h *Handler) HandleDeleteByKey(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	key, err := url.PathUnescape(c.Params("key"))
	if err != nil || key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid key"})
	}

	res := h.service.DeleteByKey(c.UserContext(), key)
	body := fiber.Map{
		"success": res.Outcome == assets.OutcomeDeleted,
		"outcome": res.Outcome,
		"key":     res.Key,
	}
	switch res.Outcome {
	case assets.OutcomeNotFound:
		return c.Status(fiber.StatusNotFound).JSON(body)
	case assets.OutcomeFailed:
		l.Error("Image deletion failed", zap.String("key", key), zap.Error(res.Err))
		body["error"] = res.Err.Error()
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
	return c.JSON(body)
}

// HandleDeleteByURL deletes the image a public URL points at.
// @Summary Delete Image By URL
// @Description Derives the object key from a public asset URL and deletes it.
// @Tags images
// @Accept json
// @Produce json
// @Param request body deleteByURLRequest true "Public URL"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 400 {object} map[string]interface{} "Missing or invalid URL"
// @Failure 404 {object} map[string]interface{} "Not Found"
// @Router /api/images/delete-by-url [post]
func (h *Handler) HandleDeleteByURL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req deleteByURLRequest
	if err := c.BodyParser(&req); err != nil || req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "url is required"})
	}

	res, err := h.service.DeleteByURL(c.UserContext(), req.URL)
	if errors.Is(err, assets.ErrCannotDeriveKey) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	body := fiber.Map{
		"success":    res.Outcome == assets.OutcomeDeleted,
		"outcome":    res.Outcome,
		"derivedKey": res.Key,
	}
	switch res.Outcome {
	case assets.OutcomeNotFound:
		return c.Status(fiber.StatusNotFound).JSON(body)
	case assets.OutcomeFailed:
		l.Error("Image deletion failed", zap.String("url", req.URL), zap.Error(res.Err))
		body["error"] = res.Err.Error()
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
	return c.JSON(body)
}

// HandleList lists stored images.
// @Summary List Images
// @Description Lists objects under a prefix (admin only).
// @Tags images
// @Produce json
// @Param prefix query string false "Folder prefix"
// @Param limit query int false "Maximum results (at most 500)"
// @Success 200 {object} map[string]interface{} "Images"
// @Failure 403 {object} map[string]interface{} "Admin only"
// @Failure 500 {object} map[string]interface{} "Storage Error"
// @Router /api/images/list [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	resources, err := h.service.List(c.UserContext(), c.Query("prefix"), c.QueryInt("limit"))
	if err != nil {
		l.Error("Image listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if resources == nil {
		resources = []assets.Resource{}
	}
	return c.JSON(fiber.Map{"success": true, "count": len(resources), "images": resources})
}

// HandleCleanupCheck reports orphaned images.
// @Summary Orphan Image Report
// @Description Compares stored objects with the asset references in the database. Nothing is deleted (admin only).
// @Tags images
// @Produce json
// @Param prefix query string false "Folder prefix"
// @Param limit query int false "Maximum objects scanned (at most 500)"
// @Success 200 {object} reconcile.Report
// @Failure 403 {object} map[string]interface{} "Admin only"
// @Failure 500 {object} map[string]interface{} "Scan Error"
// @Router /api/images/cleanup-check [get]
func (h *Handler) HandleCleanupCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CleanupCheck(c.UserContext(), c.Query("prefix"), c.QueryInt("limit"))
	if err != nil {
		l.Error("Orphan scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": err.Error()})
	}
	if report.OrphanCount > 0 {
		l.Warn("Orphaned images detected", zap.String("prefix", report.Prefix), zap.Int("count", report.OrphanCount))
	}
	return c.JSON(fiber.Map{
		"success":        true,
		"prefix":         report.Prefix,
		"totalInStorage": report.TotalInStorage,
		"totalInStore":   report.TotalInStore,
		"orphanCount":    report.OrphanCount,
		"orphans":        report.Orphans,
		"scannedAt":      report.ScannedAt,
	})
}
