package inventory

import (
	"errors"

	"inventory-sync/core/logger"
	"inventory-sync/core/model"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for entity updates and deletes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the data routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/data")
	group.Put("/:kind/:id", h.HandleUpdate)
	group.Delete("/:kind/:id", h.HandleDelete)
}

// HandleUpdate updates one entity.
// @Summary Update Entity
// @Description Updates columns of one row. Replacing the asset column deletes the previous object after the update commits.
// @Tags data
// @Accept json
// @Produce json
// @Param kind path string true "Entity kind (users, vendor, barang, pembelian, mutasi_gudang)"
// @Param id path string true "Natural key"
// @Param fields body map[string]interface{} true "Column values"
// @Success 200 {object} MutationResult
// @Failure 400 {object} map[string]string "Invalid kind or field"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/data/{kind}/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	kind, err := model.ParseKind(c.Params("kind"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	var fields map[string]any
	if err := c.BodyParser(&fields); err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	res, err := h.service.Update(c.UserContext(), kind, c.Params("id"), fields)
	if err != nil {
		return h.mutationError(c, l, "update", err)
	}
	return c.JSON(fiber.Map{"success": true, "result": res})
}

// HandleDelete deletes one entity.
// @Summary Delete Entity
// @Description Deletes one row, then the object its asset column referenced.
// @Tags data
// @Produce json
// @Param kind path string true "Entity kind"
// @Param id path string true "Natural key"
// @Success 200 {object} MutationResult
// @Failure 400 {object} map[string]string "Invalid kind"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/data/{kind}/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	kind, err := model.ParseKind(c.Params("kind"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	res, err := h.service.Delete(c.UserContext(), kind, c.Params("id"))
	if err != nil {
		return h.mutationError(c, l, "delete", err)
	}
	return c.JSON(fiber.Map{"success": true, "result": res})
}

func (h *Handler) mutationError(c *fiber.Ctx, l *zap.Logger, op string, err error) error {
	var fieldErr *FieldError
	switch {
	case errors.Is(err, ErrNotFound):
		return fail(c, fiber.StatusNotFound, err)
	case errors.Is(err, ErrUnknownKind), errors.As(err, &fieldErr):
		return fail(c, fiber.StatusBadRequest, err)
	}
	l.Error("Entity "+op+" failed", zap.String("kind", c.Params("kind")), zap.String("key", c.Params("id")), zap.Error(err))
	return fail(c, fiber.StatusInternalServerError, err)
}

func fail(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": err.Error()})
}
