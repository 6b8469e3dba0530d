package modifier

import (
	"errors"

	"menu-manager/core/entry"
	"menu-manager/core/logger"
	"menu-manager/feature/modifier/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for modifier groups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the modifier routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/modifier")
	group.Post("/", h.HandleCreateModifier)
	group.Get("/", h.HandleListModifiers)
	group.Get("/:token", h.HandleGetModifier)
	group.Put("/:token", h.HandleUpdateModifier)
	group.Delete("/:token", h.HandleDeleteModifier)
}

// HandleCreateModifier creates a new modifier group.
// @Summary Create Modifier
// @Description Create a new modifier group and mint ledger entries for its items.
// @Tags modifier
// @Accept json
// @Produce json
// @Param modifier body models.Modifier true "Modifier"
// @Success 201 {object} models.Modifier "Created Modifier"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /modifier [post]
func (h *Handler) HandleCreateModifier(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload models.Modifier
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, err)
	}

	modifier, err := h.service.Create(c.Context(), &payload)
	if err != nil {
		return h.fail(c, l, "Modifier creation failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(modifier)
}

// HandleListModifiers lists modifier groups for a location.
// @Summary List Modifiers
// @Description List all modifier groups for a location, ordered by position.
// @Tags modifier
// @Produce json
// @Param location query string true "Location Token"
// @Success 200 {array} models.Modifier "Modifiers"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /modifier [get]
func (h *Handler) HandleListModifiers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	modifiers, err := h.service.List(c.Context(), c.Query("location"))
	if err != nil {
		return h.fail(c, l, "Modifier listing failed", err)
	}

	return c.JSON(modifiers)
}

// HandleGetModifier returns a single modifier group.
// @Summary Get Modifier
// @Description Get a single modifier group by token.
// @Tags modifier
// @Produce json
// @Param token path string true "Modifier Token"
// @Success 200 {object} models.Modifier "Modifier"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /modifier/{token} [get]
func (h *Handler) HandleGetModifier(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	modifier, err := h.service.Get(c.Context(), c.Params("token"))
	if err != nil {
		return h.fail(c, l, "Modifier lookup failed", err)
	}

	return c.JSON(modifier)
}

// HandleUpdateModifier replaces a modifier group.
// @Summary Update Modifier
// @Description Replace a modifier group and reconcile its items against the stored state.
// @Tags modifier
// @Accept json
// @Produce json
// @Param token path string true "Modifier Token"
// @Param modifier body models.Modifier true "Modifier"
// @Success 200 {object} models.Modifier "Updated Modifier"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /modifier/{token} [put]
func (h *Handler) HandleUpdateModifier(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload models.Modifier
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, err)
	}

	modifier, err := h.service.Update(c.Context(), c.Params("token"), &payload)
	if err != nil {
		return h.fail(c, l, "Modifier update failed", err)
	}

	return c.JSON(modifier)
}

// HandleDeleteModifier deletes a modifier group.
// @Summary Delete Modifier
// @Description Delete a modifier group and retire all of its ledger entries.
// @Tags modifier
// @Produce json
// @Param token path string true "Modifier Token"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /modifier/{token} [delete]
func (h *Handler) HandleDeleteModifier(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), c.Params("token")); err != nil {
		return h.fail(c, l, "Modifier deletion failed", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, message string, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, entry.ErrInvalidArgument):
		return badRequest(c, err)
	default:
		l.Error(message, zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
