package media

import (
	"errors"
	"io"

	"menu-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for media objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the media routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/media")
	group.Get("/", h.HandleListMedia)
	group.Put("/:name", h.HandleUploadMedia)
	group.Get("/:name", h.HandleGetMedia)
	group.Delete("/:name", h.HandleDeleteMedia)
}

// HandleListMedia lists stored media objects.
// @Summary List Media
// @Description List all stored menu imagery objects.
// @Tags media
// @Produce json
// @Success 200 {array} models.Object "Media Objects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media [get]
func (h *Handler) HandleListMedia(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	objects, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Media listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(objects)
}

// HandleUploadMedia stores one media object.
// @Summary Upload Media
// @Description Upload a menu imagery object by name.
// @Tags media
// @Accept octet-stream
// @Produce json
// @Param name path string true "Object Name"
// @Success 201 {object} models.Object "Stored Object"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media/{name} [put]
func (h *Handler) HandleUploadMedia(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	object, err := h.service.Upload(c.Context(), c.Params("name"), c.Get(fiber.HeaderContentType), c.Body())
	if err != nil {
		if errors.Is(err, ErrInvalidName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Media upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(object)
}

// HandleGetMedia streams one media object.
// @Summary Get Media
// @Description Stream a stored menu imagery object by name.
// @Tags media
// @Produce octet-stream
// @Param name path string true "Object Name"
// @Success 200 {file} binary "Object Body"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media/{name} [get]
func (h *Handler) HandleGetMedia(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	object, err := h.service.Get(c.Context(), c.Params("name"))
	if err != nil {
		if errors.Is(err, ErrInvalidName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Media lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer object.Close()

	body, err := io.ReadAll(object)
	if err != nil {
		l.Error("Media read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Send(body)
}

// HandleDeleteMedia removes one media object.
// @Summary Delete Media
// @Description Delete a stored menu imagery object by name.
// @Tags media
// @Produce json
// @Param name path string true "Object Name"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /media/{name} [delete]
func (h *Handler) HandleDeleteMedia(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), c.Params("name")); err != nil {
		if errors.Is(err, ErrInvalidName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Media deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
