package menu

import (
	"errors"

	"menu-manager/core/entry"
	"menu-manager/core/logger"
	"menu-manager/feature/menu/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for menus.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the menu routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/menu")
	group.Post("/", h.HandleCreateMenu)
	group.Get("/", h.HandleListMenus)
	group.Get("/:token", h.HandleGetMenu)
	group.Put("/:token", h.HandleUpdateMenu)
	group.Delete("/:token", h.HandleDeleteMenu)

	group.Post("/:token/item", h.HandleCreateItem)
	group.Put("/:token/item/:item", h.HandleUpdateItem)
	group.Delete("/:token/item/:item", h.HandleDeleteItem)

	group.Post("/:token/category", h.HandleCreateCategory)
	group.Put("/:token/category/:category", h.HandleUpdateCategory)
	group.Delete("/:token/category/:category", h.HandleDeleteCategory)
}

// HandleCreateMenu creates a new menu.
// @Summary Create Menu
// @Description Create a new menu and mint ledger entries for its items.
// @Tags menu
// @Accept json
// @Produce json
// @Param menu body models.Menu true "Menu"
// @Success 201 {object} models.Menu "Created Menu"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu [post]
func (h *Handler) HandleCreateMenu(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload models.Menu
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, err)
	}

	menu, err := h.service.Create(c.Context(), &payload)
	if err != nil {
		return h.fail(c, l, "Menu creation failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(menu)
}

// HandleListMenus lists menus for a location.
// @Summary List Menus
// @Description List all menus for a location, ordered by position.
// @Tags menu
// @Produce json
// @Param location query string true "Location Token"
// @Success 200 {array} models.Menu "Menus"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu [get]
func (h *Handler) HandleListMenus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	menus, err := h.service.List(c.Context(), c.Query("location"))
	if err != nil {
		return h.fail(c, l, "Menu listing failed", err)
	}

	return c.JSON(menus)
}

// HandleGetMenu returns a single menu.
// @Summary Get Menu
// @Description Get a single menu by token.
// @Tags menu
// @Produce json
// @Param token path string true "Menu Token"
// @Success 200 {object} models.Menu "Menu"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{token} [get]
func (h *Handler) HandleGetMenu(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	menu, err := h.service.Get(c.Context(), c.Params("token"))
	if err != nil {
		return h.fail(c, l, "Menu lookup failed", err)
	}

	return c.JSON(menu)
}

// HandleUpdateMenu replaces a menu.
// @Summary Update Menu
// @Description Replace a menu and reconcile its items against the stored state.
// @Tags menu
// @Accept json
// @Produce json
// @Param token path string true "Menu Token"
// @Param menu body models.Menu true "Menu"
// @Success 200 {object} models.Menu "Updated Menu"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{token} [put]
func (h *Handler) HandleUpdateMenu(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload models.Menu
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, err)
	}

	menu, err := h.service.Update(c.Context(), c.Params("token"), &payload)
	if err != nil {
		return h.fail(c, l, "Menu update failed", err)
	}

	return c.JSON(menu)
}

// HandleDeleteMenu deletes a menu.
// @Summary Delete Menu
// @Description Delete a menu and retire all of its ledger entries.
// @Tags menu
// @Produce json
// @Param token path string true "Menu Token"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{token} [delete]
func (h *Handler) HandleDeleteMenu(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), c.Params("token")); err != nil {
		return h.fail(c, l, "Menu deletion failed", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCreateItem appends an item to a menu.
// @Summary Create Menu Item
// @Description Append an item to a menu and mint ledger entries for its slots.
// @Tags menu
// @Accept json
// @Produce json
// @Param token path string true "Menu Token"
// @Param item body entry.MenuItem true "Menu Item"
// @Success 201 {object} entry.MenuItem "Created Item"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{token}/item [post]
func (h *Handler) HandleCreateItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload entry.MenuItem
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, err)
	}

	item, err := h.service.CreateItem(c.Context(), c.Params("token"), &payload)
	if err != nil {
		return h.fail(c, l, "Menu item creation failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem replaces an item in a menu.
// @Summary Update Menu Item
// @Description Replace a menu item, reconciling its slots against the stored state.
// @Tags menu
// @Accept json
// @Produce json
// @Param token path string true "Menu Token"
// @Param item path string true "Item Token"
// @Param payload body entry.MenuItem true "Menu Item"
// @Success 200 {object} entry.MenuItem "Updated Item"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{token}/item/{item} [put]
func (h *Handler) HandleUpdateItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload entry.MenuItem
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, err)
	}

	item, err := h.service.UpdateItem(c.Context(), c.Params("token"), c.Params("item"), &payload)
	if err != nil {
		return h.fail(c, l, "Menu item update failed", err)
	}

	return c.JSON(item)
}

// HandleDeleteItem removes an item from a menu.
// @Summary Delete Menu Item
// @Description Remove a menu item and retire its ledger entries.
// @Tags menu
// @Produce json
// @Param token path string true "Menu Token"
// @Param item path string true "Item Token"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{token}/item/{item} [delete]
func (h *Handler) HandleDeleteItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.DeleteItem(c.Context(), c.Params("token"), c.Params("item")); err != nil {
		return h.fail(c, l, "Menu item deletion failed", err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCreateCategory appends a category to a menu.
// @Summary Create Menu Category
// @Description Append a category to a menu.
// @Tags menu
// @Accept json
// @Produce json
// @Param token path string true "Menu Token"
// @Param category body models.Category true "Category"
// @Success 201 {object} models.Category "Created Category"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{token}/category [post]
func (h *Handler) HandleCreateCategory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, err)
	}

	category, err := h.service.CreateCategory(c.Context(), c.Params("token"), payload)
	if err != nil {
		return h.fail(c, l, "Category creation failed", err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory replaces a category in a menu.
// @Summary Update Menu Category
// @Description Replace a menu category by token.
// @Tags menu
// @Accept json
// @Produce json
// @Param token path string true "Menu Token"
// @Param category path string true "Category Token"
// @Param payload body models.Category true "Category"
// @Success 200 {object} models.Category "Updated Category"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{token}/category/{category} [put]
func (h *Handler) HandleUpdateCategory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var payload models.Category
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, err)
	}

	category, err := h.service.UpdateCategory(c.Context(), c.Params("token"), c.Params("category"), payload)
	if err != nil {
		return h.fail(c, l, "Category update failed", err)
	}

	return c.JSON(category)
}

// HandleDeleteCategory removes a category from a menu.
// @Summary Delete Menu Category
// @Description Remove a menu category by token.
// @Tags menu
// @Produce json
// @Param token path string true "Menu Token"
// @Param category path string true "Category Token"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /menu/{token}/category/{category} [delete]
func (h *Handler) HandleDeleteCategory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.DeleteCategory(c.Context(), c.Params("token"), c.Params("category")); err != nil {
		return h.fail(c, l, "Category deletion failed", err)
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
