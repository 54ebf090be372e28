package handlers

import (
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/app"
	furnitureController "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/controllers/furniture"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type FurnitureHandler struct {
	Handler
	controller furnitureController.FurnitureController
}

func NewFurnitureHandler(app app.App, router fiber.Router) *FurnitureHandler {
	log := logger.New("handlers").File("furniture_handler")
	return &FurnitureHandler{
		controller: *app.FurnitureController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *FurnitureHandler) Register() {
	// Public: the intake form loads the catalog before any authentication.
	h.router.Get("/furnitureItems", h.getFurnitureItems)
}

func (h *FurnitureHandler) getFurnitureItems(c *fiber.Ctx) error {
	log := h.log.Function("getFurnitureItems")

	items, err := h.controller.GetFurnitureItems(c.Context())
	if err != nil {
		log.Er("failed to get furniture items", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get furniture items"})
	}

	return c.JSON(items)
}
