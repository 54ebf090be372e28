package handlers

import (
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/app"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/handlers/middleware"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func Router(router fiber.Router, app *app.App) error {
	api := router.Group("/api")
	HealthHandler(api, app.Config)
	NewVSRHandler(*app, api).Register()
	NewFurnitureHandler(*app, api).Register()
	NewUserHandler(*app, api).Register()

	return nil
}
