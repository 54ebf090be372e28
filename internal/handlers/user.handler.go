package handlers

import (
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/app"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/handlers/middleware"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Handler
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	log := logger.New("handlers").File("user_handler")
	return &UserHandler{
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserHandler) Register() {
	users := h.router.Group("/user")
	users.Get("/whoami", h.middleware.RequireStaff, h.whoami)
}

// whoami returns the user record the auth middleware resolved, so the
// dashboard can branch on role.
func (h *UserHandler) whoami(c *fiber.Ctx) error {
	user, ok := c.Locals(middleware.UserLocalsKey).(User)
	if !ok || user.ID == "" {
		h.log.Function("whoami").ErMsg("No user found in locals")
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to get user"})
	}

	return c.JSON(user)
}
