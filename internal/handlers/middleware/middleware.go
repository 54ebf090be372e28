package middleware

import (
	"errors"
	"strings"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/config"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/auth"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// UserLocalsKey is where the auth middleware stores the resolved user record
// for downstream handlers.
const UserLocalsKey = "user"

type Middleware struct {
	config   config.Config
	verifier auth.Verifier
	userRepo repositories.UserRepository
	log      logger.Logger
}

func New(
	config config.Config,
	verifier auth.Verifier,
	userRepo repositories.UserRepository,
) Middleware {
	return Middleware{
		config:   config,
		verifier: verifier,
		userRepo: userRepo,
		log:      logger.New("middleware"),
	}
}

// RequireStaff admits staff and admin accounts. The token must verify against
// the identity provider and resolve to a stored user record.
func (m Middleware) RequireStaff(c *fiber.Ctx) error {
	return m.requireRole(c, RoleStaff, RoleAdmin)
}

// RequireAdmin admits admin accounts only.
func (m Middleware) RequireAdmin(c *fiber.Ctx) error {
	return m.requireRole(c, RoleAdmin)
}

func (m Middleware) requireRole(c *fiber.Ctx, roles ...string) error {
	log := m.log.Function("requireRole")

	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"message": "missing bearer token"})
	}

	uid, err := m.verifier.VerifyUID(token)
	if err != nil {
		log.Warn("failed to verify bearer token", "error", err)
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"message": "invalid bearer token"})
	}

	user, err := m.userRepo.GetByUID(c.Context(), uid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"message": "no account for this user"})
		}
		log.Er("failed to look up user", err, "uid", uid)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "failed to authorize request"})
	}

	for _, role := range roles {
		if user.Role == role {
			c.Locals(UserLocalsKey, *user)
			return c.Next()
		}
	}

	return c.Status(fiber.StatusForbidden).
		JSON(fiber.Map{"message": "insufficient permissions"})
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
