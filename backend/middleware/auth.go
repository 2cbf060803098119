package middleware

import (
	"errors"

	"github.com/thepritampatil/java-pathpro-app/backend/config"
	"github.com/thepritampatil/java-pathpro-app/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware verifies the bearer token and stores the authenticated user
// id in c.Locals("userID"). A missing token is 401, a present but invalid or
// expired one is 403.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			if errors.Is(err, utils.ErrMissingToken) {
				return utils.Unauthorized(c, "Authentication required")
			}
			return utils.Forbidden(c, "Invalid or expired token")
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

// UserID returns the user id stored by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals("userID").(uint)
	return userID
}
