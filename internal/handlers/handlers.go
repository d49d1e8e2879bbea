package handlers

import (
	"github.com/gofiber/fiber/v3"

	"sentimate/internal/models"
)

// currentUser returns the authenticated user loaded by the auth middleware,
// or nil for anonymous requests.
func currentUser(c fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
