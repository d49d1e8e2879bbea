package api

import (
	"github.com/gofiber/fiber/v3"
)

// jsonSuccess wraps data in the {"status":"ok","data":...} envelope shared
// by the JSON API.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError sends the error envelope with the given status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}
