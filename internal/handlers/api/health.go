package api

import (
	"github.com/gofiber/fiber/v3"

	"sentimate/internal/db"
)

// StatusHandler reports service health.
type StatusHandler struct {
	db *db.DB
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(database *db.DB) *StatusHandler {
	return &StatusHandler{db: database}
}

// Healthz verifies database connectivity.
func (h *StatusHandler) Healthz(c fiber.Ctx) error {
	if err := h.db.Pool.Ping(c.Context()); err != nil {
		return jsonError(c, fiber.StatusServiceUnavailable, "database unreachable")
	}
	return jsonSuccess(c, fiber.Map{"healthy": true})
}
