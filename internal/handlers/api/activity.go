package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"sentimate/internal/config"
	"sentimate/internal/db"
	"sentimate/internal/models"
)

// ActivityHandler tracks user activity for the inactivity watchdog.
type ActivityHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(database *db.DB, cfg *config.Config) *ActivityHandler {
	return &ActivityHandler{db: database, cfg: cfg}
}

// Touch records that the user is active right now.
func (h *ActivityHandler) Touch(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	activity, err := h.db.TouchActivity(c.Context(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to record activity")
	}
	return jsonSuccess(c, activity)
}

// Status reports how long the user has been idle and whether the threshold
// has been crossed.
func (h *ActivityHandler) Status(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	activity, err := h.db.GetActivity(c.Context(), user.ID)
	if err != nil {
		if errors.Is(err, db.ErrActivityNotFound) {
			return jsonSuccess(c, fiber.Map{
				"tracked":  false,
				"inactive": false,
			})
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch activity")
	}

	idle := time.Since(activity.LastActivity)
	return jsonSuccess(c, fiber.Map{
		"tracked":       true,
		"last_activity": activity.LastActivity,
		"idle_seconds":  int(idle.Seconds()),
		"inactive":      idle >= h.cfg.InactivityThreshold,
	})
}

// Reset clears the inactivity state, treating the user as active again.
func (h *ActivityHandler) Reset(c fiber.Ctx) error {
	return h.Touch(c)
}
