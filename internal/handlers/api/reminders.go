package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"sentimate/internal/db"
	"sentimate/internal/models"
	"sentimate/internal/validation"
)

// ReminderHandler handles medication reminder CRUD via JSON API.
type ReminderHandler struct {
	db *db.DB
}

// NewReminderHandler creates a new reminder handler.
func NewReminderHandler(database *db.DB) *ReminderHandler {
	return &ReminderHandler{db: database}
}

// List returns the user's reminders ordered by time of day.
func (h *ReminderHandler) List(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reminders, err := h.db.GetRemindersForUser(c.Context(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch reminders")
	}
	return jsonSuccess(c, reminders)
}

// Create adds a medication reminder.
func (h *ReminderHandler) Create(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		MedicineName string `json:"medicine_name"`
		Time         string `json:"time"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if ok, reason := validation.ValidateMedicineName(body.MedicineName); !ok {
		return jsonError(c, fiber.StatusBadRequest, reason)
	}
	if ok, reason := validation.ValidateReminderTime(body.Time); !ok {
		return jsonError(c, fiber.StatusBadRequest, reason)
	}

	reminder := &models.Reminder{
		UserID:       user.ID,
		MedicineName: body.MedicineName,
		RemindAt:     body.Time,
	}
	if err := h.db.AddReminder(c.Context(), reminder); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create reminder")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "ok",
		"data":   reminder,
	})
}

// Delete removes one of the user's reminders.
func (h *ReminderHandler) Delete(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid reminder id")
	}

	if err := h.db.DeleteReminder(c.Context(), id, user.ID); err != nil {
		if errors.Is(err, db.ErrReminderNotFound) {
			return jsonError(c, fiber.StatusNotFound, "reminder not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete reminder")
	}
	return jsonSuccess(c, fiber.Map{"deleted": id})
}
