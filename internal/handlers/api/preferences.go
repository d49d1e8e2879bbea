package api

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	"sentimate/internal/chatbot"
	"sentimate/internal/db"
	"sentimate/internal/models"
)

// PreferenceHandler manages per-user settings.
type PreferenceHandler struct {
	db *db.DB
}

// NewPreferenceHandler creates a new preference handler.
func NewPreferenceHandler(database *db.DB) *PreferenceHandler {
	return &PreferenceHandler{db: database}
}

// SetLanguage updates the user's preferred conversation language.
func (h *PreferenceHandler) SetLanguage(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var body struct {
		Language string `json:"language"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	lang := chatbot.Language(body.Language)
	if !lang.Valid() {
		return jsonError(c, fiber.StatusBadRequest, "language must be \"english\" or \"tamil\"")
	}

	if err := h.db.SetPreference(c.Context(), user.ID, models.PrefLanguage, string(lang)); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save preference")
	}
	return jsonSuccess(c, fiber.Map{"language": lang})
}

// GetLanguage returns the user's preferred conversation language.
func (h *PreferenceHandler) GetLanguage(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	lang, err := h.db.GetPreferenceOrDefault(c.Context(), user.ID, models.PrefLanguage, string(chatbot.LanguageEnglish))
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch preference")
	}
	return jsonSuccess(c, fiber.Map{"language": lang})
}
