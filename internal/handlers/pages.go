package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"sentimate/internal/chatbot"
	"sentimate/internal/config"
	"sentimate/internal/db"
	"sentimate/internal/models"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	db  *db.DB
	cfg *config.Config
}

// NewPageHandler creates a new page handler.
func NewPageHandler(database *db.DB, cfg *config.Config) *PageHandler {
	return &PageHandler{db: database, cfg: cfg}
}

// Home renders the landing page.
func (h *PageHandler) Home(c fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"User": currentUser(c),
	})
}

// Chat renders the conversation page with the user's recent history.
func (h *PageHandler) Chat(c fiber.Ctx) error {
	user := currentUser(c)

	data := fiber.Map{
		"User":             user,
		"MaxMessageLength": h.cfg.MaxMessageLength,
		"TTSEnabled":       h.cfg.TTSEnabled,
	}

	history, err := h.db.GetChatHistory(c.Context(), user.ID, 50)
	if err == nil {
		data["History"] = history
	}

	lang, err := h.db.GetPreference(c.Context(), user.ID, models.PrefLanguage)
	if err != nil {
		if !errors.Is(err, db.ErrPreferenceNotFound) {
			return err
		}
		lang = string(chatbot.LanguageEnglish)
	}
	data["Language"] = lang

	return c.Render("chat", data)
}

// Medication renders the medication reminder page.
func (h *PageHandler) Medication(c fiber.Ctx) error {
	user := currentUser(c)

	data := fiber.Map{"User": user}
	reminders, err := h.db.GetRemindersForUser(c.Context(), user.ID)
	if err == nil {
		data["Reminders"] = reminders
	}

	return c.Render("medication", data)
}

// Games renders the memory games page.
func (h *PageHandler) Games(c fiber.Ctx) error {
	return c.Render("games", fiber.Map{
		"User": currentUser(c),
	})
}

// Login renders the login form.
func (h *PageHandler) Login(c fiber.Ctx) error {
	if currentUser(c) != nil {
		return c.Redirect().To("/chat")
	}
	return c.Render("login", fiber.Map{
		"OIDCEnabled": h.cfg.IsOIDCEnabled(),
	})
}

// Register renders the registration form.
func (h *PageHandler) Register(c fiber.Ctx) error {
	if currentUser(c) != nil {
		return c.Redirect().To("/chat")
	}
	return c.Render("register", fiber.Map{})
}
