package api

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"sentimate/internal/chatbot"
	"sentimate/internal/config"
	"sentimate/internal/db"
	"sentimate/internal/metrics"
	"sentimate/internal/models"
	"sentimate/internal/validation"
)

// historyTurns is how much prior conversation is fed to the engine.
const historyTurns = 10

// ChatHandler serves the conversation endpoint.
type ChatHandler struct {
	db     *db.DB
	cfg    *config.Config
	engine *chatbot.Engine
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(database *db.DB, cfg *config.Config, engine *chatbot.Engine) *ChatHandler {
	return &ChatHandler{db: database, cfg: cfg, engine: engine}
}

// Chat generates a reply for the user's message and records both turns.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	// Message is a pointer so a missing or non-string value is
	// distinguishable from an empty message, which has its own reply.
	var body struct {
		Message        *string `json:"message"`
		ForcedLanguage string  `json:"forced_language"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil || body.Message == nil {
		return jsonError(c, fiber.StatusBadRequest, chatbot.ErrInvalidInput.Error())
	}

	// An empty message gets the engine's fixed "I'm here to listen" reply,
	// so only non-empty messages are validated here.
	message := *body.Message
	if strings.TrimSpace(message) != "" {
		if ok, reason := validation.ValidateMessage(message, h.cfg.MaxMessageLength); !ok {
			return jsonError(c, fiber.StatusBadRequest, reason)
		}
	}

	req := chatbot.Request{
		Message:        message,
		Username:       user.Username,
		ForcedLanguage: chatbot.Language(body.ForcedLanguage),
	}

	if req.ForcedLanguage == "" {
		if lang, err := h.db.GetPreferenceOrDefault(c.Context(), user.ID, models.PrefLanguage, ""); err == nil && lang != "" {
			req.ForcedLanguage = chatbot.Language(lang)
		}
	}
	if name, err := h.db.GetPreferenceOrDefault(c.Context(), user.ID, models.PrefDisplayName, ""); err == nil {
		req.DisplayName = name
	}
	if turns, err := h.db.GetRecentTurns(c.Context(), user.ID, historyTurns); err == nil {
		req.History = turns
	} else {
		slog.Error("failed to load chat history", "user", user.Username, "error", err)
	}

	result := h.engine.Generate(req)
	metrics.RecordChatResponse(string(result.Language), result.Category)

	if strings.TrimSpace(message) != "" {
		h.persistTurns(c, user, message, result)
	}

	if result.DetectedName != "" {
		if err := h.db.SetPreference(c.Context(), user.ID, models.PrefDisplayName, result.DetectedName); err != nil {
			slog.Error("failed to remember display name", "user", user.Username, "error", err)
		}
	}

	return c.JSON(result)
}

// History returns the user's recent chat messages.
func (h *ChatHandler) History(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := fiber.Query[int](c, "limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	messages, err := h.db.GetChatHistory(c.Context(), user.ID, limit)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch history")
	}
	return jsonSuccess(c, messages)
}

// ClearHistory deletes the user's chat messages.
func (h *ChatHandler) ClearHistory(c fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	deleted, err := h.db.ClearChatHistory(c.Context(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to clear history")
	}
	return jsonSuccess(c, fiber.Map{"deleted": deleted})
}

func (h *ChatHandler) persistTurns(c fiber.Ctx, user *models.User, message string, result chatbot.Result) {
	userMsg := &models.ChatMessage{
		UserID:   user.ID,
		Sender:   models.SenderUser,
		Message:  message,
		Language: string(result.Language),
	}
	if err := h.db.SaveMessage(c.Context(), userMsg); err != nil {
		slog.Error("failed to save user message", "user", user.Username, "error", err)
		return
	}

	botMsg := &models.ChatMessage{
		UserID:   user.ID,
		Sender:   models.SenderBot,
		Message:  result.Response,
		Language: string(result.Language),
	}
	if err := h.db.SaveMessage(c.Context(), botMsg); err != nil {
		slog.Error("failed to save bot message", "user", user.Username, "error", err)
	}
}
