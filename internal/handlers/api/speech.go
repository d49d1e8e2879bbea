package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"sentimate/internal/chatbot"
	"sentimate/internal/config"
	"sentimate/internal/models"
	"sentimate/internal/speech"
)

// SpeechHandler converts reply text to audio.
type SpeechHandler struct {
	cfg    *config.Config
	client *speech.Client
}

// NewSpeechHandler creates a new speech handler.
func NewSpeechHandler(cfg *config.Config) *SpeechHandler {
	return &SpeechHandler{
		cfg:    cfg,
		client: speech.NewClient(cfg.TTSBaseURL),
	}
}

// Synthesize returns base64 MP3 audio for the given text.
func (h *SpeechHandler) Synthesize(c fiber.Ctx) error {
	if _, ok := c.Locals("user").(*models.User); !ok {
		return jsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !h.cfg.TTSEnabled {
		return jsonError(c, fiber.StatusServiceUnavailable, "text-to-speech is disabled")
	}

	var body struct {
		Text     string `json:"text"`
		Language string `json:"language"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(body.Text) == "" {
		return jsonError(c, fiber.StatusBadRequest, "text is required")
	}

	lang := chatbot.Language(body.Language)
	if !lang.Valid() {
		lang = chatbot.LanguageEnglish
	}

	audio, err := h.client.Synthesize(c.Context(), body.Text, lang)
	if err != nil {
		if errors.Is(err, speech.ErrEmptyText) {
			return jsonError(c, fiber.StatusBadRequest, "text is required")
		}
		return jsonError(c, fiber.StatusBadGateway, "speech synthesis failed")
	}

	return jsonSuccess(c, fiber.Map{
		"audio":    audio,
		"format":   "mp3",
		"encoding": "base64",
	})
}
