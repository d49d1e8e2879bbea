package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sentimate/internal/chatbot"
	"sentimate/internal/db"
	"sentimate/internal/handlers"
	"sentimate/internal/handlers/api"
	"sentimate/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, engine *chatbot.Engine) error {
	authMiddleware := middleware.NewAuthMiddleware(s.Store, database)

	pageHandler := handlers.NewPageHandler(database, s.Cfg)
	localAuthHandler := handlers.NewLocalAuthHandler(database, s.Cfg)

	chatHandler := api.NewChatHandler(database, s.Cfg, engine)
	reminderHandler := api.NewReminderHandler(database)
	activityHandler := api.NewActivityHandler(database, s.Cfg)
	preferenceHandler := api.NewPreferenceHandler(database)
	speechHandler := api.NewSpeechHandler(s.Cfg)
	statusHandler := api.NewStatusHandler(database)

	// SSO routes - only when an identity provider is configured
	if s.Cfg.IsOIDCEnabled() {
		oidcHandler, err := handlers.NewOIDCHandler(ctx, s.Cfg, database)
		if err != nil {
			log.Printf("Warning: Failed to initialize OIDC auth: %v", err)
			log.Println("OIDC authentication is disabled. Set OIDC_* environment variables to enable.")
		} else {
			s.App.Get("/auth/login", oidcHandler.Login)
			s.App.Get("/auth/callback", oidcHandler.Callback)
			s.App.Get("/auth/logout", oidcHandler.Logout)
		}
	} else {
		log.Println("OIDC authentication is disabled. Set OIDC_ISSUER to enable.")
	}

	// Pages
	s.App.Get("/", authMiddleware.OptionalAuth, pageHandler.Home)
	s.App.Get("/chat", authMiddleware.RequireAuth, pageHandler.Chat)
	s.App.Get("/medication", authMiddleware.RequireAuth, pageHandler.Medication)
	s.App.Get("/games", authMiddleware.RequireAuth, pageHandler.Games)
	s.App.Get("/login", authMiddleware.OptionalAuth, pageHandler.Login)
	s.App.Get("/register", authMiddleware.OptionalAuth, pageHandler.Register)

	// Local account routes
	s.App.Post("/register", localAuthHandler.Register)
	s.App.Post("/login", localAuthHandler.Login)
	s.App.Post("/logout", localAuthHandler.Logout)

	// JSON API
	apiGroup := s.App.Group("/api", authMiddleware.RequireAuthAPI)
	apiGroup.Post("/chat", chatHandler.Chat)
	apiGroup.Get("/chat/history", chatHandler.History)
	apiGroup.Delete("/chat/history", chatHandler.ClearHistory)
	apiGroup.Get("/reminders", reminderHandler.List)
	apiGroup.Post("/reminders", reminderHandler.Create)
	apiGroup.Delete("/reminders/:id", reminderHandler.Delete)
	apiGroup.Post("/activity", activityHandler.Touch)
	apiGroup.Get("/activity/status", activityHandler.Status)
	apiGroup.Post("/activity/reset", activityHandler.Reset)
	apiGroup.Get("/preferences/language", preferenceHandler.GetLanguage)
	apiGroup.Put("/preferences/language", preferenceHandler.SetLanguage)
	apiGroup.Post("/speech/tts", speechHandler.Synthesize)

	// Operational endpoints
	s.App.Get("/healthz", statusHandler.Healthz)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return nil
}
