package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sentimate/internal/auth"
	"sentimate/internal/chatbot"
	"sentimate/internal/config"
	"sentimate/internal/db"
	"sentimate/internal/email"
	"sentimate/internal/jobs"
	"sentimate/internal/metrics"
	"sentimate/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.SeedDevData {
		seedDevUser(ctx, database)
	}

	// Metrics collectors
	metrics.Init(database)

	// Response engine
	engine, err := chatbot.NewEngine(chatbot.Config{})
	if err != nil {
		log.Fatalf("Failed to build response engine: %v", err)
	}

	// Caregiver alerts
	notifier := email.NewNotifier(cfg)

	// HTTP server
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, engine); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Background jobs
	go jobs.NewReminderNotifier(database, cfg.ReminderInterval).Start(ctx)
	go jobs.NewInactivityWatcher(database, notifier, cfg.InactivityThreshold, cfg.InactivityInterval).Start(ctx)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

// seedDevUser creates a throwaway account for local development.
func seedDevUser(ctx context.Context, database *db.DB) {
	hash, err := auth.HashPassword("password")
	if err != nil {
		log.Printf("Failed to hash dev password: %v", err)
		return
	}
	if err := database.SeedDevUser(ctx, "dev", hash); err != nil {
		log.Printf("Failed to seed dev user: %v", err)
		return
	}
	log.Println("Dev user available (username: dev, password: password)")
}
