package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Database
	DatabaseURL string

	// Session
	SessionSecret string // Used for signing cookies (min 32 chars)
	RedisURL      string // Optional Redis session storage, e.g. "redis://localhost:6379"

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// OIDC (optional single sign-on, password login always available)
	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	// Chat
	MaxMessageLength int // Longest accepted chat message in characters

	// Inactivity detection
	InactivityThreshold time.Duration // How long before a user counts as inactive
	InactivityInterval  time.Duration // How often the background checker runs

	// Medication reminders
	ReminderInterval time.Duration // How often due reminders are scanned

	// Text-to-speech
	TTSEnabled bool
	TTSBaseURL string // Override for the synthesis endpoint (tests)

	// Email alerts (caregiver notifications on inactivity)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPFromName string
	SMTPTLS      string // "none", "starttls", or "tls"
	AlertEmail   string // Comma-separated caregiver addresses

	// Development helpers
	SeedDevData bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:           getEnv("ENV", "development"),
		ServerAddr:    getEnv("SERVER_ADDR", ":3000"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:3000"),
		DatabaseURL:   getEnv("DATABASE_URL", "postgres://localhost:5432/sentimate?sslmode=disable"),
		SessionSecret: getEnv("SESSION_SECRET", "change-me-in-production-min-32-chars"),
		RedisURL:      getEnv("REDIS_URL", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", ""),

		OIDCIssuer:       getEnv("OIDC_ISSUER", ""),
		OIDCClientID:     getEnv("OIDC_CLIENT_ID", ""),
		OIDCClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
		OIDCRedirectURL:  getEnv("OIDC_REDIRECT_URL", "http://localhost:3000/auth/callback"),

		MaxMessageLength: getEnvInt("MAX_MESSAGE_LENGTH", 500),

		InactivityThreshold: getEnvDuration("INACTIVITY_THRESHOLD", 5*time.Minute),
		InactivityInterval:  getEnvDuration("INACTIVITY_CHECK_INTERVAL", time.Minute),
		ReminderInterval:    getEnvDuration("REMINDER_CHECK_INTERVAL", time.Minute),

		TTSEnabled: getEnv("TTS_ENABLED", "") != "",
		TTSBaseURL: getEnv("TTS_BASE_URL", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "Sentimate"),
		SMTPTLS:      getEnv("SMTP_TLS", "starttls"),
		AlertEmail:   getEnv("ALERT_EMAIL", ""),

		SeedDevData: getEnv("SEED_DEV_DATA", "") != "",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsOIDCEnabled returns true if single sign-on is configured.
func (c *Config) IsOIDCEnabled() bool {
	return c.OIDCIssuer != ""
}

// IsEmailEnabled returns true if SMTP is configured for caregiver alerts.
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != ""
}
