package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// UsernamePattern defines the valid username format: alphanumeric, hyphens, underscores.
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MinPasswordLength = 6
	MaxMedicineName   = 100
)

// ValidateUsername checks a username against the allowed pattern and length
// bounds. Returns an empty string when valid, otherwise a user-facing reason.
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "Username is required"
	}
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return false, "Username must be between 3 and 30 characters"
	}
	if !UsernamePattern.MatchString(username) {
		return false, "Username may only contain letters, numbers, hyphens and underscores"
	}
	return true, ""
}

// NormalizeUsername lowercases a username so lookups are case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "Password is required"
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return false, "Password must be at least 6 characters"
	}
	return true, ""
}

// ValidateMessage checks a chat message: non-empty after trimming and within
// the configured maximum length (counted in runes, since Tamil messages are
// multi-byte).
func ValidateMessage(message string, maxLength int) (bool, string) {
	if strings.TrimSpace(message) == "" {
		return false, "Message cannot be empty"
	}
	if maxLength > 0 && utf8.RuneCountInString(message) > maxLength {
		return false, "Message is too long"
	}
	return true, ""
}

// ValidateMedicineName checks a reminder's medicine name.
func ValidateMedicineName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, "Medicine name is required"
	}
	if utf8.RuneCountInString(name) > MaxMedicineName {
		return false, "Medicine name is too long"
	}
	return true, ""
}

// ValidateReminderTime checks a 24-hour HH:MM clock time.
func ValidateReminderTime(value string) (bool, string) {
	if value == "" {
		return false, "Reminder time is required"
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return false, "Reminder time must be in HH:MM format"
	}
	return true, ""
}
