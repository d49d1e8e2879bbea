package db

import "errors"

// Domain-level database error sentinels.
var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")

	// Reminder errors
	ErrReminderNotFound = errors.New("reminder not found")

	// Preference errors
	ErrPreferenceNotFound = errors.New("preference not found")

	// Activity errors
	ErrActivityNotFound = errors.New("no activity recorded")
)
