package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder represents a daily medication reminder at a fixed HH:MM time.
type Reminder struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	MedicineName string    `json:"medicine_name"`
	RemindAt     string    `json:"time"` // 24-hour HH:MM
	CreatedAt    time.Time `json:"created_at"`
}

// DueReminder is a reminder joined with its owner, used by the notifier job.
type DueReminder struct {
	Reminder
	Username string `json:"username"`
}
