package models

import (
	"time"

	"github.com/google/uuid"
)

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one persisted turn of a conversation.
type ChatMessage struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Sender    string    `json:"sender"` // "user" or "bot"
	Message   string    `json:"message"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"timestamp"`
}

// Activity tracks when a user last interacted with the app. AlertedAt records
// when a check-in was last delivered so an inactive period alerts only once.
type Activity struct {
	UserID       uuid.UUID  `json:"user_id"`
	Username     string     `json:"username,omitempty"`
	LastActivity time.Time  `json:"last_activity"`
	AlertedAt    *time.Time `json:"alerted_at,omitempty"`
}
