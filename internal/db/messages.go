package db

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sentimate/internal/chatbot"
	"sentimate/internal/models"
)

// SaveMessage persists one chat turn.
func (d *DB) SaveMessage(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (user_id, sender, message, language)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	return d.Pool.QueryRow(ctx, query,
		msg.UserID,
		msg.Sender,
		strings.TrimSpace(msg.Message),
		msg.Language,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// GetChatHistory retrieves the most recent messages for a user in
// chronological order (oldest first).
func (d *DB) GetChatHistory(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	query := `
		SELECT id, user_id, sender, message, language, created_at
		FROM (
			SELECT id, user_id, sender, message, language, created_at
			FROM chat_messages
			WHERE user_id = $1
			ORDER BY id DESC
			LIMIT $2
		) recent
		ORDER BY id ASC
	`

	rows, err := d.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Sender, &m.Message, &m.Language, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// GetRecentTurns returns the last messages as lightweight conversation turns
// (oldest first) to feed context to the response engine.
func (d *DB) GetRecentTurns(ctx context.Context, userID uuid.UUID, limit int) ([]chatbot.Turn, error) {
	query := `
		SELECT sender, message
		FROM (
			SELECT id, sender, message
			FROM chat_messages
			WHERE user_id = $1
			ORDER BY id DESC
			LIMIT $2
		) recent
		ORDER BY id ASC
	`

	rows, err := d.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []chatbot.Turn
	for rows.Next() {
		var t chatbot.Turn
		if err := rows.Scan(&t.Sender, &t.Message); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}

	return turns, rows.Err()
}

// ClearChatHistory deletes all chat history for a user and reports how many
// rows were removed.
func (d *DB) ClearChatHistory(ctx context.Context, userID uuid.UUID) (int64, error) {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM chat_messages WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MessageCount is one row of the per-language message tally used by metrics.
type MessageCount struct {
	Language string
	Sender   string
	Count    int64
}

// GetMessageCounts tallies stored messages grouped by language and sender.
func (d *DB) GetMessageCounts(ctx context.Context) ([]MessageCount, error) {
	query := `
		SELECT language, sender, COUNT(*)
		FROM chat_messages
		GROUP BY language, sender
	`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []MessageCount
	for rows.Next() {
		var c MessageCount
		if err := rows.Scan(&c.Language, &c.Sender, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
