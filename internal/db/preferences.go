package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SetPreference upserts a user preference key/value pair.
func (d *DB) SetPreference(ctx context.Context, userID uuid.UUID, key, value string) error {
	query := `
		INSERT INTO user_preferences (user_id, pref_key, pref_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, pref_key) DO UPDATE SET
			pref_value = EXCLUDED.pref_value,
			updated_at = NOW()
	`
	_, err := d.Pool.Exec(ctx, query, userID, key, value)
	return err
}

// GetPreference retrieves a single preference value.
// Returns ErrPreferenceNotFound when the key has never been set.
func (d *DB) GetPreference(ctx context.Context, userID uuid.UUID, key string) (string, error) {
	query := `
		SELECT pref_value FROM user_preferences
		WHERE user_id = $1 AND pref_key = $2
	`

	var value string
	err := d.Pool.QueryRow(ctx, query, userID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrPreferenceNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// GetPreferenceOrDefault retrieves a preference, falling back to def when the
// key has never been set.
func (d *DB) GetPreferenceOrDefault(ctx context.Context, userID uuid.UUID, key, def string) (string, error) {
	value, err := d.GetPreference(ctx, userID, key)
	if errors.Is(err, ErrPreferenceNotFound) {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
