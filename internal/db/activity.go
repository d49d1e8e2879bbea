package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"sentimate/internal/models"
)

// TouchActivity records that the user interacted with the app just now.
// Any pending inactivity alert is cleared so a fresh inactive period can
// trigger a new one.
func (d *DB) TouchActivity(ctx context.Context, userID uuid.UUID) (*models.Activity, error) {
	query := `
		INSERT INTO activity (user_id, last_activity, alerted_at)
		VALUES ($1, NOW(), NULL)
		ON CONFLICT (user_id) DO UPDATE SET
			last_activity = NOW(),
			alerted_at = NULL
		RETURNING user_id, last_activity, alerted_at
	`

	var a models.Activity
	err := d.Pool.QueryRow(ctx, query, userID).Scan(&a.UserID, &a.LastActivity, &a.AlertedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetActivity retrieves the activity record for a user.
func (d *DB) GetActivity(ctx context.Context, userID uuid.UUID) (*models.Activity, error) {
	query := `
		SELECT user_id, last_activity, alerted_at
		FROM activity WHERE user_id = $1
	`

	var a models.Activity
	err := d.Pool.QueryRow(ctx, query, userID).Scan(&a.UserID, &a.LastActivity, &a.AlertedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetInactiveUsers returns users whose last activity is older than the
// threshold and who have not yet been alerted for the current inactive period.
func (d *DB) GetInactiveUsers(ctx context.Context, threshold time.Duration) ([]models.Activity, error) {
	query := `
		SELECT a.user_id, u.username, a.last_activity, a.alerted_at
		FROM activity a
		JOIN users u ON u.id = a.user_id
		WHERE a.last_activity < NOW() - make_interval(secs => $1)
		  AND (a.alerted_at IS NULL OR a.alerted_at < a.last_activity)
		ORDER BY a.last_activity ASC
	`

	rows, err := d.Pool.Query(ctx, query, threshold.Seconds())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inactive []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.UserID, &a.Username, &a.LastActivity, &a.AlertedAt); err != nil {
			return nil, err
		}
		inactive = append(inactive, a)
	}

	return inactive, rows.Err()
}

// MarkAlerted stamps the activity record after a check-in has been delivered.
func (d *DB) MarkAlerted(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE activity SET alerted_at = NOW() WHERE user_id = $1`
	_, err := d.Pool.Exec(ctx, query, userID)
	return err
}
