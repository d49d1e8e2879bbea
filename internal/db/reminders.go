package db

import (
	"context"

	"github.com/google/uuid"

	"sentimate/internal/models"
)

// AddReminder inserts a new medication reminder for a user.
func (d *DB) AddReminder(ctx context.Context, reminder *models.Reminder) error {
	query := `
		INSERT INTO reminders (user_id, medicine_name, remind_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	return d.Pool.QueryRow(ctx, query,
		reminder.UserID,
		reminder.MedicineName,
		reminder.RemindAt,
	).Scan(&reminder.ID, &reminder.CreatedAt)
}

// GetRemindersForUser retrieves all reminders for a user, sorted by time.
func (d *DB) GetRemindersForUser(ctx context.Context, userID uuid.UUID) ([]models.Reminder, error) {
	query := `
		SELECT id, user_id, medicine_name, remind_at, created_at
		FROM reminders
		WHERE user_id = $1
		ORDER BY remind_at ASC, created_at ASC
	`

	rows, err := d.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var r models.Reminder
		if err := rows.Scan(&r.ID, &r.UserID, &r.MedicineName, &r.RemindAt, &r.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, r)
	}

	return reminders, rows.Err()
}

// DeleteReminder deletes a reminder belonging to the given user.
// Returns ErrReminderNotFound if the reminder does not exist or is owned by
// someone else.
func (d *DB) DeleteReminder(ctx context.Context, reminderID, userID uuid.UUID) error {
	query := `DELETE FROM reminders WHERE id = $1 AND user_id = $2`

	tag, err := d.Pool.Exec(ctx, query, reminderID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrReminderNotFound
	}
	return nil
}

// GetRemindersDueAt returns all reminders scheduled for the given HH:MM time,
// joined with their owners, for the notifier job.
func (d *DB) GetRemindersDueAt(ctx context.Context, hhmm string) ([]models.DueReminder, error) {
	query := `
		SELECT r.id, r.user_id, r.medicine_name, r.remind_at, r.created_at, u.username
		FROM reminders r
		JOIN users u ON u.id = r.user_id
		WHERE r.remind_at = $1
		ORDER BY u.username ASC
	`

	rows, err := d.Pool.Query(ctx, query, hhmm)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var due []models.DueReminder
	for rows.Next() {
		var r models.DueReminder
		if err := rows.Scan(&r.ID, &r.UserID, &r.MedicineName, &r.RemindAt, &r.CreatedAt, &r.Username); err != nil {
			return nil, err
		}
		due = append(due, r)
	}

	return due, rows.Err()
}
