package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"sentimate/internal/models"
)

// CreateUser inserts a new password-based account.
func (d *DB) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := d.Pool.QueryRow(ctx, query, user.Username, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateUsername
	}
	return err
}

// GetUserByUsername retrieves a user by username, case-insensitively.
func (d *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, sub, created_at, updated_at
		FROM users WHERE LOWER(username) = LOWER($1)
	`

	var user models.User
	err := d.Pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Sub,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserByID retrieves a user by their UUID.
func (d *DB) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, sub, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user models.User
	err := d.Pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Sub,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpsertOIDCUser creates or refreshes an account provisioned by the identity
// provider, keyed on the OIDC subject.
func (d *DB) UpsertOIDCUser(ctx context.Context, sub, username string) (*models.User, error) {
	query := `
		INSERT INTO users (username, sub)
		VALUES ($1, $2)
		ON CONFLICT (sub) WHERE sub IS NOT NULL DO UPDATE SET
			updated_at = NOW()
		RETURNING id, username, password_hash, sub, created_at, updated_at
	`

	var user models.User
	err := d.Pool.QueryRow(ctx, query, username, sub).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Sub,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	// A fresh SSO account can still collide with an existing local username.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, ErrDuplicateUsername
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserCount returns the total number of users.
func (d *DB) GetUserCount(ctx context.Context) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
