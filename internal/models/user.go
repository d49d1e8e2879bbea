package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. Accounts are created either with a
// username/password pair or through an OIDC provider (Sub set, empty hash).
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Sub          *string   `json:"-"` // OIDC subject identifier, nil for password accounts
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsOIDC returns true if the account was provisioned by an identity provider.
func (u *User) IsOIDC() bool {
	return u.Sub != nil && *u.Sub != ""
}

// Preference keys stored in user_preferences.
const (
	PrefLanguage    = "language"
	PrefDisplayName = "display_name"
)
