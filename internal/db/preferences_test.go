package db

import (
	"context"
	"errors"
	"testing"

	"sentimate/internal/models"
)

func TestSetPreference(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createUser(t, db, "mary")

	if err := db.SetPreference(ctx, user.ID, models.PrefLanguage, "tamil"); err != nil {
		t.Fatalf("SetPreference() error = %v", err)
	}

	got, err := db.GetPreference(ctx, user.ID, models.PrefLanguage)
	if err != nil {
		t.Fatalf("GetPreference() error = %v", err)
	}
	if got != "tamil" {
		t.Errorf("GetPreference() = %q, want %q", got, "tamil")
	}

	// Setting again overwrites.
	if err := db.SetPreference(ctx, user.ID, models.PrefLanguage, "english"); err != nil {
		t.Fatalf("SetPreference() overwrite error = %v", err)
	}
	got, err = db.GetPreference(ctx, user.ID, models.PrefLanguage)
	if err != nil {
		t.Fatalf("GetPreference() error = %v", err)
	}
	if got != "english" {
		t.Errorf("GetPreference() after overwrite = %q, want %q", got, "english")
	}
}

func TestGetPreference_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	user := createUser(t, db, "mary")

	_, err := db.GetPreference(context.Background(), user.ID, models.PrefDisplayName)
	if !errors.Is(err, ErrPreferenceNotFound) {
		t.Errorf("GetPreference() error = %v, want ErrPreferenceNotFound", err)
	}
}

func TestGetPreferenceOrDefault(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createUser(t, db, "mary")

	got, err := db.GetPreferenceOrDefault(ctx, user.ID, models.PrefLanguage, "english")
	if err != nil {
		t.Fatalf("GetPreferenceOrDefault() error = %v", err)
	}
	if got != "english" {
		t.Errorf("GetPreferenceOrDefault() = %q, want default %q", got, "english")
	}

	if err := db.SetPreference(ctx, user.ID, models.PrefLanguage, "tamil"); err != nil {
		t.Fatalf("SetPreference() error = %v", err)
	}
	got, err = db.GetPreferenceOrDefault(ctx, user.ID, models.PrefLanguage, "english")
	if err != nil {
		t.Fatalf("GetPreferenceOrDefault() error = %v", err)
	}
	if got != "tamil" {
		t.Errorf("GetPreferenceOrDefault() = %q, want %q", got, "tamil")
	}
}
