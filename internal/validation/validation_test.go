package validation

import (
	"strings"
	"testing"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     bool
	}{
		{"valid alphanumeric", "ravi123", true},
		{"valid with hyphen", "ravi-k", true},
		{"valid with underscore", "ravi_k", true},
		{"valid mixed case", "Ravi-K_1", true},
		{"minimum length", "abc", true},
		{"maximum length", strings.Repeat("a", 30), true},
		{"empty string", "", false},
		{"too short", "ab", false},
		{"too long", strings.Repeat("a", 31), false},
		{"contains space", "ravi k", false},
		{"contains dot", "ravi.k", false},
		{"contains at sign", "ravi@home", false},
		{"tamil letters", "கமலா", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ValidateUsername(tt.username)
			if got != tt.want {
				t.Errorf("ValidateUsername(%q) = %v, want %v", tt.username, got, tt.want)
			}
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ravi", "ravi"},
		{"  RAVI  ", "ravi"},
		{"ravi-k", "ravi-k"},
	}
	for _, tt := range tests {
		if got := NormalizeUsername(tt.in); got != tt.want {
			t.Errorf("NormalizeUsername(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "secret1", true},
		{"minimum length", "abcdef", true},
		{"empty", "", false},
		{"too short", "abcde", false},
		{"multibyte counted as runes", "அஆஇஈஉஊ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ValidatePassword(tt.password)
			if got != tt.want {
				t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.want)
			}
		})
	}
}

func TestValidateMessage(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		maxLength int
		want      bool
	}{
		{"valid", "hello there", 500, true},
		{"at limit", strings.Repeat("a", 500), 500, true},
		{"over limit", strings.Repeat("a", 501), 500, false},
		{"empty", "", 500, false},
		{"whitespace only", "   \t", 500, false},
		{"tamil within rune limit", strings.Repeat("த", 500), 500, true},
		{"no limit configured", strings.Repeat("a", 1000), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ValidateMessage(tt.message, tt.maxLength)
			if got != tt.want {
				t.Errorf("ValidateMessage(len=%d, max=%d) = %v, want %v", len(tt.message), tt.maxLength, got, tt.want)
			}
		})
	}
}

func TestValidateMedicineName(t *testing.T) {
	tests := []struct {
		name     string
		medicine string
		want     bool
	}{
		{"valid", "Metformin 500mg", true},
		{"tamil name", "மருந்து", true},
		{"empty", "", false},
		{"whitespace only", "  ", false},
		{"too long", strings.Repeat("a", 101), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ValidateMedicineName(tt.medicine)
			if got != tt.want {
				t.Errorf("ValidateMedicineName(%q) = %v, want %v", tt.medicine, got, tt.want)
			}
		})
	}
}

func TestValidateReminderTime(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"valid morning", "08:30", true},
		{"valid midnight", "00:00", true},
		{"valid last minute", "23:59", true},
		{"empty", "", false},
		{"hour out of range", "24:00", false},
		{"minute out of range", "10:60", false},
		{"missing minutes", "10", false},
		{"with seconds", "10:30:00", false},
		{"words", "morning", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := ValidateReminderTime(tt.value)
			if got != tt.want {
				t.Errorf("ValidateReminderTime(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
