package chatbot

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		forced  Language
		want    Language
	}{
		{"plain english", "Hello, how are you?", "", LanguageEnglish},
		{"tamil script", "வணக்கம், எப்படி இருக்கிறீர்கள்?", "", LanguageTamil},
		{"mixed script counts as tamil", "Hello வணக்கம்", "", LanguageTamil},
		{"single tamil rune", "ok த", "", LanguageTamil},
		{"digits and punctuation", "123 !!", "", LanguageEnglish},
		{"forced english", "வணக்கம்", LanguageEnglish, LanguageEnglish},
		{"forced tamil", "good morning", LanguageTamil, LanguageTamil},
		{"unknown force falls back to detection", "வணக்கம்", "hindi", LanguageTamil},
		{"empty message", "", "", LanguageEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.message, tt.forced); got != tt.want {
				t.Errorf("DetectLanguage(%q, %q) = %q, want %q", tt.message, tt.forced, got, tt.want)
			}
		})
	}
}
