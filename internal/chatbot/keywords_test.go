package chatbot

import (
	"strings"
	"testing"
)

func TestKeywordSetMatch(t *testing.T) {
	ks := DefaultKeywords()

	tests := []struct {
		name    string
		lang    Language
		message string
		want    string
	}{
		{"greeting", LanguageEnglish, "hello there", CategoryGreetings},
		{"status check", LanguageEnglish, "how are you today?", CategoryStatusCheck},
		{"longest keyword wins", LanguageEnglish, "hi, how are you?", CategoryStatusCheck},
		{"emotional support", LanguageEnglish, "i feel so lonely", CategoryEmotionalSupport},
		{"gratitude", LanguageEnglish, "thank you for everything", CategoryGratitude},
		{"encouragement", LanguageEnglish, "i am so proud of my garden", CategoryEncouragement},
		{"memories", LanguageEnglish, "do you remember the old days", CategoryMemories},
		{"health", LanguageEnglish, "i took my medicine", CategoryHealth},
		{"family", LanguageEnglish, "my grandchildren visited", CategoryFamily},
		{"substring hit", LanguageEnglish, "the weather is nice", CategoryHealth}, // "eat" inside "weather"
		{"no match", LanguageEnglish, "zzz qqq", CategoryDefault},
		{"tamil greeting", LanguageTamil, "வணக்கம்", CategoryGreetings},
		{"tamil health", LanguageTamil, "மருந்து எடுத்தேன்", CategoryHealth},
		{"tamil family", LanguageTamil, "என் குடும்பம் நன்றாக இருக்கிறது", CategoryFamily},
		{"tamil intro marker", LanguageTamil, "என் பெயர் கமலா", CategoryIntro},
		{"tamil no match", LanguageTamil, "ஏதோ ஒன்று", CategoryDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ks.Match(tt.lang, strings.ToLower(tt.message)); got != tt.want {
				t.Errorf("Match(%q, %q) = %q, want %q", tt.lang, tt.message, got, tt.want)
			}
		})
	}
}

func TestKeywordSetDeterministicOrder(t *testing.T) {
	// Two same-length keywords mapping to different categories must resolve
	// identically across constructions.
	table := map[Language]map[string]string{
		LanguageEnglish: {
			"aaa": CategoryHealth,
			"bbb": CategoryFamily,
		},
	}
	want := NewKeywordSet(table).Match(LanguageEnglish, "bbb aaa")
	for i := 0; i < 20; i++ {
		if got := NewKeywordSet(table).Match(LanguageEnglish, "bbb aaa"); got != want {
			t.Fatalf("Match() order unstable: got %q, want %q", got, want)
		}
	}
}

func TestKeywordSetUnknownLanguage(t *testing.T) {
	ks := DefaultKeywords()
	if got := ks.Match("french", "hello"); got != CategoryDefault {
		t.Errorf("Match() with unknown language = %q, want %q", got, CategoryDefault)
	}
}
