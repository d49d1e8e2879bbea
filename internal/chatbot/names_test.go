package chatbot

import "testing"

func TestExtractName(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"my name is", "My name is Ravi", "Ravi"},
		{"name's", "name's Kamala", "Kamala"},
		{"call me", "You can call me Arun", "Arun"},
		{"i am", "I am Priya and I like gardening", "Priya"},
		{"i'm", "I'm Lakshmi", "Lakshmi"},
		{"curly apostrophe", "I’m Lakshmi", "Lakshmi"},
		{"capitalizes", "my name is ravi", "Ravi"},
		{"normalizes shouting", "MY NAME IS RAVI", "Ravi"},
		{"stop word fine", "I am fine", ""},
		{"stop word here", "I'm here", ""},
		{"stop word feeling", "I am feeling lonely", ""},
		{"single letter rejected", "I am a", ""},
		{"no pattern", "hello there", ""},
		{"tamil en peyar", "என் பெயர் கமலா", "கமலா"},
		{"tamil ennudaiya peyar", "என்னுடைய பெயர் அருண்", "அருண்"},
		{"tamil naan", "நான் பிரியா", "பிரியா"},
		{"tamil stop word", "நான் நன்றாக இருக்கிறேன்", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractName(tt.message); got != tt.want {
				t.Errorf("ExtractName(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractNameMostSpecificPatternWins(t *testing.T) {
	// "my name is" must be tried before "i am" so the introduction, not the
	// sentence opener, supplies the capture.
	got := ExtractName("I am happy to meet you, my name is Ravi")
	if got != "Ravi" {
		t.Errorf("ExtractName() = %q, want %q", got, "Ravi")
	}
}
