package chatbot

import (
	"strings"
	"testing"
)

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	if cfg.Rand == nil {
		cfg.Rand = NewSeededRand(1)
	}
	engine, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestGenerateEmptyInput(t *testing.T) {
	engine := newTestEngine(t, Config{})

	for _, message := range []string{"", "   ", "\n\t"} {
		result := engine.Generate(Request{Message: message, ForcedLanguage: LanguageTamil})
		if result.Response != emptyInputResponse {
			t.Errorf("Generate(%q).Response = %q, want %q", message, result.Response, emptyInputResponse)
		}
		if result.DetectedName != "" {
			t.Errorf("Generate(%q).DetectedName = %q, want empty", message, result.DetectedName)
		}
		if result.Language != LanguageEnglish {
			t.Errorf("Generate(%q).Language = %q, want %q", message, result.Language, LanguageEnglish)
		}
	}
}

func TestGenerateDetectedName(t *testing.T) {
	engine := newTestEngine(t, Config{})

	tests := []struct {
		name     string
		message  string
		wantName string
	}{
		{"introduction", "My name is Ravi", "Ravi"},
		{"stop word filtered", "I am fine", ""},
		{"contraction", "I'm Kamala", "Kamala"},
		{"tamil introduction", "என் பெயர் கமலா", "கமலா"},
		{"no introduction", "The garden looks lovely", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Generate(Request{Message: tt.message})
			if result.DetectedName != tt.wantName {
				t.Errorf("Generate(%q).DetectedName = %q, want %q", tt.message, result.DetectedName, tt.wantName)
			}
		})
	}
}

func TestGenerateNameReceivedInterpolation(t *testing.T) {
	engine := newTestEngine(t, Config{})

	result := engine.Generate(Request{Message: "My name is Ravi"})
	if !strings.Contains(result.Response, "Ravi") {
		t.Errorf("Generate() response %q does not mention the introduced name", result.Response)
	}
	if strings.Contains(result.Response, namePlaceholder) {
		t.Errorf("Generate() response %q contains an unresolved placeholder", result.Response)
	}
	if result.Category != CategoryNameReceived {
		t.Errorf("Generate().Category = %q, want %q", result.Category, CategoryNameReceived)
	}
}

func TestGenerateLanguageResolution(t *testing.T) {
	engine := newTestEngine(t, Config{})

	tests := []struct {
		name    string
		message string
		forced  Language
		want    Language
	}{
		{"english by default", "Hello there", "", LanguageEnglish},
		{"tamil script detected", "வணக்கம்", "", LanguageTamil},
		{"forced tamil wins", "Hello there", LanguageTamil, LanguageTamil},
		{"forced english wins", "வணக்கம்", LanguageEnglish, LanguageEnglish},
		{"invalid force ignored", "வணக்கம்", "french", LanguageTamil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Generate(Request{Message: tt.message, ForcedLanguage: tt.forced})
			if result.Language != tt.want {
				t.Errorf("Generate(%q, forced=%q).Language = %q, want %q", tt.message, tt.forced, result.Language, tt.want)
			}
		})
	}
}

func TestGenerateNameGreetingRoundTrip(t *testing.T) {
	engine := newTestEngine(t, Config{NameGreetingProb: 1.0})

	first := engine.Generate(Request{Message: "My name is Ravi"})
	if first.DetectedName != "Ravi" {
		t.Fatalf("Generate().DetectedName = %q, want %q", first.DetectedName, "Ravi")
	}

	second := engine.Generate(Request{Message: "Hello!", DisplayName: first.DetectedName})
	if !strings.Contains(second.Response, "Ravi") {
		t.Errorf("greeting with remembered name = %q, want it to mention Ravi", second.Response)
	}
}

func TestGeneratePreambleProportion(t *testing.T) {
	engine := newTestEngine(t, Config{Rand: NewSeededRand(42)})

	history := []Turn{
		{Sender: "user", Message: "I feel so lonely today"},
		{Sender: "bot", Message: "I'm here with you."},
		{Sender: "user", Message: "Still very lonely"},
		{Sender: "user", Message: "Nobody visits, I am lonely"},
	}
	preamble := englishPreambles[ToneLonely]

	const runs = 1000
	hits := 0
	for i := 0; i < runs; i++ {
		result := engine.Generate(Request{Message: "The garden looks nice", History: history})
		if strings.HasPrefix(result.Response, preamble) {
			hits++
		}
	}

	proportion := float64(hits) / runs
	if proportion < 0.30 || proportion > 0.40 {
		t.Errorf("preamble proportion = %.3f over %d runs, want within [0.30, 0.40]", proportion, runs)
	}
}

func TestGenerateDisabledProbabilities(t *testing.T) {
	rs := &ResponseSet{
		templates: map[Language]map[string][]string{
			LanguageEnglish: {
				CategoryDefault:      {"Noted."},
				CategoryGreetings:    {"Hello."},
				CategoryNameGreeting: {"Hello, {name}."},
			},
			LanguageTamil: {CategoryDefault: {"சரி."}},
		},
		followUps: map[Language][]string{
			LanguageEnglish: {"Anything else?"},
		},
		preambles: map[Language]map[string]string{
			LanguageEnglish: {ToneLonely: "You mentioned feeling lonely."},
		},
	}
	history := []Turn{
		{Sender: "user", Message: "I feel so lonely today"},
		{Sender: "user", Message: "Still very lonely"},
		{Sender: "user", Message: "Nobody visits, I am lonely"},
	}

	off := newTestEngine(t, Config{
		Responses:        rs,
		NameGreetingProb: -1,
		PreambleProb:     -1,
		FollowUpProb:     -1,
		Rand:             NewSeededRand(9),
	})
	for i := 0; i < 50; i++ {
		result := off.Generate(Request{Message: "The garden looks lovely", History: history})
		if strings.Contains(result.Response, "Anything else?") {
			t.Fatalf("run %d: follow-up appended with FollowUpProb disabled: %q", i, result.Response)
		}
		if strings.HasPrefix(result.Response, "You mentioned feeling lonely.") {
			t.Fatalf("run %d: preamble applied with PreambleProb disabled: %q", i, result.Response)
		}

		greeting := off.Generate(Request{Message: "Hello!", DisplayName: "Ravi"})
		if strings.Contains(greeting.Response, "Ravi") {
			t.Fatalf("run %d: name greeting used with NameGreetingProb disabled: %q", i, greeting.Response)
		}
	}

	// Same pools with the probability forced on instead.
	on := newTestEngine(t, Config{Responses: rs, FollowUpProb: 1.0, Rand: NewSeededRand(9)})
	result := on.Generate(Request{Message: "The garden looks lovely"})
	if !strings.Contains(result.Response, "Anything else?") {
		t.Fatalf("follow-up missing with FollowUpProb = 1.0: %q", result.Response)
	}
}

func TestGenerateSeededDeterminism(t *testing.T) {
	req := Request{
		Message: "Hello, how have you been?",
		History: []Turn{
			{Sender: "user", Message: "I was sad yesterday"},
			{Sender: "user", Message: "Feeling sad again"},
			{Sender: "user", Message: "A bit sad still"},
		},
		DisplayName: "Ravi",
	}

	a := newTestEngine(t, Config{Rand: NewSeededRand(7)})
	b := newTestEngine(t, Config{Rand: NewSeededRand(7)})
	for i := 0; i < 50; i++ {
		ra := a.Generate(req)
		rb := b.Generate(req)
		if ra != rb {
			t.Fatalf("run %d: engines with same seed diverged: %q vs %q", i, ra.Response, rb.Response)
		}
	}
}

func TestGenerateNoUnresolvedPlaceholders(t *testing.T) {
	engine := newTestEngine(t, Config{NameGreetingProb: 1.0})

	messages := []string{
		"Hello!", "My name is Ravi", "I'm so lonely", "thank you so much",
		"do you remember the old days", "how is my health", "என் பெயர் கமலா",
		"வணக்கம்", "மருந்து எடுத்தேன்",
	}
	for _, msg := range messages {
		for i := 0; i < 20; i++ {
			result := engine.Generate(Request{Message: msg, DisplayName: "Ravi"})
			if strings.Contains(result.Response, namePlaceholder) {
				t.Fatalf("Generate(%q) left placeholder in %q", msg, result.Response)
			}
		}
	}
}

func TestNewEngineRejectsBadTemplates(t *testing.T) {
	bad := &ResponseSet{
		templates: map[Language]map[string][]string{
			LanguageEnglish: {CategoryGreetings: {"Hello!"}},
			LanguageTamil:   {CategoryDefault: {"சரி."}},
		},
	}
	if _, err := NewEngine(Config{Responses: bad}); err == nil {
		t.Fatal("NewEngine() with missing default pool, want error")
	}
}

func TestDefaultResponsesValidate(t *testing.T) {
	if err := DefaultResponses().Validate(); err != nil {
		t.Fatalf("DefaultResponses().Validate() error = %v", err)
	}
}
