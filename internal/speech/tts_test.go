package speech

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sentimate/internal/chatbot"
)

func TestSynthesize(t *testing.T) {
	var gotLangs []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLangs = append(gotLangs, r.URL.Query().Get("tl"))
		w.Write([]byte("MP3:" + r.URL.Query().Get("q") + ";"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	encoded, err := client.Synthesize(context.Background(), "hello world", chatbot.LanguageEnglish)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("Synthesize() returned invalid base64: %v", err)
	}
	if string(decoded) != "MP3:hello world;" {
		t.Errorf("Synthesize() audio = %q, want %q", decoded, "MP3:hello world;")
	}
	if len(gotLangs) != 1 || gotLangs[0] != "en" {
		t.Errorf("requested language codes = %v, want [en]", gotLangs)
	}
}

func TestSynthesizeTamilLangCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("tl"); got != "ta" {
			t.Errorf("tl = %q, want %q", got, "ta")
		}
		w.Write([]byte("audio"))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Synthesize(context.Background(), "வணக்கம்", chatbot.LanguageTamil); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
}

func TestSynthesizeChunksLongText(t *testing.T) {
	var chunks []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chunks = append(chunks, r.URL.Query().Get("q"))
		w.Write([]byte("x"))
	}))
	defer srv.Close()

	long := strings.Repeat("sentence with several words. ", 20)
	if _, err := NewClient(srv.URL).Synthesize(context.Background(), long, chatbot.LanguageEnglish); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("long text produced %d requests, want several", len(chunks))
	}
	for _, c := range chunks {
		if n := len([]rune(c)); n > maxChunkRunes {
			t.Errorf("chunk of %d runes exceeds limit %d", n, maxChunkRunes)
		}
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	client := NewClient("http://127.0.0.1:0")
	if _, err := client.Synthesize(context.Background(), "   ", chatbot.LanguageEnglish); !errors.Is(err, ErrEmptyText) {
		t.Errorf("Synthesize() error = %v, want ErrEmptyText", err)
	}
}

func TestSynthesizeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Synthesize(context.Background(), "hello", chatbot.LanguageEnglish); err == nil {
		t.Fatal("Synthesize() with failing endpoint, want error")
	}
}

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxRunes int
		want     int
	}{
		{"short text single chunk", "hello world", 180, 1},
		{"exact limit", strings.Repeat("a", 10), 10, 1},
		{"two words split", "aaaa bbbb", 5, 2},
		{"oversized word split", strings.Repeat("a", 25), 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitChunks(tt.text, tt.maxRunes)
			if len(got) != tt.want {
				t.Errorf("splitChunks() produced %d chunks %v, want %d", len(got), got, tt.want)
			}
			for _, c := range got {
				if len([]rune(c)) > tt.maxRunes {
					t.Errorf("chunk %q exceeds %d runes", c, tt.maxRunes)
				}
			}
		})
	}
}
