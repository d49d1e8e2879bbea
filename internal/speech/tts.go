// Package speech converts chatbot replies to audio using the Google
// Translate text-to-speech endpoint, the same service the gTTS tooling
// wraps. Responses are MP3 fragments, concatenated and returned base64
// encoded for direct use in an <audio> data URL.
package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sentimate/internal/chatbot"
)

const defaultBaseURL = "https://translate.google.com/translate_tts"

// maxChunkRunes is the largest text fragment sent per request; the endpoint
// rejects long inputs, so sentences are grouped into chunks below this size.
const maxChunkRunes = 180

// ErrEmptyText is returned when there is nothing to synthesize.
var ErrEmptyText = errors.New("no text to synthesize")

var langCodes = map[chatbot.Language]string{
	chatbot.LanguageEnglish: "en",
	chatbot.LanguageTamil:   "ta",
}

// Client synthesizes speech over HTTP. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a TTS client. baseURL overrides the synthesis endpoint;
// pass "" for the default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Synthesize converts text to a single MP3 payload and returns it base64
// encoded. Unknown languages fall back to English.
func (c *Client) Synthesize(ctx context.Context, text string, lang chatbot.Language) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}

	code, ok := langCodes[lang]
	if !ok {
		code = "en"
	}

	var audio bytes.Buffer
	for _, chunk := range splitChunks(text, maxChunkRunes) {
		data, err := c.fetchChunk(ctx, chunk, code)
		if err != nil {
			return "", err
		}
		audio.Write(data)
	}

	return base64.StdEncoding.EncodeToString(audio.Bytes()), nil
}

func (c *Client) fetchChunk(ctx context.Context, chunk, langCode string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", langCode)
	q.Set("q", chunk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building TTS request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching TTS audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TTS endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading TTS audio: %w", err)
	}
	return data, nil
}

// splitChunks breaks text into fragments of at most maxRunes runes,
// preferring sentence boundaries, then word boundaries. A single word longer
// than maxRunes is split mid-word.
func splitChunks(text string, maxRunes int) []string {
	if len([]rune(text)) <= maxRunes {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
		currentLen = 0
	}

	for _, word := range strings.Fields(text) {
		wordLen := len([]rune(word))
		if wordLen > maxRunes {
			flush()
			runes := []rune(word)
			for len(runes) > maxRunes {
				chunks = append(chunks, string(runes[:maxRunes]))
				runes = runes[maxRunes:]
			}
			current.WriteString(string(runes))
			currentLen = len(runes)
			continue
		}
		if currentLen > 0 && currentLen+1+wordLen > maxRunes {
			flush()
		}
		if currentLen > 0 {
			current.WriteByte(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += wordLen
	}
	flush()

	return chunks
}
