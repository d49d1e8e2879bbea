// Package chatbot implements the bilingual (English/Tamil) response
// generation engine: keyword-to-category matching, name extraction,
// conversation-history tone analysis, and templated reply composition.
//
// The engine holds no mutable state between calls. Template and keyword
// tables are built once and never modified, so a single Engine may be shared
// by any number of request handlers.
package chatbot

import (
	"errors"
)

// Supported conversation languages.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageTamil   Language = "tamil"
)

// Valid reports whether l is a language the engine supports.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageTamil
}

// Turn is one prior message of the conversation, supplied by the caller for
// history analysis. The engine never mutates or retains turns.
type Turn struct {
	Sender  string `json:"sender"` // "user" or "bot"
	Message string `json:"message"`
}

// Request carries the inputs for one response generation call.
type Request struct {
	// Message is the user's current message.
	Message string
	// Username is the account name, passed through to the micro responder.
	Username string
	// History is the prior conversation, oldest first.
	History []Turn
	// DisplayName is a name remembered from an earlier turn, if any.
	DisplayName string
	// ForcedLanguage bypasses automatic language detection when set.
	ForcedLanguage Language
}

// Result is the engine's output for one call.
type Result struct {
	Response     string   `json:"response"`
	DetectedName string   `json:"detected_name,omitempty"`
	Language     Language `json:"language"`
	// Category is the matched response category, kept off the wire and used
	// for instrumentation.
	Category string `json:"-"`
}

// ErrInvalidInput is returned when the caller supplies no message value at
// all (for example a JSON body where "message" is missing or not a string).
var ErrInvalidInput = errors.New("message must be a string")
