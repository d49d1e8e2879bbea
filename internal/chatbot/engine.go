package chatbot

import (
	"fmt"
	"strings"
)

// Probability defaults for the engine's random features.
const (
	DefaultNameGreetingProb = 0.55
	DefaultPreambleProb     = 0.35
	DefaultFollowUpProb     = 0.75
)

// emptyInputResponse is returned verbatim for whitespace-only messages.
const emptyInputResponse = "I'm here to listen. Feel free to share whatever's on your mind!"

// Config tunes an Engine. The zero value is usable: defaults are filled in
// by NewEngine. Because zero means "use the default", a probability is
// disabled outright by setting it to any negative value.
type Config struct {
	// NameGreetingProb is the chance a greeting from a known user uses a
	// name-personalized template.
	NameGreetingProb float64
	// PreambleProb is the chance a detected history tone produces an
	// empathetic preamble.
	PreambleProb float64
	// FollowUpProb is the chance a follow-up question is appended when the
	// base response does not already end with one.
	FollowUpProb float64
	// Rand overrides the randomness source, mainly for tests.
	Rand Rand
	// Responses overrides the built-in template library.
	Responses *ResponseSet
	// Keywords overrides the built-in keyword tables.
	Keywords *KeywordSet
}

// Engine generates chatbot replies. Safe for concurrent use; all tables are
// read-only after construction.
type Engine struct {
	cfg       Config
	responses *ResponseSet
	keywords  *KeywordSet
	rng       Rand
}

// NewEngine builds an Engine, filling config defaults and validating the
// template library.
func NewEngine(cfg Config) (*Engine, error) {
	cfg.NameGreetingProb = normalizeProb(cfg.NameGreetingProb, DefaultNameGreetingProb)
	cfg.PreambleProb = normalizeProb(cfg.PreambleProb, DefaultPreambleProb)
	cfg.FollowUpProb = normalizeProb(cfg.FollowUpProb, DefaultFollowUpProb)
	if cfg.Rand == nil {
		cfg.Rand = newDefaultRand()
	}
	if cfg.Responses == nil {
		cfg.Responses = DefaultResponses()
	}
	if cfg.Keywords == nil {
		cfg.Keywords = DefaultKeywords()
	}
	if err := cfg.Responses.Validate(); err != nil {
		return nil, fmt.Errorf("invalid response templates: %w", err)
	}
	return &Engine{
		cfg:       cfg,
		responses: cfg.Responses,
		keywords:  cfg.Keywords,
		rng:       cfg.Rand,
	}, nil
}

// Generate produces one reply for the given request.
func (e *Engine) Generate(req Request) Result {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Result{Response: emptyInputResponse, Language: LanguageEnglish, Category: CategoryDefault}
	}

	lang := DetectLanguage(message, req.ForcedLanguage)
	lowered := strings.ToLower(message)

	detectedName := ExtractName(message)
	displayName := detectedName
	if displayName == "" {
		displayName = req.DisplayName
	}

	category := e.refineCategory(e.keywords.Match(lang, lowered), detectedName)
	base := e.selectBase(lang, category, detectedName, displayName)

	parts := make([]string, 0, 4)
	if tone := AnalyzeHistory(req.History); tone != "" && e.rng.Float64() < e.cfg.PreambleProb {
		if p := e.responses.preamble(lang, tone); p != "" {
			parts = append(parts, p)
		}
	}
	parts = append(parts, base)
	parts = append(parts, microRespond(e.rng, lang, lowered, req.Username))
	if !strings.HasSuffix(base, "?") && e.rng.Float64() < e.cfg.FollowUpProb {
		if pool := e.responses.followUpPool(lang); len(pool) > 0 {
			parts = append(parts, pool[e.rng.Intn(len(pool))])
		}
	}

	return Result{
		Response:     strings.Join(parts, " "),
		DetectedName: detectedName,
		Language:     lang,
		Category:     category,
	}
}

// normalizeProb maps an unset (zero) probability to its default and any
// negative value to zero, so a feature can be switched off entirely.
func normalizeProb(p, def float64) float64 {
	switch {
	case p == 0:
		return def
	case p < 0:
		return 0
	}
	return p
}

// refineCategory is the second classification stage. The Tamil introduction
// marker becomes name_received only when a name was actually extracted, and
// an otherwise-unclassified message that carries a fresh introduction is
// promoted to name_received as well.
func (e *Engine) refineCategory(category, detectedName string) string {
	switch category {
	case CategoryIntro:
		if detectedName != "" {
			return CategoryNameReceived
		}
		return CategoryDefault
	case CategoryDefault:
		if detectedName != "" {
			return CategoryNameReceived
		}
	}
	return category
}

func (e *Engine) selectBase(lang Language, category, detectedName, displayName string) string {
	switch {
	case category == CategoryNameReceived && detectedName != "":
		return e.pick(lang, CategoryNameReceived, detectedName)
	case category == CategoryGreetings && displayName != "" && e.rng.Float64() < e.cfg.NameGreetingProb:
		return e.pick(lang, CategoryNameGreeting, displayName)
	default:
		return e.pick(lang, category, "")
	}
}

func (e *Engine) pick(lang Language, category, name string) string {
	pool := e.responses.pool(lang, category)
	tmpl := pool[e.rng.Intn(len(pool))]
	if name != "" {
		tmpl = strings.ReplaceAll(tmpl, namePlaceholder, name)
	}
	return tmpl
}
