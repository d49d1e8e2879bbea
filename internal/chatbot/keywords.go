package chatbot

import (
	"sort"
	"strings"
)

type keywordEntry struct {
	keyword  string
	category string
}

// KeywordSet maps message substrings to response categories. Entries are
// checked longest first so that multi-word phrases win over the short words
// they contain ("how are you" beats "hi" inside "hi, how are you").
type KeywordSet struct {
	entries map[Language][]keywordEntry
}

// DefaultKeywords builds the built-in bilingual keyword tables.
func DefaultKeywords() *KeywordSet {
	return NewKeywordSet(map[Language]map[string]string{
		LanguageEnglish: englishKeywords,
		LanguageTamil:   tamilKeywords,
	})
}

// NewKeywordSet builds a KeywordSet from per-language keyword-to-category
// maps. Keywords are expected lowercased; matching is done against the
// lowercased message.
func NewKeywordSet(tables map[Language]map[string]string) *KeywordSet {
	ks := &KeywordSet{entries: make(map[Language][]keywordEntry, len(tables))}
	for lang, table := range tables {
		entries := make([]keywordEntry, 0, len(table))
		for kw, cat := range table {
			entries = append(entries, keywordEntry{keyword: kw, category: cat})
		}
		// Longest first, ties broken lexically so iteration order of the
		// source map never changes the outcome.
		sort.Slice(entries, func(i, j int) bool {
			if len(entries[i].keyword) != len(entries[j].keyword) {
				return len(entries[i].keyword) > len(entries[j].keyword)
			}
			return entries[i].keyword < entries[j].keyword
		})
		ks.entries[lang] = entries
	}
	return ks
}

// Match returns the category for the first (longest) keyword found as a
// substring of the lowercased message, or CategoryDefault when nothing
// matches.
func (ks *KeywordSet) Match(lang Language, messageLower string) string {
	for _, e := range ks.entries[lang] {
		if strings.Contains(messageLower, e.keyword) {
			return e.category
		}
	}
	return CategoryDefault
}

var englishKeywords = map[string]string{
	"hello":     CategoryGreetings,
	"hi":        CategoryGreetings,
	"hey":       CategoryGreetings,
	"greetings": CategoryGreetings,

	"how are you":         CategoryStatusCheck,
	"how are you doing":   CategoryStatusCheck,
	"how do you do":       CategoryStatusCheck,
	"how have you been":   CategoryStatusCheck,
	"what is your status": CategoryStatusCheck,

	"lonely":     CategoryEmotionalSupport,
	"loneliness": CategoryEmotionalSupport,
	"sad":        CategoryEmotionalSupport,
	"sadness":    CategoryEmotionalSupport,
	"depressed":  CategoryEmotionalSupport,
	"depression": CategoryEmotionalSupport,
	"unhappy":    CategoryEmotionalSupport,
	"upset":      CategoryEmotionalSupport,
	"worried":    CategoryEmotionalSupport,
	"anxiety":    CategoryEmotionalSupport,

	"thank":      CategoryGratitude,
	"thanks":     CategoryGratitude,
	"appreciate": CategoryGratitude,
	"grateful":   CategoryGratitude,

	"accomplished":  CategoryEncouragement,
	"achievement":   CategoryEncouragement,
	"did something": CategoryEncouragement,
	"proud":         CategoryEncouragement,
	"success":       CategoryEncouragement,

	"remember":      CategoryMemories,
	"memory":        CategoryMemories,
	"remember when": CategoryMemories,
	"long ago":      CategoryMemories,
	"the old days":  CategoryMemories,

	"health":      CategoryHealth,
	"medicine":    CategoryHealth,
	"medication":  CategoryHealth,
	"doctor":      CategoryHealth,
	"health care": CategoryHealth,
	"exercise":    CategoryHealth,
	"eat":         CategoryHealth,

	"family":        CategoryFamily,
	"mother":        CategoryFamily,
	"father":        CategoryFamily,
	"children":      CategoryFamily,
	"grandchild":    CategoryFamily,
	"grandchildren": CategoryFamily,
	"spouse":        CategoryFamily,
	"husband":       CategoryFamily,
	"wife":          CategoryFamily,
	"son":           CategoryFamily,
	"daughter":      CategoryFamily,
	"loved one":     CategoryFamily,
}

var tamilKeywords = map[string]string{
	"வணக்கம்": CategoryGreetings,
	"ஹலோ":     CategoryGreetings,

	"எப்படி இருக்கிறீர்கள்": CategoryStatusCheck,
	"எப்படி இருக்கீங்க":     CategoryStatusCheck,
	"நலமா":                  CategoryStatusCheck,

	"தனிமை":    CategoryEmotionalSupport,
	"தனியா":    CategoryEmotionalSupport,
	"சோகம்":    CategoryEmotionalSupport,
	"கவலை":     CategoryEmotionalSupport,
	"வருத்தம்": CategoryEmotionalSupport,
	"அழுகை":    CategoryEmotionalSupport,
	"பயம்":     CategoryEmotionalSupport,

	"நன்றி": CategoryGratitude,

	"சாதனை":   CategoryEncouragement,
	"பெருமை":  CategoryEncouragement,
	"வெற்றி":  CategoryEncouragement,

	"நினைவு":        CategoryMemories,
	"ஞாபகம்":        CategoryMemories,
	"பழைய நாட்கள்":  CategoryMemories,

	"உடல்நலம்":  CategoryHealth,
	"மருந்து":   CategoryHealth,
	"மருத்துவர்": CategoryHealth,
	"டாக்டர்":   CategoryHealth,
	"உடம்பு":    CategoryHealth,

	"குடும்பம்": CategoryFamily,
	"அம்மா":     CategoryFamily,
	"அப்பா":     CategoryFamily,
	"மகன்":      CategoryFamily,
	"மகள்":      CategoryFamily,
	"பேரன்":     CategoryFamily,
	"பேத்தி":    CategoryFamily,
	"கணவர்":     CategoryFamily,
	"மனைவி":     CategoryFamily,

	// Self-introduction markers; remapped by the engine depending on
	// whether a name was actually extracted.
	"என் பெயர்":        CategoryIntro,
	"என்னுடைய பெயர்":   CategoryIntro,
	"பெயர்":            CategoryIntro,
}
