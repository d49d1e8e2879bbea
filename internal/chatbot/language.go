package chatbot

// tamilBlockLo and tamilBlockHi bound the Tamil Unicode block.
const (
	tamilBlockLo = 0x0B80
	tamilBlockHi = 0x0BFF
)

// DetectLanguage picks the response language for a message. A valid forced
// language always wins; otherwise the message is scanned for Tamil script and
// English is the fallback.
func DetectLanguage(message string, forced Language) Language {
	if forced.Valid() {
		return forced
	}
	for _, r := range message {
		if r >= tamilBlockLo && r <= tamilBlockHi {
			return LanguageTamil
		}
	}
	return LanguageEnglish
}
