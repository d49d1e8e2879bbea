package chatbot

import (
	"regexp"
	"strings"
	"unicode"
)

// namePatterns are evaluated in order; the first one whose capture group
// yields a candidate that survives the stop-list wins. Most specific
// patterns come first so "my name is Ravi" is not shadowed by "i am".
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bmy name is ([A-Za-z]{2,})`),
	regexp.MustCompile(`(?i)\bname['’]s ([A-Za-z]{2,})`),
	regexp.MustCompile(`(?i)\bcall me ([A-Za-z]{2,})`),
	regexp.MustCompile(`(?i)\bi am ([A-Za-z]{2,})`),
	regexp.MustCompile(`(?i)\bi['’]m ([A-Za-z]{2,})`),
	regexp.MustCompile(`என்னுடைய பெயர் ([\p{Tamil}A-Za-z]{2,})`),
	regexp.MustCompile(`என் பெயர் ([\p{Tamil}A-Za-z]{2,})`),
	regexp.MustCompile(`நான் ([\p{Tamil}]{2,})`),
}

// nameStopWords filters capture-group hits that are common sentence
// continuations rather than names ("I am fine", "I'm here").
var nameStopWords = map[string]struct{}{
	"fine":    {},
	"happy":   {},
	"here":    {},
	"good":    {},
	"okay":    {},
	"ok":      {},
	"well":    {},
	"sad":     {},
	"sorry":   {},
	"tired":   {},
	"lonely":  {},
	"hungry":  {},
	"sure":    {},
	"not":     {},
	"just":    {},
	"really":  {},
	"very":    {},
	"doing":   {},
	"feeling": {},
	"great":   {},

	"நன்றாக":   {},
	"நலமாக":    {},
	"சோகமாக":   {},
	"தனியாக":   {},
	"இங்கே":    {},
	"இப்போது":  {},
}

// ExtractName scans a message for a self-introduction and returns the
// candidate name with its first letter capitalized, or "" when no pattern
// matches or the candidate is a stop word.
func ExtractName(message string) string {
	for _, pat := range namePatterns {
		m := pat.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		candidate := m[1]
		if _, stopped := nameStopWords[strings.ToLower(candidate)]; stopped {
			continue
		}
		return capitalize(candidate)
	}
	return ""
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
