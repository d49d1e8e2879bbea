package chatbot

import "strings"

// Tone labels derived from scanning recent user messages.
const (
	ToneLonely  = "lonely"
	ToneSad     = "sad"
	ToneWorried = "worried"
	ToneScared  = "scared"
	ToneHappy   = "happy"
)

// toneOrder fixes the tie-break: the first tone in this order with the
// maximal count wins.
var toneOrder = []string{ToneLonely, ToneSad, ToneWorried, ToneScared, ToneHappy}

var toneKeywords = map[string][]string{
	ToneLonely:  {"lonely", "alone", "loneliness", "isolated", "தனிமை", "தனியா"},
	ToneSad:     {"sad", "cry", "crying", "unhappy", "miserable", "depressed", "சோகம்", "அழுகை", "வருத்தம்"},
	ToneWorried: {"worried", "worry", "anxious", "nervous", "stress", "கவலை"},
	ToneScared:  {"scared", "afraid", "frightened", "fear", "பயம்"},
	ToneHappy:   {"happy", "glad", "joy", "wonderful", "great day", "மகிழ்ச்சி", "சந்தோஷம்"},
}

// historyWindow is how many of the most recent user turns are scanned.
const historyWindow = 6

// minHistoryTurns is the minimum number of prior turns required before the
// analyzer considers the history meaningful.
const minHistoryTurns = 3

// AnalyzeHistory scans the most recent user turns for emotional keywords and
// returns the dominant tone, or "" when there is not enough history or no
// tone was detected. Fewer than minHistoryTurns prior turns is treated as
// not enough signal.
func AnalyzeHistory(history []Turn) string {
	if len(history) < minHistoryTurns {
		return ""
	}

	var userMessages []string
	for _, turn := range history {
		if turn.Sender != "user" || turn.Message == "" {
			continue
		}
		userMessages = append(userMessages, strings.ToLower(turn.Message))
	}
	if len(userMessages) > historyWindow {
		userMessages = userMessages[len(userMessages)-historyWindow:]
	}

	counts := make(map[string]int, len(toneOrder))
	for _, msg := range userMessages {
		for tone, keywords := range toneKeywords {
			for _, kw := range keywords {
				if strings.Contains(msg, kw) {
					counts[tone]++
					break
				}
			}
		}
	}

	best := ""
	bestCount := 0
	for _, tone := range toneOrder {
		if counts[tone] > bestCount {
			best = tone
			bestCount = counts[tone]
		}
	}
	return best
}
