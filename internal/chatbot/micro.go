package chatbot

import "strings"

// microRule pairs trigger substrings with a pool of short empathetic lines.
// Rules are checked in order; first trigger found in the message wins.
type microRule struct {
	triggers map[Language][]string
	pools    map[Language][]string
}

var microRules = []microRule{
	{
		triggers: map[Language][]string{
			LanguageEnglish: {"lonely", "alone"},
			LanguageTamil:   {"தனிமை", "தனியா"},
		},
		pools: map[Language][]string{
			LanguageEnglish: {
				"I'm here with you. You never have to feel alone while talking to me.",
				"Sometimes talking helps reduce loneliness. Would you like to share more?",
				"You are not alone. I'm always here to listen.",
			},
			LanguageTamil: {
				"நான் உங்களுடன் இருக்கிறேன். என்னுடன் பேசும் போது நீங்கள் ஒருபோதும் தனியாக இல்லை.",
				"பேசுவது தனிமையை குறைக்க உதவும். மேலும் பகிர விரும்புகிறீர்களா?",
				"நீங்கள் தனியாக இல்லை. நான் எப்போதும் கேட்க இங்கே இருக்கிறேன்.",
			},
		},
	},
	{
		triggers: map[Language][]string{
			LanguageEnglish: {"sad", "cry"},
			LanguageTamil:   {"சோகம்", "அழுகை", "வருத்தம்"},
		},
		pools: map[Language][]string{
			LanguageEnglish: {
				"I'm sorry you feel this way. Your feelings matter.",
				"It's okay to feel sad sometimes. I'm here with you.",
				"You can share anything with me safely.",
			},
			LanguageTamil: {
				"நீங்கள் இப்படி உணர்வதற்கு வருந்துகிறேன். உங்கள் உணர்வுகள் முக்கியம்.",
				"சில நேரங்களில் சோகமாக உணர்வது பரவாயில்லை. நான் உங்களுடன் இருக்கிறேன்.",
				"என்னிடம் எதையும் பாதுகாப்பாக பகிரலாம்.",
			},
		},
	},
	{
		triggers: map[Language][]string{
			LanguageEnglish: {"happy"},
			LanguageTamil:   {"மகிழ்ச்சி", "சந்தோஷம்"},
		},
		pools: map[Language][]string{
			LanguageEnglish: {
				"Your happiness makes me happy too.",
				"That's wonderful! Tell me more.",
				"It's nice to hear positive things from you.",
			},
			LanguageTamil: {
				"உங்கள் மகிழ்ச்சி எனக்கும் மகிழ்ச்சி.",
				"அது அருமை! மேலும் சொல்லுங்கள்.",
				"உங்களிடமிருந்து நல்ல விஷயங்களைக் கேட்பது இனிமை.",
			},
		},
	},
	{
		triggers: map[Language][]string{
			LanguageEnglish: {"family"},
			LanguageTamil:   {"குடும்பம்"},
		},
		pools: map[Language][]string{
			LanguageEnglish: {
				"Family memories are precious.",
				"Would you like to tell me about your family?",
				"Family brings warmth to life.",
			},
			LanguageTamil: {
				"குடும்ப நினைவுகள் விலைமதிப்பற்றவை.",
				"உங்கள் குடும்பத்தைப் பற்றி சொல்ல விரும்புகிறீர்களா?",
				"குடும்பம் வாழ்க்கைக்கு அரவணைப்பு தரும்.",
			},
		},
	},
	{
		triggers: map[Language][]string{
			LanguageEnglish: {"health"},
			LanguageTamil:   {"உடல்நலம்", "மருந்து"},
		},
		pools: map[Language][]string{
			LanguageEnglish: {
				"Health is very important.",
				"Did you take medicines today?",
				"Taking care of yourself matters.",
			},
			LanguageTamil: {
				"உடல்நலம் மிகவும் முக்கியம்.",
				"இன்று மருந்து எடுத்துக்கொண்டீர்களா?",
				"உங்களை கவனித்துக்கொள்வது முக்கியம்.",
			},
		},
	},
	{
		triggers: map[Language][]string{
			LanguageEnglish: {"name"},
			LanguageTamil:   {"பெயர்"},
		},
		pools: map[Language][]string{
			LanguageEnglish: {"That is a nice name."},
			LanguageTamil:   {"அது ஒரு அழகான பெயர்."},
		},
	},
}

var microFallback = map[Language][]string{
	LanguageEnglish: {
		"Tell me more.",
		"I am listening.",
		"Please continue.",
		"What else would you like to share?",
	},
	LanguageTamil: {
		"மேலும் சொல்லுங்கள்.",
		"நான் கேட்கிறேன்.",
		"தொடருங்கள்.",
		"வேறு என்ன பகிர விரும்புகிறீர்கள்?",
	},
}

// microRespond is the secondary empathy responder. It returns one short line
// triggered by the first matching keyword, or a generic acknowledgment when
// nothing matches. The username accompanies the message; the current rule
// pools are fixed lines that do not reference it.
func microRespond(rng Rand, lang Language, messageLower, username string) string {
	for _, rule := range microRules {
		triggers := rule.triggers[lang]
		if len(triggers) == 0 {
			triggers = rule.triggers[LanguageEnglish]
		}
		for _, trigger := range triggers {
			if strings.Contains(messageLower, trigger) {
				pool := rule.pools[lang]
				if len(pool) == 0 {
					pool = rule.pools[LanguageEnglish]
				}
				return pool[rng.Intn(len(pool))]
			}
		}
	}
	pool := microFallback[lang]
	if len(pool) == 0 {
		pool = microFallback[LanguageEnglish]
	}
	return pool[rng.Intn(len(pool))]
}
