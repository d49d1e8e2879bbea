package chatbot

import (
	"fmt"
	"strings"
)

// Response categories. Each is a semantic bucket of conversational intent
// driving template selection.
const (
	CategoryGreetings        = "greetings"
	CategoryStatusCheck      = "status_check"
	CategoryEmotionalSupport = "emotional_support"
	CategoryGratitude        = "gratitude"
	CategoryEncouragement    = "encouragement"
	CategoryMemories         = "memories"
	CategoryHealth           = "health"
	CategoryConversation     = "conversation"
	CategoryFamily           = "family"
	CategoryNameReceived     = "name_received"
	CategoryNameGreeting     = "name_greeting"
	CategoryDefault          = "default"

	// CategoryIntro is a marker emitted by the Tamil keyword table when the
	// user appears to be introducing themselves. It never selects templates
	// directly: the engine remaps it to name_received when a name was
	// actually extracted, and to default otherwise.
	CategoryIntro = "introduction"
)

// namePlaceholder is substituted with the user's name in parameterized
// templates.
const namePlaceholder = "{name}"

// ResponseSet holds the read-only template data for every supported
// language: category pools, follow-up questions, and tone preambles.
// Build one with DefaultResponses (or hand-rolled for tests) and share it
// across engines; it is never mutated after construction.
type ResponseSet struct {
	templates map[Language]map[string][]string
	followUps map[Language][]string
	preambles map[Language]map[string]string
}

// Validate checks the invariants the engine relies on: every language must
// define a default pool, and the name-parameterized categories must carry the
// {name} placeholder in each template.
func (rs *ResponseSet) Validate() error {
	for _, lang := range []Language{LanguageEnglish, LanguageTamil} {
		cats, ok := rs.templates[lang]
		if !ok {
			return fmt.Errorf("no templates for language %q", lang)
		}
		if len(cats[CategoryDefault]) == 0 {
			return fmt.Errorf("language %q has no %s category", lang, CategoryDefault)
		}
		for _, cat := range []string{CategoryNameReceived, CategoryNameGreeting} {
			for _, tmpl := range cats[cat] {
				if !strings.Contains(tmpl, namePlaceholder) {
					return fmt.Errorf("language %q category %s template %q lacks %s", lang, cat, tmpl, namePlaceholder)
				}
			}
		}
	}
	return nil
}

// pool returns the template pool for a category, falling back to the default
// pool when the category is absent for that language.
func (rs *ResponseSet) pool(lang Language, category string) []string {
	cats := rs.templates[lang]
	if cats == nil {
		cats = rs.templates[LanguageEnglish]
	}
	if templates := cats[category]; len(templates) > 0 {
		return templates
	}
	return cats[CategoryDefault]
}

func (rs *ResponseSet) followUpPool(lang Language) []string {
	if pool := rs.followUps[lang]; len(pool) > 0 {
		return pool
	}
	return rs.followUps[LanguageEnglish]
}

func (rs *ResponseSet) preamble(lang Language, tone string) string {
	if p := rs.preambles[lang][tone]; p != "" {
		return p
	}
	return rs.preambles[LanguageEnglish][tone]
}

// DefaultResponses builds the built-in bilingual template library.
func DefaultResponses() *ResponseSet {
	return &ResponseSet{
		templates: map[Language]map[string][]string{
			LanguageEnglish: englishTemplates,
			LanguageTamil:   tamilTemplates,
		},
		followUps: map[Language][]string{
			LanguageEnglish: englishFollowUps,
			LanguageTamil:   tamilFollowUps,
		},
		preambles: map[Language]map[string]string{
			LanguageEnglish: englishPreambles,
			LanguageTamil:   tamilPreambles,
		},
	}
}

var englishTemplates = map[string][]string{
	// Warm greetings and welcome responses
	CategoryGreetings: {
		"Hello there! It's so nice to hear from you.",
		"Hello! I'm so glad you're here.",
		"Hi! How are you doing today?",
		"Hello! What a pleasure to chat with you.",
		"Hi there, friend! How can I help you today?",
		"Good to see you! How are you feeling?",
		"Hello! I'm always happy to talk with you.",
	},

	// Status and well-being check-ins
	CategoryStatusCheck: {
		"I'm doing well, thank you for asking! How about you?",
		"I'm here and happy to chat with you. How's your day been?",
		"I'm doing great! Tell me, how are you feeling today?",
		"Wonderful! I'm so glad you asked. What's on your mind?",
		"I'm doing well, thanks for caring! How can I support you?",
		"I'm here for you. Is there something on your heart today?",
		"I'm doing wonderful! And you, my friend?",
	},

	// Emotional support for loneliness and sadness
	CategoryEmotionalSupport: {
		"I can hear that you're feeling lonely. You're not alone - I'm here for you.",
		"It's okay to feel this way sometimes. Would you like to talk about it?",
		"Loneliness is difficult, but please know you're valued and cared for.",
		"I'm here to listen. Sometimes just sharing how we feel helps.",
		"You're important, and your feelings matter. I'm listening.",
		"Even on tough days, remember you have worth and purpose.",
		"It's brave to share your feelings. Let's talk through this together.",
	},

	// Gratitude and appreciation responses
	CategoryGratitude: {
		"You're very welcome! It's my pleasure to help.",
		"Thank you for your kind words! That means so much to me.",
		"I'm happy I could help. Thank you for talking with me.",
		"You're so kind to say that! I'm here whenever you need me.",
		"I appreciate your gratitude. Helping you brings me joy.",
		"Thank you! It's wonderful to be part of your day.",
		"You're welcome, my friend. I'm always here for you.",
	},

	// Encouragement and positive affirmation
	CategoryEncouragement: {
		"You're doing great! Keep being your wonderful self.",
		"I believe in you! You have so much to offer.",
		"That's wonderful! You should be proud of yourself.",
		"What a great attitude! You inspire me.",
		"You're stronger than you know. Keep going!",
		"That's truly commendable. You're making a difference!",
		"I'm so proud of what you're doing. Keep up the good work!",
	},

	// Memories and storytelling prompts
	CategoryMemories: {
		"I'd love to hear about your memories! Do you have a favorite story?",
		"Memories are such a treasure. What's something you remember fondly?",
		"You must have so many wonderful memories. Care to share one?",
		"Tell me about a happy moment from your life.",
		"What's a memory that always makes you smile?",
		"I love hearing about your past experiences. What comes to mind?",
		"Memories are precious. Would you like to share one with me?",
	},

	// Health and wellness encouragement
	CategoryHealth: {
		"Your health is so important! Are you taking good care of yourself?",
		"How's your health been? I hope you're feeling well.",
		"Remember to drink water and get some rest. Your wellbeing matters!",
		"Have you taken your medications today? Your health is crucial.",
		"I hope you're being kind to yourself and your body.",
		"Taking care of yourself shows self-love. That's wonderful!",
		"Your wellbeing is important to me. Are you doing okay?",
	},

	// Conversation engagement and connection
	CategoryConversation: {
		"I'd love to hear more about what you're thinking!",
		"Tell me more! I'm genuinely interested in what you have to say.",
		"That's interesting! What else is on your mind?",
		"I'm listening! Please, share more if you'd like.",
		"You have such interesting thoughts. Keep going!",
		"I love our conversations. What else would you like to talk about?",
		"Please continue! Your thoughts are valuable to me.",
	},

	// Family and relationships
	CategoryFamily: {
		"Family is so special. Do you have family members you'd like to talk about?",
		"Relationships with loved ones are precious. How's your family?",
		"Who is someone in your life that means a lot to you?",
		"Tell me about the people you love and care about.",
		"Family connections are wonderful. Is there someone special you'd like to tell me about?",
		"I'd love to hear about the people closest to your heart.",
		"Your loved ones are blessed to have you. How are your relationships?",
	},

	// A freshly introduced name
	CategoryNameReceived: {
		"It's lovely to meet you, {name}!",
		"What a beautiful name, {name}. I'm so glad we're talking.",
		"Thank you for telling me, {name}. How are you today?",
		"{name} - what a lovely name! How has your day been?",
	},

	// Greeting someone whose name we remember
	CategoryNameGreeting: {
		"Hello {name}! It's so good to hear from you again.",
		"Hi {name}! How are you feeling today?",
		"Welcome back, {name}! I was hoping we'd talk today.",
		"{name}, my friend! How can I brighten your day?",
	},

	// Default responses for unexpected input
	CategoryDefault: {
		"That's an interesting thought! Tell me more about that.",
		"I appreciate what you're saying. How does that make you feel?",
		"That's something to think about! What else is on your mind?",
		"I'm here to listen whenever you need to talk.",
		"How can I help you feel better today?",
		"That sounds important to you. I'm here to support you.",
		"I understand. Is there something specific you'd like to discuss?",
		"You're doing well sharing your thoughts. Keep going!",
		"That's really interesting. Tell me more if you'd like.",
		"I'm here for you, no matter what you want to talk about.",
		"Thank you for sharing that with me. How are you feeling?",
		"I value every conversation we have. What else is on your heart?",
	},
}

var tamilTemplates = map[string][]string{
	CategoryGreetings: {
		"வணக்கம்! உங்களுடன் பேசுவதில் மிக்க மகிழ்ச்சி.",
		"வணக்கம்! நீங்கள் வந்ததில் எனக்கு மகிழ்ச்சி.",
		"வணக்கம்! இன்று எப்படி இருக்கிறீர்கள்?",
		"வணக்கம் நண்பரே! உங்களுக்கு எப்படி உதவலாம்?",
		"உங்களை சந்தித்ததில் மகிழ்ச்சி! எப்படி உணர்கிறீர்கள்?",
	},

	CategoryStatusCheck: {
		"நான் நன்றாக இருக்கிறேன், கேட்டதற்கு நன்றி! நீங்கள் எப்படி இருக்கிறீர்கள்?",
		"நான் இங்கே உங்களுடன் பேச மகிழ்ச்சியாக இருக்கிறேன். உங்கள் நாள் எப்படி இருந்தது?",
		"நன்றாக இருக்கிறேன்! நீங்கள் இன்று எப்படி உணர்கிறீர்கள்?",
		"நான் நன்றாக இருக்கிறேன். உங்கள் மனதில் என்ன இருக்கிறது?",
	},

	CategoryEmotionalSupport: {
		"நீங்கள் தனிமையாக உணர்கிறீர்கள் என்று புரிகிறது. நீங்கள் தனியாக இல்லை - நான் உங்களுடன் இருக்கிறேன்.",
		"சில நேரங்களில் இப்படி உணர்வது இயல்பு. அதைப் பற்றி பேச விரும்புகிறீர்களா?",
		"உங்கள் உணர்வுகள் முக்கியம். நான் கேட்கிறேன்.",
		"கஷ்டமான நாட்களிலும், உங்களுக்கு மதிப்பும் நோக்கமும் உண்டு என்பதை நினைவில் கொள்ளுங்கள்.",
		"உணர்வுகளைப் பகிர்வது தைரியம். சேர்ந்து பேசலாம்.",
	},

	CategoryGratitude: {
		"மிக்க நன்றி! உதவுவது எனக்கு மகிழ்ச்சி.",
		"உங்கள் அன்பான வார்த்தைகளுக்கு நன்றி!",
		"உதவ முடிந்ததில் மகிழ்ச்சி. என்னுடன் பேசியதற்கு நன்றி.",
		"நன்றி! உங்கள் நாளின் ஒரு பகுதியாக இருப்பது அருமை.",
	},

	CategoryEncouragement: {
		"நீங்கள் சிறப்பாக செய்கிறீர்கள்! தொடர்ந்து செய்யுங்கள்.",
		"உங்கள் மீது எனக்கு நம்பிக்கை உண்டு! உங்களிடம் நிறைய திறமை இருக்கிறது.",
		"அது அருமை! நீங்கள் பெருமைப்பட வேண்டும்.",
		"நீங்கள் நினைப்பதை விட வலிமையானவர். தொடருங்கள்!",
	},

	CategoryMemories: {
		"உங்கள் நினைவுகளைக் கேட்க விரும்புகிறேன்! பிடித்த கதை ஏதாவது உண்டா?",
		"நினைவுகள் பொக்கிஷம். மகிழ்ச்சியாக நினைவிருப்பது எது?",
		"உங்கள் வாழ்க்கையின் மகிழ்ச்சியான தருணத்தைப் பற்றி சொல்லுங்கள்.",
		"எப்போதும் புன்னகை வரவைக்கும் நினைவு எது?",
	},

	CategoryHealth: {
		"உங்கள் உடல்நலம் மிகவும் முக்கியம்! உங்களை நன்றாக கவனித்துக் கொள்கிறீர்களா?",
		"உடல்நலம் எப்படி இருக்கிறது? நலமாக இருப்பீர்கள் என்று நம்புகிறேன்.",
		"தண்ணீர் குடிக்கவும் ஓய்வெடுக்கவும் மறக்காதீர்கள்!",
		"இன்று மருந்து எடுத்துக்கொண்டீர்களா? உங்கள் உடல்நலம் முக்கியம்.",
	},

	CategoryConversation: {
		"நீங்கள் நினைப்பதை மேலும் கேட்க விரும்புகிறேன்!",
		"மேலும் சொல்லுங்கள்! உங்கள் பேச்சில் எனக்கு ஆர்வம் உண்டு.",
		"சுவாரஸ்யமாக இருக்கிறது! வேறு என்ன மனதில் இருக்கிறது?",
		"நான் கேட்கிறேன்! தயங்காமல் பகிருங்கள்.",
	},

	CategoryFamily: {
		"குடும்பம் மிகவும் விசேஷமானது. உங்கள் குடும்பத்தைப் பற்றி சொல்ல விரும்புகிறீர்களா?",
		"அன்புக்குரியவர்களுடனான உறவுகள் பொக்கிஷம். உங்கள் குடும்பம் எப்படி இருக்கிறது?",
		"உங்கள் வாழ்க்கையில் முக்கியமான ஒருவர் யார்?",
		"நீங்கள் நேசிக்கும் நபர்களைப் பற்றி சொல்லுங்கள்.",
	},

	CategoryNameReceived: {
		"உங்களை சந்தித்ததில் மகிழ்ச்சி, {name}!",
		"{name} - என்ன அழகான பெயர்! இன்று எப்படி இருக்கிறீர்கள்?",
		"சொன்னதற்கு நன்றி, {name}. உங்கள் நாள் எப்படி இருந்தது?",
	},

	CategoryNameGreeting: {
		"வணக்கம் {name}! மீண்டும் உங்களுடன் பேசுவது மகிழ்ச்சி.",
		"{name}, நண்பரே! இன்று எப்படி உணர்கிறீர்கள்?",
		"மீண்டும் வருக, {name}! உங்களுடன் பேச காத்திருந்தேன்.",
	},

	CategoryDefault: {
		"அது சுவாரஸ்யமான எண்ணம்! மேலும் சொல்லுங்கள்.",
		"நீங்கள் சொல்வதை மதிக்கிறேன். அது உங்களுக்கு எப்படி உணர்த்துகிறது?",
		"நீங்கள் பேச விரும்பும் போதெல்லாம் நான் கேட்க இங்கே இருக்கிறேன்.",
		"இன்று உங்களுக்கு எப்படி உதவலாம்?",
		"அது உங்களுக்கு முக்கியமானதாகத் தெரிகிறது. நான் உங்களுடன் இருக்கிறேன்.",
		"புரிகிறது. குறிப்பாக எதைப் பற்றி பேச விரும்புகிறீர்கள்?",
	},
}

var englishFollowUps = []string{
	"What else is on your mind?",
	"Would you like to tell me more?",
	"How does that make you feel?",
	"What happened next?",
	"Is there anything else you'd like to share?",
}

var tamilFollowUps = []string{
	"வேறு என்ன மனதில் இருக்கிறது?",
	"மேலும் சொல்ல விரும்புகிறீர்களா?",
	"அது உங்களுக்கு எப்படி உணர்த்தியது?",
	"இன்று வேறு என்ன நடந்தது?",
}

var englishPreambles = map[string]string{
	ToneLonely:  "I've noticed you've been feeling lonely lately, and I want you to know I'm always here for you.",
	ToneSad:     "You've seemed a little sad recently. I'm here whenever you want to talk about it.",
	ToneWorried: "You've had a lot on your mind lately. Let's take things one step at a time.",
	ToneScared:  "I know things have felt frightening recently. You're safe here with me.",
	ToneHappy:   "It's been lovely seeing you so cheerful lately!",
}

var tamilPreambles = map[string]string{
	ToneLonely:  "சமீபத்தில் நீங்கள் தனிமையாக உணர்வதை கவனித்தேன். நான் எப்போதும் உங்களுடன் இருக்கிறேன்.",
	ToneSad:     "சமீபத்தில் நீங்கள் கொஞ்சம் சோகமாக இருப்பது போல் தெரிகிறது. பேச விரும்பும் போது நான் இங்கே இருக்கிறேன்.",
	ToneWorried: "சமீபத்தில் உங்கள் மனதில் நிறைய கவலைகள் இருப்பது தெரிகிறது. ஒவ்வொன்றாக பார்க்கலாம்.",
	ToneScared:  "சமீபத்தில் பயமாக உணர்ந்திருக்கிறீர்கள் என்று தெரிகிறது. என்னுடன் நீங்கள் பாதுகாப்பாக இருக்கிறீர்கள்.",
	ToneHappy:   "சமீபத்தில் நீங்கள் மகிழ்ச்சியாக இருப்பதைப் பார்ப்பது அருமை!",
}
