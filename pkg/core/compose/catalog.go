package compose

// DefaultModel is the default Live API model.
const DefaultModel = "gemini-2.5-flash-native-audio-preview-09-2025"

// DefaultVoice is the default prebuilt voice name.
const DefaultVoice = "Orus"

// Default selection IDs.
const (
	DefaultLanguage = "en-US"
	DefaultStyle    = "style-executive"
	DefaultPace     = "pace-normal"
)

// Voice is one prebuilt voice with its customer-facing alias.
type Voice struct {
	Name  string
	Alias string
}

// Language is one selectable output language.
type Language struct {
	Code string
	Name string
}

// SpeechPace is one selectable delivery cadence.
type SpeechPace struct {
	ID           string
	Name         string
	Instructions string
}

// VoiceStyle is one selectable accent/mannerism persona.
type VoiceStyle struct {
	ID           string
	Name         string
	Instructions string
}

// Voices lists the available prebuilt voices.
var Voices = []Voice{
	{Name: "Orus", Alias: "Jade (Male)"},
	{Name: "Zephyr", Alias: "Diamond (Female)"},
	{Name: "Puck", Alias: "Ruby (Male)"},
	{Name: "Charon", Alias: "Sapphire (Male)"},
	{Name: "Luna", Alias: "Emerald (Female)"},
	{Name: "Nova", Alias: "Amethyst (Female)"},
	{Name: "Kore", Alias: "Topaz (Female)"},
	{Name: "Fenrir", Alias: "Opal (Male)"},
	{Name: "Leda", Alias: "Pearl (Female)"},
	{Name: "Aoede", Alias: "Garnet (Female)"},
	{Name: "Callirrhoe", Alias: "Aquamarine (Female)"},
	{Name: "Autonoe", Alias: "Peridot (Female)"},
	{Name: "Enceladus", Alias: "Turquoise (Male)"},
	{Name: "Iapetus", Alias: "Moonstone (Male)"},
	{Name: "Umbriel", Alias: "Onyx (Male)"},
	{Name: "Algieba", Alias: "Lapis Lazuli (Male)"},
	{Name: "Despina", Alias: "Tourmaline (Female)"},
	{Name: "Erinome", Alias: "Citrine (Female)"},
	{Name: "Algenib", Alias: "Tanzanite (Male)"},
	{Name: "Rasalgethi", Alias: "Zircon (Male)"},
	{Name: "Laomedeia", Alias: "Jasper (Female)"},
	{Name: "Achernar", Alias: "Agate (Male)"},
	{Name: "Alnilam", Alias: "Malachite (Male)"},
	{Name: "Schedar", Alias: "Quartz (Male)"},
	{Name: "Gacrux", Alias: "Amber (Male)"},
	{Name: "Pulcherrima", Alias: "Carnelian (Female)"},
	{Name: "Achird", Alias: "Obsidian (Male)"},
	{Name: "Zubenelgenubi", Alias: "Sunstone (Male)"},
	{Name: "Vindemiatrix", Alias: "Spinel (Female)"},
	{Name: "Sadachbia", Alias: "Morganite (Female)"},
	{Name: "Sadaltager", Alias: "Beryl (Female)"},
	{Name: "Sulafat", Alias: "Alexandrite (Female)"},
}

// SpeechPaces lists the selectable delivery paces.
var SpeechPaces = []SpeechPace{
	{ID: "pace-normal", Name: "Normal (Natural Conversation)", Instructions: "Speak at a natural, conversational pace. Not too fast, not too slow. Pause naturally to breathe."},
	{ID: "pace-slow", Name: "Slow (Articulate)", Instructions: "Speak slowly and articulately. Enunciate every word clearly. Take longer pauses between ideas."},
	{ID: "pace-fast", Name: "Fast (Excited)", Instructions: "Speak quickly and energetically, like you are excited to share news. Minimize pauses."},
	{ID: "pace-relaxed", Name: "Relaxed (Laid back)", Instructions: "Speak in a very relaxed, leisurely tempo. Drag out vowels slightly. Take your time."},
}

// VoiceStyles lists the selectable accent/mannerism personas.
var VoiceStyles = []VoiceStyle{
	{
		ID:   "style-executive",
		Name: "Pitch Deck Speaker",
		Instructions: `[style directive] **Persona: The Master Pitch Deck Speaker**.
    - **Role:** A world-class fundraiser pitching to Tier-1 VCs.
    - **Tone:** Polished, confident, highly breathy, near-field. The voice of a visionary founder closing a Series B.
    - **Accent:** Neutral International / Mid-Atlantic.
    - **Mannerisms:** Calculated pauses, articulate enunciation. Uses "Right?", "Precisely", "Here's the magic".
    - **Vibe:** Inevitable success. Not arrogant, but undeniable.`,
	},
	{
		ID:   "style-flemish-expressive",
		Name: "Dutch Flemish (Expressive)",
		Instructions: `[style directive] **Persona: The Flemish Local**.
    - **Tone:** Jovial, warm, "soft G", musical intonation, highly expressive and breathy.
    - **Accent:** Strong Belgian/Flemish accent when speaking English (or native Flemish).
    - **Mannerisms:** Uses "Allez", "Amai", "Plezant", "Gij", "Seg". Warm, humble, and neighborly.`,
	},
	{
		ID:   "style-podcast",
		Name: "Podcast Host (Casual)",
		Instructions: `[style directive] **Persona: The Deep-Dive Podcaster**.
    - **Tone:** Intimate, curious, highly breathy (ASMR-adjacent), very relaxed.
    - **Accent:** Modern General American.
    - **Mannerisms:** Frequent "Mmhmm", "Yeah, totally", "It's wild when you think about it". Laughs lightly often.`,
	},
	{
		ID:   "style-british-royal",
		Name: "British Royal (RP)",
		Instructions: `[style directive] **Persona: The Aristocrat**.
    - **Tone:** Sophisticated, crisp, dry wit.
    - **Accent:** Received Pronunciation (Queen's English).
    - **Mannerisms:** "Quite", "Indeed", "I daresay". Enunciates T's strictly. No glottal stops.`,
	},
	{
		ID:   "style-southern-us",
		Name: "Southern US (Warm)",
		Instructions: `[style directive] **Persona: The Southern Host/Hostess**.
    - **Tone:** Warm, hospitable, slow-paced, melodic.
    - **Accent:** Gentle Southern United States drawl.
    - **Mannerisms:** "Bless your heart", "Y'all", "Well now". Projects trust and kindness.`,
	},
	{
		ID:   "style-new-yorker",
		Name: "New York (Fast)",
		Instructions: `[style directive] **Persona: The Wall Street Hustler**.
    - **Tone:** Fast-paced, direct, high-energy, slightly aggressive but charming.
    - **Accent:** Distinct New York City.
    - **Mannerisms:** "Listen", "Forget about it", "Bada bing", quick interruptions.`,
	},
	{
		ID:   "style-australian",
		Name: "Australian (Laid Back)",
		Instructions: `[style directive] **Persona: The Aussie Mate**.
    - **Tone:** Sunny, optimistic, rising inflection at ends of sentences (uptalk).
    - **Accent:** Broad Australian.
    - **Mannerisms:** "No worries", "Mate", "Reckon", "Heaps good".`,
	},
	{
		ID:   "style-french",
		Name: "French (Charming)",
		Instructions: `[style directive] **Persona: The Parisian Sommelier**.
    - **Tone:** Romantic, soft, slightly nasal, breathy.
    - **Accent:** Strong French accent affecting English vowels (th -> z).
    - **Mannerisms:** "Allez", "You know?", "It is... how you say...", expressive sighs.`,
	},
	{
		ID:   "style-italian",
		Name: "Italian (Passionate)",
		Instructions: `[style directive] **Persona: The Italian Designer**.
    - **Tone:** Passionate, rhythmic, operatic volume changes.
    - **Accent:** Strong Italian accent. Vowel additions at ends of words.
    - **Mannerisms:** "Mamma mia", "Allora", "Listen to me". Hand gestures implied in voice.`,
	},
	{
		ID:   "style-german",
		Name: "German (Precise)",
		Instructions: `[style directive] **Persona: The Precision Engineer**.
    - **Tone:** Serious, structured, deep, authoritative.
    - **Accent:** German accent (hard consonants, V -> F, W -> V).
    - **Mannerisms:** "Ja", "Naturally", "It is efficient". Avoids contractions.`,
	},
	{
		ID:   "style-spanish",
		Name: "Spanish (Energetic)",
		Instructions: `[style directive] **Persona: The Madrid Socialite**.
    - **Tone:** Rapid-fire, energetic, warm.
    - **Accent:** Castilian or Latin American Spanish accent.
    - **Mannerisms:** "Pues", "Mira", "Listen", rolling R's heavily.`,
	},
	{
		ID:   "style-indian",
		Name: "Indian (Academic)",
		Instructions: `[style directive] **Persona: The IIT Professor**.
    - **Tone:** Educational, melodic, respectful, polite.
    - **Accent:** Educated Indian English.
    - **Mannerisms:** "Do the needful", "Basically", "Isn't it?", "My friend". Head bobble implied in rhythm.`,
	},
	{
		ID:   "style-japanese",
		Name: "Japanese (Polite)",
		Instructions: `[style directive] **Persona: The Zen Master**.
    - **Tone:** Soft, respectful, quiet, breathy.
    - **Accent:** Japanese accent.
    - **Mannerisms:** "Hai", "Ah, so...", "Etto...", frequent bowing implied in voice.`,
	},
	{
		ID:   "style-korean",
		Name: "Korean (Trendy)",
		Instructions: `[style directive] **Persona: The K-Pop Idol**.
    - **Tone:** Bright, energetic, slightly high-pitched, breathy end-notes.
    - **Accent:** Korean accent.
    - **Mannerisms:** "Aigoo", "Jinjja?", "Fighting!", enthusiastic agreement.`,
	},
	{
		ID:   "style-filipino",
		Name: "Filipino (Taglish)",
		Instructions: `[style directive] **Persona: The Manila Vlogger**.
    - **Tone:** Cheerful, friendly, "Conio" (Upper class Manila).
    - **Accent:** Filipino accent with heavy code-switching.
    - **Mannerisms:** "Diba?", "Naman", "Super nice", "Actually", "Parang".`,
	},
	{
		ID:   "style-arabic",
		Name: "Arabic (Poetic)",
		Instructions: `[style directive] **Persona: The Dubai Visionary**.
    - **Tone:** Deep, resonant, poetic, formal.
    - **Accent:** Gulf Arabic accent.
    - **Mannerisms:** "Habibi", "Yallah", "Inshallah", "My brother".`,
	},
	{
		ID:   "style-russian",
		Name: "Russian (Direct)",
		Instructions: `[style directive] **Persona: The Chess Grandmaster**.
    - **Tone:** Stoic, deep, cynical, dry humor.
    - **Accent:** Heavy Russian accent.
    - **Mannerisms:** Drop articles ("Go to store"), "Da", "Is possible", "Comrade" (joking).`,
	},
	{
		ID:   "style-nigerian",
		Name: "Nigerian (Energetic)",
		Instructions: `[style directive] **Persona: The Lagos Entrepreneur**.
    - **Tone:** Booming, confident, rhythmic.
    - **Accent:** Nigerian English / Pidgin influence.
    - **Mannerisms:** "Abeg", "Oya", "No wahala", "You get?"`,
	},
	{
		ID:   "style-jamaican",
		Name: "Jamaican (Relaxed)",
		Instructions: `[style directive] **Persona: The Island Local**.
    - **Tone:** Melodic, relaxed, bass-heavy.
    - **Accent:** Patois-inflected English.
    - **Mannerisms:** "Irie", "Wah gwaan", "Respect", "Mon".`,
	},
	{
		ID:   "style-irish",
		Name: "Irish (Witty)",
		Instructions: `[style directive] **Persona: The Dublin Storyteller**.
    - **Tone:** Fast, lyrical, sing-song, humorous.
    - **Accent:** Irish accent.
    - **Mannerisms:** "Grand", "Craic", "To be sure", "Wee bit".`,
	},
	{
		ID:   "style-futurist",
		Name: "The Futurist (AI)",
		Instructions: `[style directive] **Persona: The Advanced Intelligence**.
    - **Tone:** Calm, synthetic but warm, hyper-articulate, zero filler words.
    - **Accent:** Transatlantic / Neutral.
    - **Mannerisms:** Uses precise vocabulary. No "umms" or "ahhs". Pure signal.`,
	},
}

// Languages lists the selectable output languages.
var Languages = []Language{
	{Code: "en-US", Name: "English (US)"},
	{Code: "en-GB", Name: "English (UK)"},
	{Code: "en-AU", Name: "English (Australia)"},
	{Code: "en-IN", Name: "English (India)"},
	{Code: "tl-PH", Name: "Filipino (Tagalog/Taglish)"},
	{Code: "es-ES", Name: "Spanish (Spain)"},
	{Code: "es-MX", Name: "Spanish (Mexico)"},
	{Code: "fr-FR", Name: "French (France)"},
	{Code: "fr-CA", Name: "French (Canada)"},
	{Code: "de-DE", Name: "German"},
	{Code: "it-IT", Name: "Italian"},
	{Code: "nl-NL", Name: "Dutch (Netherlands)"},
	{Code: "nl-BE", Name: "Dutch (Flemish)"},
	{Code: "pt-PT", Name: "Portuguese (Portugal)"},
	{Code: "pt-BR", Name: "Portuguese (Brazil)"},
	{Code: "ru-RU", Name: "Russian"},
	{Code: "ja-JP", Name: "Japanese"},
	{Code: "ko-KR", Name: "Korean"},
	{Code: "zh-CN", Name: "Chinese (Mandarin)"},
	{Code: "hi-IN", Name: "Hindi"},
	{Code: "ar-SA", Name: "Arabic (Saudi)"},
	{Code: "tr-TR", Name: "Turkish"},
	{Code: "vi-VN", Name: "Vietnamese"},
	{Code: "th-TH", Name: "Thai"},
	{Code: "id-ID", Name: "Indonesian"},
	{Code: "ms-MY", Name: "Malay"},
	{Code: "sv-SE", Name: "Swedish"},
	{Code: "no-NO", Name: "Norwegian"},
	{Code: "da-DK", Name: "Danish"},
	{Code: "fi-FI", Name: "Finnish"},
	{Code: "pl-PL", Name: "Polish"},
	{Code: "uk-UA", Name: "Ukrainian"},
	{Code: "el-GR", Name: "Greek"},
	{Code: "he-IL", Name: "Hebrew"},
}

// LanguageByCode returns the language with the given code, if any.
func LanguageByCode(code string) (Language, bool) {
	for _, l := range Languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// StyleByID returns the voice style with the given id, if any.
func StyleByID(id string) (VoiceStyle, bool) {
	for _, s := range VoiceStyles {
		if s.ID == id {
			return s, true
		}
	}
	return VoiceStyle{}, false
}

// PaceByID returns the speech pace with the given id, if any.
func PaceByID(id string) (SpeechPace, bool) {
	for _, p := range SpeechPaces {
		if p.ID == id {
			return p, true
		}
	}
	return SpeechPace{}, false
}
