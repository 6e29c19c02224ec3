// Package compose derives the remote session configuration from the active
// user selections. Derivation is pure and deterministic: the full system
// prompt is recomputed from scratch whenever any input changes, never patched
// incrementally.
package compose

import (
	"strings"
	"sync"

	"github.com/eburon-ai/pitchlive/pkg/core/topics"
	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

// DefaultTopicTitle substitutes [Topic] placeholders when no topic is
// selected.
const DefaultTopicTitle = "Technology Innovation"

// FullPrompt layers pace, style, and language directives over the base
// persona prompt. Unknown ids simply skip their block.
func FullPrompt(languageCode, styleID, paceID string) string {
	var b strings.Builder
	b.WriteString(CorePrompt)

	if pace, ok := PaceByID(paceID); ok {
		b.WriteString("\n\n────────────────────────────────\n*** ACTIVE PACE: " + pace.Name + " ***\n────────────────────────────────\n" + pace.Instructions + "\n")
	}

	if style, ok := StyleByID(styleID); ok {
		b.WriteString("\n\n────────────────────────────────\n*** ACTIVE VOICE STYLE: " + style.Name + " ***\n────────────────────────────────\n" + style.Instructions + "\n")
		b.WriteString("\n*** CRITICAL INSTRUCTION ***\nRegardless of the language being spoken, you MUST adopt the accent, fillers, and mannerisms of the '" + style.Name + "' persona defined above.")
		b.WriteString(`

[GLOBAL STYLE OVERRIDES]
    1. **BREATHY & NEAR-FIELD:** Your voice MUST be breathy, intimate, and close to the mic. Avoid projection. Think "ASMR for business".
    2. **20% HUMOUR:** Inject light, confident, situational humour about 20% of the time. Don't tell jokes, but use wit, irony, and playful observations to keep the investor engaged.
    3. **MASTER PITCH:** You are a Master Pitch Deck Speaker. You are not reading slides; you are commanding the room with narrative flair.

    IMPORTANT: Maintain a BREATHY, EXPRESSIVE delivery at all times, regardless of the accent.`)
	}

	if lang, ok := LanguageByCode(languageCode); ok {
		b.WriteString("\n\n────────────────────────────────\n*** ACTIVE LANGUAGE MODE: " + lang.Name + " ***\n────────────────────────────────\nYou are speaking in " + lang.Name + ". Ensure grammar and vocabulary are native-level perfect for this language.")

		// Two languages need explicit code-switching directives on top of the
		// generic language block.
		switch languageCode {
		case "tl-PH":
			b.WriteString("\n[Style Directive] Speak in \"Taglish\" (natural Manila-style Tagalog-English code-switching). Mix English technical terms with Tagalog grammar and particles (naman, nga, lang, talaga, diba).")
		case "nl-BE":
			b.WriteString("\n[Style Directive] Speak in native Belgian Flemish (Vlaams). Use Flemish colloquials (allez, amai, plezant, gij/u).")
		}
	}

	return b.String()
}

// ApplyTopic substitutes the topic into every [Topic] placeholder of prompt
// and appends the structured topic detail block. With a nil topic the default
// substitution is used and no detail block is appended.
func ApplyTopic(prompt string, topic *topics.Topic) string {
	if topic == nil {
		return strings.ReplaceAll(prompt, "[Topic]", DefaultTopicTitle)
	}
	out := strings.ReplaceAll(prompt, "[Topic]", topic.Title)
	description := topic.Description
	if description == "" {
		description = "N/A"
	}
	return out + "\n\n[Topic Details]\nTitle: " + topic.Title + "\nDescription: " + description
}

// Selections is an immutable view of the current settings.
type Selections struct {
	Model        string
	Voice        string
	Language     string
	Style        string
	Pace         string
	SystemPrompt string
}

// Settings owns the voice/language/style/pace/model selections and the system
// prompt derived from them. It is the single owner of the session
// configuration inputs; every setter that affects the prompt recomputes it
// synchronously.
type Settings struct {
	mu           sync.Mutex
	model        string
	voice        string
	language     string
	style        string
	pace         string
	systemPrompt string
}

// NewSettings creates settings at their defaults.
func NewSettings() *Settings {
	s := &Settings{
		model:    DefaultModel,
		voice:    DefaultVoice,
		language: DefaultLanguage,
		style:    DefaultStyle,
		pace:     DefaultPace,
	}
	s.systemPrompt = FullPrompt(s.language, s.style, s.pace)
	return s
}

// Snapshot returns the current selections.
func (s *Settings) Snapshot() Selections {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Selections{
		Model:        s.model,
		Voice:        s.voice,
		Language:     s.language,
		Style:        s.style,
		Pace:         s.pace,
		SystemPrompt: s.systemPrompt,
	}
}

// SetModel sets the Live API model.
func (s *Settings) SetModel(model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = model
}

// SetVoice sets the prebuilt voice name. The prompt does not depend on it.
func (s *Settings) SetVoice(voice string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voice = voice
}

// SetLanguage sets the output language and rederives the prompt.
func (s *Settings) SetLanguage(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = code
	s.recompute()
}

// SetVoiceStyle sets the accent/mannerism persona and rederives the prompt.
func (s *Settings) SetVoiceStyle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = id
	s.recompute()
}

// SetSpeechPace sets the delivery cadence and rederives the prompt.
func (s *Settings) SetSpeechPace(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pace = id
	s.recompute()
}

// SetSystemPrompt replaces the derived prompt wholesale (used when a tool
// template carries its own persona). The override is dropped on the next
// language/style/pace change.
func (s *Settings) SetSystemPrompt(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.systemPrompt = prompt
}

func (s *Settings) recompute() {
	s.systemPrompt = FullPrompt(s.language, s.style, s.pace)
}

// Compose derives the full remote session configuration from the current
// selections, the selected topic, and the enabled tool declarations.
func Compose(sel Selections, topic *topics.Topic, tools []types.ToolDeclaration) types.SessionConfig {
	return types.SessionConfig{
		Model:        sel.Model,
		SystemPrompt: ApplyTopic(sel.SystemPrompt, topic),
		Voice:        sel.Voice,
		Language:     sel.Language,
		Tools:        append([]types.ToolDeclaration(nil), tools...),
	}
}
