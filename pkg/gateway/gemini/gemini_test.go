package gemini

import (
	"log/slog"
	"testing"

	"google.golang.org/genai"

	"github.com/eburon-ai/pitchlive/pkg/core/session"
	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := NewClient("", slog.Default()); err == nil {
		t.Fatal("empty api key accepted")
	}
}

func TestLiveConfigMapping(t *testing.T) {
	t.Parallel()

	cfg := types.SessionConfig{
		Model:        "gemini-2.5-flash-native-audio-preview-09-2025",
		SystemPrompt: "You are a narrator.",
		Voice:        "Orus",
		Language:     "en-US",
		Tools: []types.ToolDeclaration{{
			Name:        "lookup_order",
			Description: "Look up an order.",
			Parameters: map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"order_number": map[string]any{"type": "STRING"},
				},
			},
		}},
	}

	out := liveConfig(cfg)

	if len(out.ResponseModalities) != 1 || out.ResponseModalities[0] != genai.ModalityAudio {
		t.Fatalf("modalities = %v", out.ResponseModalities)
	}
	if out.SystemInstruction == nil || out.SystemInstruction.Parts[0].Text != "You are a narrator." {
		t.Fatal("system instruction not mapped")
	}
	if out.SpeechConfig == nil || out.SpeechConfig.LanguageCode != "en-US" {
		t.Fatal("language not mapped")
	}
	if out.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName != "Orus" {
		t.Fatal("voice not mapped")
	}
	if out.InputAudioTranscription == nil || out.OutputAudioTranscription == nil {
		t.Fatal("transcription not enabled")
	}
	if len(out.Tools) != 1 || len(out.Tools[0].FunctionDeclarations) != 1 {
		t.Fatalf("tools = %+v", out.Tools)
	}
	fd := out.Tools[0].FunctionDeclarations[0]
	if fd.Name != "lookup_order" || fd.Parameters == nil {
		t.Fatalf("declaration = %+v", fd)
	}
}

func TestSchemaFromMap(t *testing.T) {
	t.Parallel()

	schema, err := schemaFromMap(map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"address": map[string]any{"type": "STRING", "description": "Where to go."},
		},
		"required": []any{"address"},
	})
	if err != nil {
		t.Fatalf("schemaFromMap: %v", err)
	}
	if schema.Type != genai.TypeObject {
		t.Fatalf("type = %v", schema.Type)
	}
	prop, ok := schema.Properties["address"]
	if !ok || prop.Type != genai.TypeString {
		t.Fatalf("properties = %+v", schema.Properties)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "address" {
		t.Fatalf("required = %v", schema.Required)
	}

	if _, err := schemaFromMap(nil); err == nil {
		t.Fatal("empty schema accepted")
	}
}

func TestServerContentJoinsParts(t *testing.T) {
	t.Parallel()

	content, ok := serverContent(&genai.LiveServerContent{
		ModelTurn: &genai.Content{Parts: []*genai.Part{
			{Text: "The margins"},
			{Text: ""},
			{Text: "are spectacular."},
		}},
		GroundingMetadata: &genai.GroundingMetadata{
			GroundingChunks: []*genai.GroundingChunk{
				{Web: &genai.GroundingChunkWeb{URI: "https://example.com", Title: "Example"}},
				{Web: nil},
			},
		},
	})
	if !ok {
		t.Fatal("content dropped")
	}
	if content.Text != "The margins are spectacular." {
		t.Fatalf("text = %q", content.Text)
	}
	if len(content.GroundingChunks) != 1 || content.GroundingChunks[0].URI != "https://example.com" {
		t.Fatalf("grounding = %+v", content.GroundingChunks)
	}
}

func TestDispatchForwardsFinishedOnlyTranscription(t *testing.T) {
	t.Parallel()

	c, err := NewClient("test-key", slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	type event struct {
		text    string
		isFinal bool
	}
	var input, output []event
	c.Subscribe(session.Handlers{
		InputTranscription:  func(text string, isFinal bool) { input = append(input, event{text, isFinal}) },
		OutputTranscription: func(text string, isFinal bool) { output = append(output, event{text, isFinal}) },
	})

	// A trailing transcription event may carry only the finished flag.
	c.dispatch(&genai.LiveServerMessage{ServerContent: &genai.LiveServerContent{
		InputTranscription: &genai.Transcription{Text: "", Finished: true},
	}})
	c.dispatch(&genai.LiveServerMessage{ServerContent: &genai.LiveServerContent{
		OutputTranscription: &genai.Transcription{Text: "closing", Finished: false},
	}})

	if len(input) != 1 || input[0].text != "" || !input[0].isFinal {
		t.Fatalf("input events = %+v, want one finished-only event", input)
	}
	if len(output) != 1 || output[0].text != "closing" || output[0].isFinal {
		t.Fatalf("output events = %+v", output)
	}
}

func TestServerContentEmptyDropped(t *testing.T) {
	t.Parallel()

	if _, ok := serverContent(&genai.LiveServerContent{}); ok {
		t.Fatal("empty content not dropped")
	}
}
