// Package types holds the shared data model exchanged between the session
// controller, the turn ledger, and the remote session facade.
package types

// Part is one text fragment of an outbound client message.
type Part struct {
	Text string `json:"text"`
}

// MediaChunk is one outbound realtime media payload. Data is raw bytes; the
// facade is responsible for any transport encoding (base64 etc).
type MediaChunk struct {
	MIMEType string `json:"mime_type"`
	Data     []byte `json:"data"`
}

// Realtime media mime types used by the capture pipeline.
const (
	MimePCM16k = "audio/pcm;rate=16000"
	MimeJPEG   = "image/jpeg"
)

// GroundingChunk is one citation record attached to an agent turn.
type GroundingChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// ServerContent is the decoded payload of a content event from the remote
// assistant: joined model-turn text plus any grounding citations.
type ServerContent struct {
	Text            string
	GroundingChunks []GroundingChunk
}

// FunctionCall is one function invocation requested by the remote assistant.
type FunctionCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolUseRequest carries the function calls of one tool_use message.
type ToolUseRequest struct {
	FunctionCalls []FunctionCall `json:"function_calls"`
}

// FunctionResponse is the client-side resolution of one function call.
type FunctionResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Response   map[string]any `json:"response,omitempty"`
	Scheduling string         `json:"scheduling,omitempty"`
}

// ToolUseResponse carries the function responses answering a ToolUseRequest.
type ToolUseResponse struct {
	FunctionResponses []FunctionResponse `json:"function_responses"`
}

// ToolDeclaration is one function declaration pushed to the remote session.
// Parameters is a JSON-schema-shaped object using the Live API's uppercase
// type names (for example {"type": "OBJECT", "properties": {}}).
type ToolDeclaration struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// SessionConfig is the fully derived remote session configuration. It is
// recomputed from scratch whenever any composer input changes, never patched.
type SessionConfig struct {
	Model        string
	SystemPrompt string
	Voice        string
	Language     string
	Tools        []ToolDeclaration
}
