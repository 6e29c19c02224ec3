package session

import (
	"context"

	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

// Handlers is the set of callbacks a subscriber registers against the remote
// session. Nil fields are simply not invoked. Handlers are called in the
// order events arrive from the remote channel, one at a time.
type Handlers struct {
	// InputTranscription delivers a user speech transcript delta.
	InputTranscription func(text string, isFinal bool)

	// OutputTranscription delivers an assistant speech transcript delta.
	OutputTranscription func(text string, isFinal bool)

	// Content delivers assistant text content and grounding citations.
	Content func(content types.ServerContent)

	// TurnComplete signals the assistant finished its current turn.
	TurnComplete func()

	// ToolCall delivers a function invocation request.
	ToolCall func(req types.ToolUseRequest)

	// Closed signals the remote channel terminated. err is nil on a clean
	// local disconnect.
	Closed func(err error)
}

// Facade is the opaque bidirectional channel to the remote streaming
// assistant. Configure is idempotent with last-call-wins semantics and must
// be called before Connect.
type Facade interface {
	Configure(cfg types.SessionConfig)
	Connect(ctx context.Context) error
	Disconnect()
	SendText(ctx context.Context, parts []types.Part) error
	SendRealtimeInput(ctx context.Context, chunks []types.MediaChunk) error
	SendToolResponse(ctx context.Context, resp types.ToolUseResponse) error

	// Subscribe registers handlers and returns an unsubscribe func. Each
	// registered handler is invoked at most once per event.
	Subscribe(h Handlers) (unsubscribe func())
}

// MicGate is the synchronous arm/disarm control over microphone capture.
// Disarm must guarantee no further audio chunk is emitted after it returns.
type MicGate interface {
	Arm() error
	Disarm()
}

// VideoGate receives connection-state changes that gate frame sampling.
type VideoGate interface {
	SetConnected(connected bool)
}
