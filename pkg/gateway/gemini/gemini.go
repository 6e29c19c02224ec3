// Package gemini adapts the Gemini Live API to the session facade contract.
// It owns the remote channel lifecycle and a single receive loop that
// dispatches inbound events to subscribers in arrival order.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/eburon-ai/pitchlive/pkg/core/session"
	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

// DefaultConnectTimeout bounds the Live API handshake.
const DefaultConnectTimeout = 30 * time.Second

// Client is a session.Facade backed by the Gemini Live API.
type Client struct {
	apiKey         string
	logger         *slog.Logger
	connectTimeout time.Duration

	mu       sync.Mutex
	cfg      types.SessionConfig
	live     *genai.Session
	closing  bool
	handlers map[int]session.Handlers
	nextID   int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithConnectTimeout overrides the handshake timeout.
func WithConnectTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.connectTimeout = d }
}

// NewClient creates a disconnected client.
func NewClient(apiKey string, logger *slog.Logger, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		apiKey:         apiKey,
		logger:         logger,
		connectTimeout: DefaultConnectTimeout,
		handlers:       map[int]session.Handlers{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Configure stores the session configuration. Last call wins; it is applied
// at the next Connect.
func (c *Client) Configure(cfg types.SessionConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
}

// Connect opens the Live API session with the stored configuration and
// starts the receive loop.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.live != nil {
		c.mu.Unlock()
		return errors.New("already connected")
	}
	cfg := c.cfg
	c.mu.Unlock()

	if cfg.Model == "" {
		return errors.New("no model configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("create genai client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()

	live, err := client.Live.Connect(connectCtx, cfg.Model, liveConfig(cfg))
	if err != nil {
		return fmt.Errorf("connect live session: %w", err)
	}

	c.mu.Lock()
	c.live = live
	c.closing = false
	c.mu.Unlock()

	go c.receiveLoop(live)
	return nil
}

// Disconnect closes the remote channel. The receive loop dispatches the
// Closed event as it winds down.
func (c *Client) Disconnect() {
	c.mu.Lock()
	live := c.live
	c.closing = true
	c.mu.Unlock()

	if live != nil {
		if err := live.Close(); err != nil {
			c.logger.Warn("live session close failed", "error", err)
		}
	}
}

// SendText sends a client turn with the given parts, marking the turn
// complete so the model responds immediately.
func (c *Client) SendText(ctx context.Context, parts []types.Part) error {
	live, err := c.current()
	if err != nil {
		return err
	}
	turn := &genai.Content{Role: "user"}
	for _, p := range parts {
		turn.Parts = append(turn.Parts, &genai.Part{Text: p.Text})
	}
	return live.SendClientContent(genai.LiveClientContentInput{
		Turns:        []*genai.Content{turn},
		TurnComplete: genai.Ptr(true),
	})
}

// SendRealtimeInput streams media chunks into the session.
func (c *Client) SendRealtimeInput(ctx context.Context, chunks []types.MediaChunk) error {
	live, err := c.current()
	if err != nil {
		return err
	}
	for _, chunk := range chunks {
		input := genai.LiveRealtimeInput{
			Media: &genai.Blob{MIMEType: chunk.MIMEType, Data: chunk.Data},
		}
		if err := live.SendRealtimeInput(input); err != nil {
			return err
		}
	}
	return nil
}

// SendToolResponse answers a tool call.
func (c *Client) SendToolResponse(ctx context.Context, resp types.ToolUseResponse) error {
	live, err := c.current()
	if err != nil {
		return err
	}
	input := genai.LiveToolResponseInput{}
	for _, fr := range resp.FunctionResponses {
		input.FunctionResponses = append(input.FunctionResponses, &genai.FunctionResponse{
			ID:         fr.ID,
			Name:       fr.Name,
			Response:   fr.Response,
			Scheduling: genai.FunctionResponseScheduling(fr.Scheduling),
		})
	}
	return live.SendToolResponse(input)
}

// Subscribe registers handlers for inbound events.
func (c *Client) Subscribe(h session.Handlers) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.handlers[id] = h
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers, id)
	}
}

func (c *Client) current() (*genai.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live == nil {
		return nil, errors.New("not connected")
	}
	return c.live, nil
}

// receiveLoop reads until the channel terminates, dispatching each message's
// events in order.
func (c *Client) receiveLoop(live *genai.Session) {
	for {
		msg, err := live.Receive()
		if err != nil {
			c.finish(live, err)
			return
		}
		c.dispatch(msg)
	}
}

func (c *Client) finish(live *genai.Session, cause error) {
	c.mu.Lock()
	if c.live != live {
		c.mu.Unlock()
		return
	}
	c.live = nil
	local := c.closing
	c.closing = false
	c.mu.Unlock()

	if local || errors.Is(cause, io.EOF) {
		cause = nil
	}
	for _, h := range c.snapshotHandlers() {
		if h.Closed != nil {
			h.Closed(cause)
		}
	}
}

func (c *Client) dispatch(msg *genai.LiveServerMessage) {
	if msg == nil {
		return
	}
	handlers := c.snapshotHandlers()

	if sc := msg.ServerContent; sc != nil {
		// Forwarded even with empty text: a trailing event may carry only
		// the Finished flag.
		if t := sc.InputTranscription; t != nil {
			for _, h := range handlers {
				if h.InputTranscription != nil {
					h.InputTranscription(t.Text, t.Finished)
				}
			}
		}
		if t := sc.OutputTranscription; t != nil {
			for _, h := range handlers {
				if h.OutputTranscription != nil {
					h.OutputTranscription(t.Text, t.Finished)
				}
			}
		}
		if content, ok := serverContent(sc); ok {
			for _, h := range handlers {
				if h.Content != nil {
					h.Content(content)
				}
			}
		}
		if sc.TurnComplete {
			for _, h := range handlers {
				if h.TurnComplete != nil {
					h.TurnComplete()
				}
			}
		}
	}

	if tc := msg.ToolCall; tc != nil && len(tc.FunctionCalls) > 0 {
		req := types.ToolUseRequest{}
		for _, fc := range tc.FunctionCalls {
			req.FunctionCalls = append(req.FunctionCalls, types.FunctionCall{
				ID:   fc.ID,
				Name: fc.Name,
				Args: fc.Args,
			})
		}
		for _, h := range handlers {
			if h.ToolCall != nil {
				h.ToolCall(req)
			}
		}
	}
}

// serverContent joins the model turn's text parts and collects grounding
// citations. ok is false when the message carries neither.
func serverContent(sc *genai.LiveServerContent) (types.ServerContent, bool) {
	var content types.ServerContent

	if sc.ModelTurn != nil {
		text := ""
		for _, part := range sc.ModelTurn.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			if text != "" {
				text += " "
			}
			text += part.Text
		}
		content.Text = text
	}
	if gm := sc.GroundingMetadata; gm != nil {
		for _, gc := range gm.GroundingChunks {
			if gc == nil || gc.Web == nil {
				continue
			}
			content.GroundingChunks = append(content.GroundingChunks, types.GroundingChunk{
				URI:   gc.Web.URI,
				Title: gc.Web.Title,
			})
		}
	}
	return content, content.Text != "" || len(content.GroundingChunks) > 0
}

func (c *Client) snapshotHandlers() []session.Handlers {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]session.Handlers, 0, len(c.handlers))
	for _, h := range c.handlers {
		out = append(out, h)
	}
	return out
}

// liveConfig maps the derived session configuration onto the Live API
// connect config: audio responses, the configured prebuilt voice and
// language, transcription both ways, and the enabled tool declarations.
func liveConfig(cfg types.SessionConfig) *genai.LiveConnectConfig {
	out := &genai.LiveConnectConfig{
		ResponseModalities:       []genai.Modality{genai.ModalityAudio},
		InputAudioTranscription:  &genai.AudioTranscriptionConfig{},
		OutputAudioTranscription: &genai.AudioTranscriptionConfig{},
	}
	if cfg.SystemPrompt != "" {
		out.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: cfg.SystemPrompt}},
		}
	}
	if cfg.Voice != "" || cfg.Language != "" {
		speech := &genai.SpeechConfig{}
		if cfg.Voice != "" {
			speech.VoiceConfig = &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: cfg.Voice},
			}
		}
		speech.LanguageCode = cfg.Language
		out.SpeechConfig = speech
	}
	if len(cfg.Tools) > 0 {
		tool := &genai.Tool{}
		for _, decl := range cfg.Tools {
			fd := &genai.FunctionDeclaration{
				Name:        decl.Name,
				Description: decl.Description,
			}
			if schema, err := schemaFromMap(decl.Parameters); err == nil {
				fd.Parameters = schema
			}
			tool.FunctionDeclarations = append(tool.FunctionDeclarations, fd)
		}
		out.Tools = []*genai.Tool{tool}
	}
	return out
}

// schemaFromMap converts a JSON-schema-shaped map into the SDK schema type
// via a JSON round trip; the map already uses the wire format's uppercase
// type names.
func schemaFromMap(params map[string]any) (*genai.Schema, error) {
	if len(params) == 0 {
		return nil, errors.New("empty schema")
	}
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var schema genai.Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}
