// Package session implements the continuous session controller: the
// connect/disconnect/mute lifecycle, the kickoff instruction sent shortly
// after the channel opens, and the auto-continue policy that keeps the remote
// assistant narrating without user input.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/eburon-ai/pitchlive/pkg/core/turns"
	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

const (
	// DefaultKickoffDelay lets the channel settle before the kickoff text.
	DefaultKickoffDelay = 500 * time.Millisecond

	kickoffText  = "Please start your presentation."
	continueText = "continue"
)

// SchedulingSource resolves the scheduling hint for a named tool.
type SchedulingSource interface {
	Scheduling(name string) string
}

// ConfigSource produces the current fully derived session configuration.
type ConfigSource func() types.SessionConfig

// Controller owns the session lifecycle state. All mutation goes through its
// methods; timer and facade callbacks re-check state under the lock before
// acting, so a callback that was already queued when the state changed is a
// no-op.
type Controller struct {
	facade     Facade
	aggregator *turns.Aggregator
	compose    ConfigSource
	logger     *slog.Logger

	mic        MicGate
	video      VideoGate
	scheduling SchedulingSource

	kickoffDelay time.Duration

	mu           sync.Mutex
	state        SessionState
	continuous   bool
	epoch        int
	kickoffTimer *time.Timer
	unsubscribe  func()

	events chan Event
}

// Option configures a Controller.
type Option func(*Controller)

// WithMicGate attaches the microphone gate.
func WithMicGate(mic MicGate) Option {
	return func(c *Controller) { c.mic = mic }
}

// WithVideoGate attaches the frame sampler gate.
func WithVideoGate(video VideoGate) Option {
	return func(c *Controller) { c.video = video }
}

// WithScheduling attaches the tool scheduling source.
func WithScheduling(s SchedulingSource) Option {
	return func(c *Controller) { c.scheduling = s }
}

// WithKickoffDelay overrides the kickoff debounce delay.
func WithKickoffDelay(d time.Duration) Option {
	return func(c *Controller) { c.kickoffDelay = d }
}

// NewController creates a disconnected controller. compose is invoked at
// connect time to push the latest configuration to the facade.
func NewController(facade Facade, aggregator *turns.Aggregator, compose ConfigSource, logger *slog.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		facade:       facade,
		aggregator:   aggregator,
		compose:      compose,
		logger:       logger,
		kickoffDelay: DefaultKickoffDelay,
		state:        StateDisconnected,
		continuous:   true,
		events:       make(chan Event, 100),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ContinuousMode reports whether auto-continue is enabled.
func (c *Controller) ContinuousMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.continuous
}

// Events returns the channel for receiving controller events.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// Connect pushes the current configuration to the facade, opens the remote
// session, arms capture, and schedules the kickoff instruction.
func (c *Controller) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateDisconnected {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("connect while %s", state)
	}
	c.setStateLocked(StateConnecting)
	c.mu.Unlock()

	// Subscribed before the dial: the facade starts dispatching as soon as
	// the channel opens, and an instant remote close must reach teardown.
	unsubscribe := c.facade.Subscribe(Handlers{
		InputTranscription:  c.handleInputTranscription,
		OutputTranscription: c.handleOutputTranscription,
		Content:             c.handleContent,
		TurnComplete:        c.handleTurnComplete,
		ToolCall:            c.handleToolCall,
		Closed:              c.handleClosed,
	})
	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()

	c.facade.Configure(c.compose())
	if err := c.facade.Connect(ctx); err != nil {
		c.mu.Lock()
		c.unsubscribe = nil
		c.setStateLocked(StateDisconnected)
		c.mu.Unlock()
		unsubscribe()
		return fmt.Errorf("connect: %w", err)
	}

	c.mu.Lock()
	if c.state != StateConnecting {
		// The remote channel died before the dial returned; teardown has
		// already run off the Closed handler.
		c.mu.Unlock()
		return fmt.Errorf("connect: session closed during handshake")
	}
	c.continuous = true
	c.epoch++
	epoch := c.epoch
	c.kickoffTimer = time.AfterFunc(c.kickoffDelay, func() { c.kickoff(epoch) })
	if c.mic != nil {
		if err := c.mic.Arm(); err != nil {
			c.logger.Warn("mic capture unavailable", "error", err)
		}
	}
	c.setStateLocked(StateListening)
	c.mu.Unlock()

	if c.video != nil {
		c.video.SetConnected(true)
	}
	return nil
}

// Disconnect tears the session down. Safe to call when already disconnected.
func (c *Controller) Disconnect() {
	c.teardown(nil, true)
}

// SetMuted toggles the mute state. Mute disarms the microphone in the same
// reaction; no-op unless connected.
func (c *Controller) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case muted && c.state == StateListening:
		if c.mic != nil {
			c.mic.Disarm()
		}
		c.setStateLocked(StateMuted)
	case !muted && c.state == StateMuted:
		if c.mic != nil {
			if err := c.mic.Arm(); err != nil {
				c.logger.Warn("mic capture unavailable", "error", err)
			}
		}
		c.setStateLocked(StateListening)
	}
}

// SetContinuousMode enables or disables auto-continue for the rest of the
// session.
func (c *Controller) SetContinuousMode(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.continuous = on
}

// SendMessage sends a user chat message over the channel. The text comes
// back as an input transcription, so no local turn is appended here.
func (c *Controller) SendMessage(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	c.mu.Lock()
	connected := c.state.Connected()
	c.mu.Unlock()
	if !connected {
		return fmt.Errorf("not connected")
	}
	return c.facade.SendText(ctx, []types.Part{{Text: text}})
}

// kickoff fires after the debounce delay. The epoch check makes a timer that
// outlived its session a no-op.
func (c *Controller) kickoff(epoch int) {
	c.mu.Lock()
	if epoch != c.epoch || !c.state.Connected() {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	if err := c.facade.SendText(context.Background(), []types.Part{{Text: kickoffText}}); err != nil {
		c.logger.Warn("kickoff send failed", "error", err)
		c.emit(&ErrorEvent{Message: "kickoff send failed: " + err.Error()})
		return
	}
	c.emit(&KickoffSentEvent{})
}

func (c *Controller) handleInputTranscription(text string, isFinal bool) {
	c.aggregator.HandleTranscription(turns.RoleUser, text, isFinal)
}

func (c *Controller) handleOutputTranscription(text string, isFinal bool) {
	c.aggregator.HandleTranscription(turns.RoleAgent, text, isFinal)
}

func (c *Controller) handleContent(content types.ServerContent) {
	c.aggregator.HandleContent(content)
}

// handleTurnComplete finalizes the tail turn and, in continuous mode, prompts
// the assistant to keep narrating. At most one continuation is sent per
// completion event.
func (c *Controller) handleTurnComplete() {
	c.aggregator.HandleTurnComplete()

	c.mu.Lock()
	ok := c.state.Connected() && c.continuous
	c.mu.Unlock()
	if !ok {
		return
	}

	if err := c.facade.SendText(context.Background(), []types.Part{{Text: continueText}}); err != nil {
		c.logger.Warn("continuation send failed", "error", err)
		c.emit(&ErrorEvent{Message: "continuation send failed: " + err.Error()})
		return
	}
	c.emit(&ContinuationSentEvent{})
}

// handleToolCall acknowledges every requested function call and records the
// exchange in the ledger.
func (c *Controller) handleToolCall(req types.ToolUseRequest) {
	resp := types.ToolUseResponse{}
	for _, call := range req.FunctionCalls {
		resp.FunctionResponses = append(resp.FunctionResponses, types.FunctionResponse{
			ID:         call.ID,
			Name:       call.Name,
			Response:   map[string]any{"result": "ok"},
			Scheduling: c.schedulingFor(call.Name),
		})
	}
	c.aggregator.HandleToolCall(req, &resp)

	if err := c.facade.SendToolResponse(context.Background(), resp); err != nil {
		c.logger.Warn("tool response send failed", "error", err)
		c.emit(&ErrorEvent{Message: "tool response send failed: " + err.Error()})
	}
}

func (c *Controller) handleClosed(err error) {
	c.teardown(err, false)
}

func (c *Controller) schedulingFor(name string) string {
	if c.scheduling != nil {
		return c.scheduling.Scheduling(name)
	}
	return "INTERRUPT"
}

// teardown is the single path back to disconnected. It cancels the kickoff
// timer, bumps the epoch so any already-fired callback is discarded, disarms
// the microphone in the same reaction, and resets mute and continuous mode to
// their defaults.
func (c *Controller) teardown(cause error, local bool) {
	c.mu.Lock()
	if c.state == StateDisconnected {
		c.mu.Unlock()
		return
	}
	c.epoch++
	if c.kickoffTimer != nil {
		c.kickoffTimer.Stop()
		c.kickoffTimer = nil
	}
	if c.mic != nil {
		c.mic.Disarm()
	}
	c.continuous = true
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.setStateLocked(StateDisconnected)
	c.mu.Unlock()

	if c.video != nil {
		c.video.SetConnected(false)
	}
	if local {
		c.facade.Disconnect()
	}
	if unsubscribe != nil {
		// Runs outside the lock: the facade may be mid-dispatch on its own
		// goroutine when a remote close lands here.
		go unsubscribe()
	}

	reason := ""
	if cause != nil {
		reason = cause.Error()
		c.logger.Warn("session closed", "error", cause)
	}
	c.emit(&SessionClosedEvent{Reason: reason})
}

func (c *Controller) setStateLocked(newState SessionState) {
	oldState := c.state
	c.state = newState
	if oldState != newState {
		c.emit(&StateChangedEvent{From: oldState, To: newState})
	}
}

// emit sends an event to the events channel, dropping it when full.
func (c *Controller) emit(event Event) {
	select {
	case c.events <- event:
	default:
	}
}
