package session

// Event is the interface for all controller events.
type Event interface {
	// EventType returns the event type string for serialization.
	EventType() string
}

// StateChangedEvent is emitted when the controller state changes.
type StateChangedEvent struct {
	From SessionState `json:"from"`
	To   SessionState `json:"to"`
}

func (e *StateChangedEvent) EventType() string { return "state.changed" }

// KickoffSentEvent is emitted after the initial kickoff instruction is sent.
type KickoffSentEvent struct{}

func (e *KickoffSentEvent) EventType() string { return "kickoff.sent" }

// ContinuationSentEvent is emitted after an auto-continue instruction is sent.
type ContinuationSentEvent struct{}

func (e *ContinuationSentEvent) EventType() string { return "continuation.sent" }

// SessionClosedEvent is emitted when the session ends, locally or remotely.
type SessionClosedEvent struct {
	Reason string `json:"reason,omitempty"`
}

func (e *SessionClosedEvent) EventType() string { return "session.closed" }

// ErrorEvent is emitted for non-fatal send failures.
type ErrorEvent struct {
	Message string `json:"message"`
}

func (e *ErrorEvent) EventType() string { return "error" }
