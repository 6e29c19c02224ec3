package session

// SessionState represents the connection lifecycle state of the controller.
type SessionState int

const (
	// StateDisconnected is the initial state and the state after any teardown.
	StateDisconnected SessionState = iota

	// StateConnecting means a connect request is in flight.
	StateConnecting

	// StateListening means connected with the microphone armed.
	StateListening

	// StateMuted means connected with the microphone disarmed by the user.
	StateMuted
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateListening:
		return "connected-listening"
	case StateMuted:
		return "connected-muted"
	default:
		return "unknown"
	}
}

// Connected reports whether the state is one of the connected states.
func (s SessionState) Connected() bool {
	return s == StateListening || s == StateMuted
}
