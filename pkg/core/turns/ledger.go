// Package turns maintains the append-only conversation record of a live
// session and reconciles the remote event stream into discrete turns.
//
// The ledger holds an ordered sequence of turns in which at most the final
// element is still open (IsFinal == false). Every earlier turn is immutable.
// The aggregator is the only writer during a session; observers read
// snapshots or subscribe for change notifications.
package turns

import (
	"sync"
	"time"

	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

// Role identifies the speaker a turn is attributed to.
type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
	RoleSystem Role = "system"
)

// Turn is one contiguous block of speech or text attributed to a single
// speaker. Text only grows while the turn is open; Role never changes.
type Turn struct {
	Timestamp       time.Time              `json:"timestamp"`
	Role            Role                   `json:"role"`
	Text            string                 `json:"text"`
	IsFinal         bool                   `json:"is_final"`
	ToolUseRequest  *types.ToolUseRequest  `json:"tool_use_request,omitempty"`
	ToolUseResponse *types.ToolUseResponse `json:"tool_use_response,omitempty"`
	GroundingChunks []types.GroundingChunk `json:"grounding_chunks,omitempty"`
}

// Ledger is the owned store for the conversation turn sequence.
type Ledger struct {
	mu    sync.Mutex
	turns []Turn

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewLedger creates an empty conversation ledger.
func NewLedger() *Ledger {
	return &Ledger{subs: make(map[int]func())}
}

// Append adds a new turn at the tail, closing a still-open predecessor so at
// most the new tail is non-final. The timestamp is assigned here, once, at
// first observation of the turn.
func (l *Ledger) Append(turn Turn) {
	l.mu.Lock()
	if n := len(l.turns); n > 0 {
		l.turns[n-1].IsFinal = true
	}
	turn.Timestamp = time.Now()
	l.turns = append(l.turns, turn)
	l.mu.Unlock()
	l.notify()
}

// UpdateLast applies fn to the tail turn, if any. The role and timestamp of
// the tail are preserved regardless of what fn does.
func (l *Ledger) UpdateLast(fn func(*Turn)) {
	l.mu.Lock()
	if len(l.turns) == 0 {
		l.mu.Unlock()
		return
	}
	last := &l.turns[len(l.turns)-1]
	role, ts := last.Role, last.Timestamp
	fn(last)
	last.Role, last.Timestamp = role, ts
	l.mu.Unlock()
	l.notify()
}

// Last returns a copy of the tail turn and whether one exists.
func (l *Ledger) Last() (Turn, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.turns) == 0 {
		return Turn{}, false
	}
	return l.turns[len(l.turns)-1], true
}

// Len returns the number of stored turns.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.turns)
}

// Snapshot returns a copy of the full turn sequence.
func (l *Ledger) Snapshot() []Turn {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Clear removes all turns.
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.turns = nil
	l.mu.Unlock()
	l.notify()
}

// Subscribe registers fn to run after every ledger mutation and returns the
// matching unsubscribe function. Each subscriber is invoked at most once per
// mutation; callers pair every Subscribe with its unsubscribe.
func (l *Ledger) Subscribe(fn func()) (unsubscribe func()) {
	l.subMu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.subMu.Unlock()
	return func() {
		l.subMu.Lock()
		delete(l.subs, id)
		l.subMu.Unlock()
	}
}

func (l *Ledger) notify() {
	l.subMu.Lock()
	fns := make([]func(), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
