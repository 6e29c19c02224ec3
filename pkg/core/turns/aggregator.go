package turns

import (
	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

// Aggregator folds the remote event stream (transcription deltas, content
// deltas, turn completions) into the ledger's turn sequence.
//
// Each delta only ever mutates the tail turn when the tail belongs to the
// same role and is still open; otherwise it opens a new trailing turn. This
// keeps interleaved user and agent deltas from corrupting each other.
type Aggregator struct {
	ledger *Ledger
}

// NewAggregator creates an aggregator writing into ledger.
func NewAggregator(ledger *Ledger) *Aggregator {
	return &Aggregator{ledger: ledger}
}

// Ledger returns the ledger this aggregator writes into.
func (a *Aggregator) Ledger() *Ledger {
	return a.ledger
}

// HandleTranscription applies one input/output transcription delta for role.
// A delta may carry only the final flag; with no open turn of the same role
// to close, such a delta is dropped rather than recorded as an empty turn.
func (a *Aggregator) HandleTranscription(role Role, text string, isFinal bool) {
	last, ok := a.ledger.Last()
	if ok && last.Role == role && !last.IsFinal {
		a.ledger.UpdateLast(func(t *Turn) {
			t.Text += text
			t.IsFinal = isFinal
		})
		return
	}
	if text == "" {
		return
	}
	a.ledger.Append(Turn{Role: role, Text: text, IsFinal: isFinal})
}

// HandleContent applies one content delta from the remote assistant. Content
// is always attributed to the agent and never carries a final flag of its
// own; content-originated turns are closed by HandleTurnComplete. Deltas with
// neither text nor grounding chunks carry no information and are dropped.
func (a *Aggregator) HandleContent(content types.ServerContent) {
	if content.Text == "" && len(content.GroundingChunks) == 0 {
		return
	}
	last, ok := a.ledger.Last()
	if ok && last.Role == RoleAgent && !last.IsFinal {
		a.ledger.UpdateLast(func(t *Turn) {
			t.Text += content.Text
			t.GroundingChunks = append(t.GroundingChunks, content.GroundingChunks...)
		})
		return
	}
	a.ledger.Append(Turn{
		Role:            RoleAgent,
		Text:            content.Text,
		IsFinal:         false,
		GroundingChunks: append([]types.GroundingChunk(nil), content.GroundingChunks...),
	})
}

// HandleToolCall records a tool invocation as a finalized system turn.
func (a *Aggregator) HandleToolCall(req types.ToolUseRequest, resp *types.ToolUseResponse) {
	name := ""
	if len(req.FunctionCalls) > 0 {
		name = req.FunctionCalls[0].Name
	}
	a.ledger.Append(Turn{
		Role:            RoleSystem,
		Text:            "Tool call: " + name,
		IsFinal:         true,
		ToolUseRequest:  &req,
		ToolUseResponse: resp,
	})
}

// HandleTurnComplete finalizes an open tail turn. Duplicate completions with
// no intervening delta are no-ops.
func (a *Aggregator) HandleTurnComplete() {
	last, ok := a.ledger.Last()
	if !ok || last.IsFinal {
		return
	}
	a.ledger.UpdateLast(func(t *Turn) {
		t.IsFinal = true
	})
}
