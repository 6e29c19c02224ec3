package turns

import (
	"testing"

	"github.com/eburon-ai/pitchlive/pkg/core/types"
)

func assertOrderingInvariant(t *testing.T, ledger *Ledger) {
	t.Helper()
	snapshot := ledger.Snapshot()
	for i, turn := range snapshot {
		if !turn.IsFinal && i != len(snapshot)-1 {
			t.Fatalf("turn %d is open but not the tail (len=%d)", i, len(snapshot))
		}
	}
}

func TestAggregator_DeltaStreamScenario(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewLedger())
	agg.HandleTranscription(RoleUser, "he", false)
	agg.HandleTranscription(RoleUser, "llo", true)
	agg.HandleTranscription(RoleAgent, "hi", false)
	agg.HandleTurnComplete()

	got := agg.Ledger().Snapshot()
	if len(got) != 2 {
		t.Fatalf("turns=%d, want 2", len(got))
	}
	if got[0].Role != RoleUser || got[0].Text != "hello" || !got[0].IsFinal {
		t.Fatalf("turn 0 = %+v, want final user %q", got[0], "hello")
	}
	if got[1].Role != RoleAgent || got[1].Text != "hi" || !got[1].IsFinal {
		t.Fatalf("turn 1 = %+v, want final agent %q", got[1], "hi")
	}
}

func TestAggregator_RoleSwitchOpensNewTurn(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewLedger())
	agg.HandleContent(types.ServerContent{Text: "the thesis is"})

	// A user delta arriving while an agent turn is open closes the agent
	// turn without touching its text.
	agg.HandleTranscription(RoleUser, "wait", false)

	got := agg.Ledger().Snapshot()
	if len(got) != 2 {
		t.Fatalf("turns=%d, want 2", len(got))
	}
	if got[0].Role != RoleAgent || got[0].Text != "the thesis is" || !got[0].IsFinal {
		t.Fatalf("turn 0 = %+v, want final agent %q", got[0], "the thesis is")
	}
	if got[1].Role != RoleUser || got[1].Text != "wait" || got[1].IsFinal {
		t.Fatalf("user turn = %+v, want open user %q", got[1], "wait")
	}
	assertOrderingInvariant(t, agg.Ledger())
}

func TestAggregator_InterleavedDeltasKeepAtMostOneOpenTail(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewLedger())
	agg.HandleTranscription(RoleUser, "so ", false)
	agg.HandleContent(types.ServerContent{Text: "well"})
	assertOrderingInvariant(t, agg.Ledger())
	agg.HandleTranscription(RoleUser, "anyway", false)
	assertOrderingInvariant(t, agg.Ledger())
	agg.HandleTurnComplete()
	assertOrderingInvariant(t, agg.Ledger())

	// Each role switch opened a fresh trailing turn.
	if n := agg.Ledger().Len(); n != 3 {
		t.Fatalf("turns=%d, want 3", n)
	}
}

func TestAggregator_FinalFlagOnlyDeltaClosesOpenTurn(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewLedger())
	agg.HandleTranscription(RoleUser, "hello", false)
	agg.HandleTranscription(RoleUser, "", true)

	got := agg.Ledger().Snapshot()
	if len(got) != 1 {
		t.Fatalf("turns=%d, want 1", len(got))
	}
	if got[0].Text != "hello" || !got[0].IsFinal {
		t.Fatalf("turn = %+v, want final %q", got[0], "hello")
	}

	// With no open turn of the role, a flag-only delta leaves the ledger
	// untouched.
	agg.HandleTranscription(RoleAgent, "", true)
	if n := agg.Ledger().Len(); n != 1 {
		t.Fatalf("turns=%d, want 1 after flag-only delta", n)
	}
}

func TestAggregator_TurnCompleteIsIdempotent(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewLedger())
	agg.HandleContent(types.ServerContent{Text: "closing remarks"})
	agg.HandleTurnComplete()
	before := agg.Ledger().Snapshot()

	agg.HandleTurnComplete()
	after := agg.Ledger().Snapshot()

	if len(before) != len(after) {
		t.Fatalf("turn count changed on duplicate complete: %d -> %d", len(before), len(after))
	}
	if !after[len(after)-1].IsFinal {
		t.Fatalf("tail not final after complete")
	}
}

func TestAggregator_TurnCompleteWithEmptyLedgerIsNoOp(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewLedger())
	agg.HandleTurnComplete()
	if n := agg.Ledger().Len(); n != 0 {
		t.Fatalf("turns=%d, want 0", n)
	}
}

func TestAggregator_EmptyContentDeltaIsDropped(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewLedger())
	agg.HandleContent(types.ServerContent{})
	if n := agg.Ledger().Len(); n != 0 {
		t.Fatalf("turns=%d, want 0 after empty content delta", n)
	}
}

func TestAggregator_GroundingChunksAppend(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewLedger())
	agg.HandleContent(types.ServerContent{
		Text:            "per our filings",
		GroundingChunks: []types.GroundingChunk{{URI: "https://example.com/a", Title: "A"}},
	})
	agg.HandleContent(types.ServerContent{
		GroundingChunks: []types.GroundingChunk{{URI: "https://example.com/b", Title: "B"}},
	})

	last, ok := agg.Ledger().Last()
	if !ok {
		t.Fatalf("expected a turn")
	}
	if len(last.GroundingChunks) != 2 {
		t.Fatalf("grounding chunks=%d, want 2", len(last.GroundingChunks))
	}
	if last.GroundingChunks[0].URI != "https://example.com/a" || last.GroundingChunks[1].URI != "https://example.com/b" {
		t.Fatalf("grounding chunk order wrong: %+v", last.GroundingChunks)
	}
}

func TestAggregator_ContentAfterFinalAgentTurnOpensNewTurn(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewLedger())
	agg.HandleContent(types.ServerContent{Text: "part one"})
	agg.HandleTurnComplete()
	agg.HandleContent(types.ServerContent{Text: "part two"})

	got := agg.Ledger().Snapshot()
	if len(got) != 2 {
		t.Fatalf("turns=%d, want 2", len(got))
	}
	if got[1].Text != "part two" || got[1].IsFinal {
		t.Fatalf("turn 1 = %+v, want open agent %q", got[1], "part two")
	}
}

func TestLedger_AppendClosesOpenPredecessor(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Append(Turn{Role: RoleAgent, Text: "the thesis is"})
	ledger.Append(Turn{Role: RoleUser, Text: "wait"})

	got := ledger.Snapshot()
	if len(got) != 2 {
		t.Fatalf("turns=%d, want 2", len(got))
	}
	if !got[0].IsFinal {
		t.Fatalf("turn 0 still open after append: %+v", got[0])
	}
	if got[1].IsFinal {
		t.Fatalf("tail closed prematurely: %+v", got[1])
	}
	assertOrderingInvariant(t, ledger)
}

func TestLedger_UpdateLastPreservesRoleAndTimestamp(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	ledger.Append(Turn{Role: RoleAgent, Text: "a"})
	first, _ := ledger.Last()

	ledger.UpdateLast(func(turn *Turn) {
		turn.Role = RoleUser
		turn.Text += "b"
	})

	last, _ := ledger.Last()
	if last.Role != RoleAgent {
		t.Fatalf("role changed to %q", last.Role)
	}
	if !last.Timestamp.Equal(first.Timestamp) {
		t.Fatalf("timestamp changed on update")
	}
	if last.Text != "ab" {
		t.Fatalf("text=%q, want %q", last.Text, "ab")
	}
}

func TestLedger_SubscribeNotifiesOncePerMutation(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	calls := 0
	unsubscribe := ledger.Subscribe(func() { calls++ })

	ledger.Append(Turn{Role: RoleUser, Text: "x"})
	ledger.UpdateLast(func(turn *Turn) { turn.IsFinal = true })
	if calls != 2 {
		t.Fatalf("calls=%d, want 2", calls)
	}

	unsubscribe()
	ledger.Clear()
	if calls != 2 {
		t.Fatalf("subscriber invoked after unsubscribe (calls=%d)", calls)
	}
}
