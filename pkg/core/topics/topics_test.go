package topics

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

type stubStore struct {
	topics []Topic
	err    error
}

func (s *stubStore) List(ctx context.Context) ([]Topic, error) {
	return s.topics, s.err
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLoadSelectsFirstTopic(t *testing.T) {
	t.Parallel()

	store := &stubStore{topics: []Topic{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta"},
	}}
	c := NewCatalog(store, discard())
	c.Load(context.Background())

	if got := c.Selected(); got == nil || got.ID != "a" {
		t.Fatalf("first topic not default-selected: %+v", got)
	}
	if len(c.Topics()) != 2 {
		t.Fatalf("want 2 topics, got %d", len(c.Topics()))
	}
}

func TestLoadFallsBackOnStoreError(t *testing.T) {
	t.Parallel()

	c := NewCatalog(&stubStore{err: errors.New("connection refused")}, discard())
	c.Load(context.Background())

	got := c.Topics()
	if len(got) != len(FallbackTopics) {
		t.Fatalf("want fallback list, got %d topics", len(got))
	}
	if got[0].Title != "Eburon Intelligence Overview" {
		t.Fatalf("unexpected first fallback topic %q", got[0].Title)
	}
	if sel := c.Selected(); sel == nil || sel.ID != FallbackTopics[0].ID {
		t.Fatalf("fallback selection: %+v", sel)
	}
}

func TestLoadNilStoreUsesFallback(t *testing.T) {
	t.Parallel()

	c := NewCatalog(nil, discard())
	c.Load(context.Background())
	if len(c.Topics()) != len(FallbackTopics) {
		t.Fatal("nil store should yield the fallback list")
	}
}

func TestLoadKeepsExistingSelection(t *testing.T) {
	t.Parallel()

	store := &stubStore{topics: []Topic{{ID: "a", Title: "Alpha"}, {ID: "b", Title: "Beta"}}}
	c := NewCatalog(store, discard())
	c.Load(context.Background())
	c.Select("b")
	c.Load(context.Background())

	if sel := c.Selected(); sel == nil || sel.ID != "b" {
		t.Fatalf("reload clobbered the selection: %+v", sel)
	}
}

func TestSelectUnknownClears(t *testing.T) {
	t.Parallel()

	c := NewCatalog(&stubStore{topics: []Topic{{ID: "a", Title: "Alpha"}}}, discard())
	c.Load(context.Background())
	c.Select("nope")
	if sel := c.Selected(); sel != nil {
		t.Fatalf("unknown id should clear selection, got %+v", sel)
	}
}

func TestSelectedReturnsCopy(t *testing.T) {
	t.Parallel()

	c := NewCatalog(&stubStore{topics: []Topic{{ID: "a", Title: "Alpha"}}}, discard())
	c.Load(context.Background())

	sel := c.Selected()
	sel.Title = "mutated"
	if again := c.Selected(); again.Title != "Alpha" {
		t.Fatal("Selected exposed internal state")
	}
}
