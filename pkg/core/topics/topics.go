// Package topics provides the pitch topic catalog consumed by the session
// configuration composer. Topics normally come from the backing store; any
// store failure is recovered locally with a fixed fallback list so a session
// can always be configured.
package topics

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Topic is one pitchable subject.
type Topic struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url,omitempty"`
}

// Store lists topics ordered by title.
type Store interface {
	List(ctx context.Context) ([]Topic, error)
}

// FallbackTopics is used whenever the store call fails, so the caller is never
// left topic-less.
var FallbackTopics = []Topic{
	{
		ID:          "fallback-1",
		Title:       "Eburon Intelligence Overview",
		Description: "Introduction to the Eburon multi-modal intelligence system.",
	},
	{
		ID:          "fallback-2",
		Title:       "Global Infrastructure Pitch",
		Description: "Investment thesis for decentralized prefab operational hubs.",
	},
	{
		ID:          "fallback-3",
		Title:       "Humanoid Robotics Scale",
		Description: "Scaling from 10 pilot units to 50,000 joint-venture robots.",
	},
}

// Catalog owns the loaded topic list and the current selection.
type Catalog struct {
	store  Store
	logger *slog.Logger

	mu       sync.Mutex
	topics   []Topic
	selected *Topic
}

// NewCatalog creates a catalog backed by store. A nil store always yields the
// fallback list.
func NewCatalog(store Store, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{store: store, logger: logger}
}

// Load fetches the topic list, substituting the fallback list on any store
// error. The first topic becomes selected when nothing is selected yet.
// Load never returns an error: topic fetch failure is not a blocking fault.
func (c *Catalog) Load(ctx context.Context) {
	list, err := c.list(ctx)
	if err != nil {
		c.logger.Warn("topic fetch failed, using fallback list", "error", err)
		list = append([]Topic(nil), FallbackTopics...)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.topics = list
	if c.selected == nil && len(list) > 0 {
		first := list[0]
		c.selected = &first
	}
}

func (c *Catalog) list(ctx context.Context) ([]Topic, error) {
	if c.store == nil {
		return nil, errors.New("no topic store configured")
	}
	return c.store.List(ctx)
}

// Topics returns a copy of the loaded topic list.
func (c *Catalog) Topics() []Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Topic, len(c.topics))
	copy(out, c.topics)
	return out
}

// Select sets the current topic by id. An unknown id clears the selection.
func (c *Catalog) Select(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.topics {
		if t.ID == id {
			topic := t
			c.selected = &topic
			return
		}
	}
	c.selected = nil
}

// Selected returns the current topic, or nil when none is selected.
func (c *Catalog) Selected() *Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	topic := *c.selected
	return &topic
}
