package chatstore

import (
	"context"
	"encoding/json"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"archie/internal/cache/memory"
)

// diagramTTL is short on purpose: the diagram is mutated by an external
// applier this process never sees, so staleness must stay within one
// conversational beat.
const diagramTTL = 2 * time.Second

// Cached wraps a Store with a short-TTL diagram cache and an LRU history
// cache invalidated on append. Existence checks are never cached; they
// guard the history write.
type cachedHistory struct {
	limit int
	msgs  []Message
}

type Cached struct {
	inner    Store
	diagrams *memory.LRUTTL[string, json.RawMessage]
	messages *lru.Cache[string, cachedHistory]
}

func NewCached(inner Store) (*Cached, error) {
	msgs, err := lru.New[string, cachedHistory](256)
	if err != nil {
		return nil, err
	}
	return &Cached{
		inner:    inner,
		diagrams: memory.NewLRUTTL[string, json.RawMessage](256, diagramTTL),
		messages: msgs,
	}, nil
}

func (c *Cached) GetProject(ctx context.Context, projectID string) (json.RawMessage, error) {
	if doc, ok := c.diagrams.Get(projectID); ok {
		return doc, nil
	}
	doc, err := c.inner.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	c.diagrams.Set(projectID, doc)
	return doc, nil
}

func (c *Cached) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	return c.inner.ProjectExists(ctx, projectID)
}

func (c *Cached) ListRecentMessages(ctx context.Context, projectID string, limit int) ([]Message, error) {
	if ent, ok := c.messages.Get(projectID); ok && ent.limit >= limit {
		msgs := ent.msgs
		if len(msgs) > limit {
			msgs = msgs[len(msgs)-limit:]
		}
		return msgs, nil
	}
	msgs, err := c.inner.ListRecentMessages(ctx, projectID, limit)
	if err != nil {
		return nil, err
	}
	c.messages.Add(projectID, cachedHistory{limit: limit, msgs: msgs})
	return msgs, nil
}

func (c *Cached) AppendMessages(ctx context.Context, projectID string, msgs []Message) error {
	if err := c.inner.AppendMessages(ctx, projectID, msgs); err != nil {
		return err
	}
	c.messages.Remove(projectID)
	return nil
}
