package chatstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, err := s.GetProject(ctx, "p1")
	require.ErrorIs(t, err, ErrProjectNotFound)

	s.SeedProject("p1", json.RawMessage(`{"nodes":[{"id":"a"}],"edges":[]}`))
	doc, err := s.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.JSONEq(t, `{"nodes":[{"id":"a"}],"edges":[]}`, string(doc))

	ok, err := s.ProjectExists(ctx, "p1")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.ProjectExists(ctx, "p2")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryHistoryAppendAndTruncate(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	s.SeedProject("p1", nil)

	for i := 0; i < 25; i++ {
		require.NoError(t, s.AppendMessages(ctx, "p1", []Message{
			{Role: "user", Content: fmt.Sprintf("m%d", i)},
		}))
	}
	msgs, err := s.ListRecentMessages(ctx, "p1", HistoryLimit)
	require.NoError(t, err)
	require.Len(t, msgs, HistoryLimit)
	require.Equal(t, "m5", msgs[0].Content)
	require.Equal(t, "m24", msgs[len(msgs)-1].Content)
}

func TestMemoryAppendToUnknownProject(t *testing.T) {
	s := NewMemory()
	err := s.AppendMessages(context.Background(), "nope", []Message{{Role: "user", Content: "x"}})
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestMemoryInjectedFailures(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	s.SeedProject("p1", nil)
	s.ListErr = errors.New("history down")
	_, err := s.ListRecentMessages(ctx, "p1", 20)
	require.Error(t, err)

	s.AppendErr = errors.New("write down")
	err = s.AppendMessages(ctx, "p1", []Message{{Role: "user", Content: "x"}})
	require.Error(t, err)
}

type countingStore struct {
	*Memory
	getCalls  int
	listCalls int
}

func (c *countingStore) GetProject(ctx context.Context, id string) (json.RawMessage, error) {
	c.getCalls++
	return c.Memory.GetProject(ctx, id)
}

func (c *countingStore) ListRecentMessages(ctx context.Context, id string, limit int) ([]Message, error) {
	c.listCalls++
	return c.Memory.ListRecentMessages(ctx, id, limit)
}

func TestCachedDiagramReads(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Memory: NewMemory()}
	inner.SeedProject("p1", json.RawMessage(`{"nodes":[],"edges":[]}`))

	c, err := NewCached(inner)
	require.NoError(t, err)

	_, err = c.GetProject(ctx, "p1")
	require.NoError(t, err)
	_, err = c.GetProject(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 1, inner.getCalls)
}

func TestCachedHistoryInvalidatedOnAppend(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Memory: NewMemory()}
	inner.SeedProject("p1", nil)
	require.NoError(t, inner.AppendMessages(ctx, "p1", []Message{{Role: "user", Content: "hi", CreatedAt: time.Now()}}))

	c, err := NewCached(inner)
	require.NoError(t, err)

	_, err = c.ListRecentMessages(ctx, "p1", 20)
	require.NoError(t, err)
	_, err = c.ListRecentMessages(ctx, "p1", 20)
	require.NoError(t, err)
	require.Equal(t, 1, inner.listCalls)

	require.NoError(t, c.AppendMessages(ctx, "p1", []Message{{Role: "assistant", Content: "yo"}}))
	msgs, err := c.ListRecentMessages(ctx, "p1", 20)
	require.NoError(t, err)
	require.Equal(t, 2, inner.listCalls)
	require.Len(t, msgs, 2)
	require.Equal(t, "yo", msgs[1].Content)
}

func TestCachedErrorsNotCached(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Memory: NewMemory()}
	c, err := NewCached(inner)
	require.NoError(t, err)

	_, err = c.GetProject(ctx, "nope")
	require.ErrorIs(t, err, ErrProjectNotFound)
	_, err = c.GetProject(ctx, "nope")
	require.ErrorIs(t, err, ErrProjectNotFound)
	require.Equal(t, 2, inner.getCalls)
}
