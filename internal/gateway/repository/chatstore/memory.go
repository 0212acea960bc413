package chatstore

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Memory is an in-process Store for tests and single-node development runs.
type Memory struct {
	mu       sync.Mutex
	diagrams map[string]json.RawMessage
	history  map[string][]Message

	// ListErr, when set, fails every history read. Tests use it to verify
	// that a broken history path does not break the turn.
	ListErr error
	// AppendErr, when set, fails every history write.
	AppendErr error
}

func NewMemory() *Memory {
	return &Memory{
		diagrams: make(map[string]json.RawMessage),
		history:  make(map[string][]Message),
	}
}

// SeedProject registers a project with the given diagram document. A nil
// document seeds the empty diagram.
func (s *Memory) SeedProject(projectID string, diagram json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if diagram == nil {
		diagram = json.RawMessage(`{"nodes":[],"edges":[]}`)
	}
	s.diagrams[projectID] = diagram
}

func (s *Memory) GetProject(ctx context.Context, projectID string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.diagrams[projectID]
	if !ok {
		return nil, ErrProjectNotFound
	}
	return doc, nil
}

func (s *Memory) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.diagrams[projectID]
	return ok, nil
}

func (s *Memory) ListRecentMessages(ctx context.Context, projectID string, limit int) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	if limit <= 0 {
		limit = HistoryLimit
	}
	all := s.history[projectID]
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	out := make([]Message, len(all))
	copy(out, all)
	return out, nil
}

func (s *Memory) AppendMessages(ctx context.Context, projectID string, msgs []Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.AppendErr != nil {
		return s.AppendErr
	}
	if _, ok := s.diagrams[projectID]; !ok {
		return ErrProjectNotFound
	}
	now := time.Now()
	for i, m := range msgs {
		if m.CreatedAt.IsZero() {
			m.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
		}
		s.history[projectID] = append(s.history[projectID], m)
	}
	return nil
}

// History returns a copy of the full stored history, for assertions.
func (s *Memory) History(projectID string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.history[projectID]
	out := make([]Message, len(all))
	copy(out, all)
	return out
}
