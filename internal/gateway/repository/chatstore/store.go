// Package chatstore persists diagram-chat projects: the diagram document
// itself and the append-only conversation history.
package chatstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// ErrProjectNotFound is returned when no project exists for the given id.
var ErrProjectNotFound = errors.New("project not found")

// HistoryLimit is the number of most-recent turns fed back into a prompt.
const HistoryLimit = 20

// Message is one stored conversation turn.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store is the persistence boundary for one diagram-chat deployment.
// Implementations must be safe for concurrent use.
type Store interface {
	// GetProject returns the project's diagram document.
	GetProject(ctx context.Context, projectID string) (json.RawMessage, error)
	// ProjectExists reports whether the project row is present.
	ProjectExists(ctx context.Context, projectID string) (bool, error)
	// ListRecentMessages returns up to limit most-recent turns, oldest first.
	ListRecentMessages(ctx context.Context, projectID string, limit int) ([]Message, error)
	// AppendMessages appends the given turns in order as one write.
	AppendMessages(ctx context.Context, projectID string, msgs []Message) error
}
