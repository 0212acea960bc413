package chatstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Postgres stores projects and chat history in PostgreSQL. The schema is
// created lazily on first use so a fresh database works without a
// migration step.
type Postgres struct {
	db *sql.DB

	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgres(databaseURL string) (*Postgres, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (s *Postgres) Close() error { return s.db.Close() }

func (s *Postgres) ensureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS projects (
  id UUID PRIMARY KEY,
  diagram_json JSONB NOT NULL DEFAULT '{"nodes":[],"edges":[]}'::jsonb,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS chat_messages (
  id SERIAL PRIMARY KEY,
  project_id UUID NOT NULL REFERENCES projects (id) ON DELETE CASCADE,
  role TEXT NOT NULL,
  content TEXT NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_project_id ON chat_messages (project_id, created_at);
`)
	})
	return s.schemaErr
}

func (s *Postgres) GetProject(ctx context.Context, projectID string) (json.RawMessage, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	var doc []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT diagram_json FROM projects WHERE id = $1`, projectID).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return json.RawMessage(doc), nil
}

func (s *Postgres) ProjectExists(ctx context.Context, projectID string) (bool, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return false, err
	}
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1)`, projectID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("project exists: %w", err)
	}
	return exists, nil
}

// ListRecentMessages selects the newest rows then flips them ascending so
// the prompt sees the conversation in chronological order.
func (s *Postgres) ListRecentMessages(ctx context.Context, projectID string, limit int) ([]Message, error) {
	if err := s.ensureSchema(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = HistoryLimit
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT role, content, created_at FROM (
  SELECT role, content, created_at, id
  FROM chat_messages
  WHERE project_id = $1
  ORDER BY created_at DESC, id DESC
  LIMIT $2
) recent
ORDER BY created_at ASC, id ASC`, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// AppendMessages writes all turns in one transaction so a half-recorded
// exchange never reaches the history.
func (s *Postgres) AppendMessages(ctx context.Context, projectID string, msgs []Message) error {
	if err := s.ensureSchema(ctx); err != nil {
		return err
	}
	if len(msgs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append messages: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range msgs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO chat_messages (project_id, role, content) VALUES ($1, $2, $3)`,
			projectID, m.Role, m.Content); err != nil {
			return fmt.Errorf("append messages: %w", err)
		}
	}
	return tx.Commit()
}
