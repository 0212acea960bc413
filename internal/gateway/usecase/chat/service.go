// Package chat runs one conversation turn end to end: load the project,
// compile the prompt, obtain a completion, repair it into operations, and
// record the exchange.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"archie/internal/diagram"
	"archie/internal/gateway/repository/chatstore"
	"archie/internal/gateway/repository/transcript"
	"archie/internal/llmclient"
	"archie/internal/llmreply"
	"archie/internal/prompt"
)

// Completer produces one raw completion for a compiled prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (text, model string, err error)
}

// Archiver records finished turns out of band. Implementations may fail
// freely; archiving never affects the turn result.
type Archiver interface {
	Save(ctx context.Context, turn transcript.Turn) error
}

// Request is one inbound chat turn.
type Request struct {
	ProjectID string
	Message   string
}

// Result is a completed turn. Operations is never nil. Dangling lists edge
// endpoint ids that resolve to no node; they are reported, not dropped.
type Result struct {
	Message    string
	Operations []diagram.Operation
	Dangling   []string
	Model      string
}

type Service struct {
	store     chatstore.Store
	completer Completer
	compiler  *prompt.Compiler
	archive   Archiver
}

// NewService wires a turn service. archive may be nil.
func NewService(store chatstore.Store, completer Completer, compiler *prompt.Compiler, archive Archiver) *Service {
	return &Service{store: store, completer: completer, compiler: compiler, archive: archive}
}

// HandleTurn runs one turn. Input validation happens before any store or
// completion call; history failures degrade the turn instead of failing
// it; a history-write failure after a successful completion is logged and
// swallowed so the caller never loses a produced diagram edit.
func (s *Service) HandleTurn(ctx context.Context, req Request) (Result, error) {
	if _, err := uuid.Parse(req.ProjectID); err != nil {
		return Result{}, fmt.Errorf("%w: projectId must be a UUID", ErrBadRequest)
	}
	userMessage := strings.TrimSpace(req.Message)
	if userMessage == "" {
		return Result{}, fmt.Errorf("%w: message is required", ErrBadRequest)
	}
	if s.store == nil {
		return Result{}, fmt.Errorf("%w: no store configured", ErrUnavailable)
	}
	if s.completer == nil {
		return Result{}, fmt.Errorf("%w: no completion client configured", ErrUnavailable)
	}

	doc, err := s.store.GetProject(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, chatstore.ErrProjectNotFound) {
			return Result{}, fmt.Errorf("%w: %s", ErrNotFound, req.ProjectID)
		}
		return Result{}, fmt.Errorf("%w: load project: %v", ErrUpstream, err)
	}

	history := s.loadHistory(ctx, req.ProjectID)

	compiled := s.compiler.Compile(doc, history, userMessage)

	text, model, err := s.completer.Complete(ctx, compiled)
	if err != nil {
		switch {
		case errors.Is(err, llmclient.ErrRateLimited):
			return Result{}, fmt.Errorf("%w: %v", ErrRateLimited, err)
		case errors.Is(err, llmclient.ErrUnavailable):
			return Result{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		default:
			return Result{}, fmt.Errorf("%w: completion: %v", ErrUpstream, err)
		}
	}

	reply := llmreply.Extract(text)
	report := diagram.CheckOrdering(diagram.NodeIDs(doc), reply.Operations)
	if !report.OK() {
		log.Printf("chat: project %s: %d dangling edge reference(s): %v",
			req.ProjectID, len(report.Dangling), report.Dangling)
	}

	s.persistHistory(ctx, req.ProjectID, userMessage, reply.Message)

	res := Result{
		Message:    reply.Message,
		Operations: reply.Operations,
		Dangling:   report.Dangling,
		Model:      model,
	}
	s.archiveTurn(ctx, req.ProjectID, userMessage, text, res)
	return res, nil
}

// Configured reports which turn dependencies are wired, for health checks.
func (s *Service) Configured() (store, completer bool) {
	return s.store != nil, s.completer != nil
}

// loadHistory is best effort: history enriches the prompt but is not a
// precondition for the turn.
func (s *Service) loadHistory(ctx context.Context, projectID string) []prompt.HistoryEntry {
	msgs, err := s.store.ListRecentMessages(ctx, projectID, chatstore.HistoryLimit)
	if err != nil {
		log.Printf("chat: project %s: history read failed, continuing without: %v", projectID, err)
		return nil
	}
	out := make([]prompt.HistoryEntry, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, prompt.HistoryEntry{Role: m.Role, Content: m.Content})
	}
	return out
}

// persistHistory re-checks the project before appending, then writes both
// turns as one write. Failures are logged only.
func (s *Service) persistHistory(ctx context.Context, projectID, userMessage, assistantMessage string) {
	exists, err := s.store.ProjectExists(ctx, projectID)
	if err != nil {
		log.Printf("chat: project %s: existence re-check failed, skipping history write: %v", projectID, err)
		return
	}
	if !exists {
		log.Printf("chat: project %s: gone before history write, skipping", projectID)
		return
	}
	err = s.store.AppendMessages(ctx, projectID, []chatstore.Message{
		{Role: "user", Content: userMessage},
		{Role: "assistant", Content: assistantMessage},
	})
	if err != nil {
		log.Printf("chat: project %s: history write failed: %v", projectID, err)
	}
}

func (s *Service) archiveTurn(ctx context.Context, projectID, userMessage, rawReply string, res Result) {
	if s.archive == nil {
		return
	}
	err := s.archive.Save(ctx, transcript.Turn{
		ProjectID:   projectID,
		TurnID:      uuid.NewString(),
		UserMessage: userMessage,
		RawReply:    rawReply,
		Reply:       res.Message,
		Model:       res.Model,
		Operations:  res.Operations,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Printf("chat: project %s: transcript archive failed: %v", projectID, err)
	}
}
