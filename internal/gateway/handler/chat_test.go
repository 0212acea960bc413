package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"archie/internal/catalog"
	"archie/internal/gateway/repository/chatstore"
	"archie/internal/gateway/usecase/chat"
	"archie/internal/llmclient"
	"archie/internal/prompt"
)

const watchProjectID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

type stubCompleter struct {
	text  string
	err   error
	calls int
}

func (s *stubCompleter) Complete(ctx context.Context, p string) (string, string, error) {
	s.calls++
	if s.err != nil {
		return "", "", s.err
	}
	return s.text, "gemini-2.5-flash", nil
}

func newTestHandler(store *chatstore.Memory, comp chat.Completer) *Handler {
	svc := chat.NewService(store, comp, prompt.NewCompiler(catalog.MustDefault()), nil)
	return New(svc, store)
}

func postChat(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleChat(rec, req)
	return rec
}

func TestChatSuccess(t *testing.T) {
	store := chatstore.NewMemory()
	store.SeedProject(watchProjectID, nil)
	comp := &stubCompleter{text: `{"message":"Adding a cache.","operations":[{"op":"add_node","payload":{"id":"cache-1","type":"cache"}}]}`}

	rec := postChat(newTestHandler(store, comp), `{"projectId":"`+watchProjectID+`","message":"add a cache"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message    string            `json:"message"`
		Operations []json.RawMessage `json:"operations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Adding a cache." {
		t.Fatalf("message %q", resp.Message)
	}
	if len(resp.Operations) != 1 {
		t.Fatalf("operations %v", resp.Operations)
	}
}

func TestChatBadUUIDNoDownstreamCalls(t *testing.T) {
	store := chatstore.NewMemory()
	comp := &stubCompleter{text: `{"message":"ok","operations":[]}`}

	rec := postChat(newTestHandler(store, comp), `{"projectId":"nope","message":"hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
	if comp.calls != 0 {
		t.Fatalf("completer called %d times", comp.calls)
	}
}

func TestChatInvalidBody(t *testing.T) {
	rec := postChat(newTestHandler(chatstore.NewMemory(), &stubCompleter{}), `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestChatUnknownProject(t *testing.T) {
	rec := postChat(newTestHandler(chatstore.NewMemory(), &stubCompleter{}),
		`{"projectId":"`+watchProjectID+`","message":"hi"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestChatUpstreamStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"rate limited", llmclient.ErrRateLimited, http.StatusTooManyRequests},
		{"unavailable", llmclient.ErrUnavailable, http.StatusServiceUnavailable},
		{"other", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := chatstore.NewMemory()
			store.SeedProject(watchProjectID, nil)
			rec := postChat(newTestHandler(store, &stubCompleter{err: tc.err}),
				`{"projectId":"`+watchProjectID+`","message":"hi"}`)
			if rec.Code != tc.want {
				t.Fatalf("status %d want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestChatProseCompletionIsStill200(t *testing.T) {
	store := chatstore.NewMemory()
	store.SeedProject(watchProjectID, nil)
	rec := postChat(newTestHandler(store, &stubCompleter{text: "no json here"}),
		`{"projectId":"`+watchProjectID+`","message":"hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"operations":[]`) {
		t.Fatalf("operations not an empty array: %s", rec.Body.String())
	}
}

func TestChatOperationsNeverNull(t *testing.T) {
	store := chatstore.NewMemory()
	store.SeedProject(watchProjectID, nil)
	rec := postChat(newTestHandler(store, &stubCompleter{text: `{"message":"just chatting"}`}),
		`{"projectId":"`+watchProjectID+`","message":"hi"}`)
	if strings.Contains(rec.Body.String(), `"operations":null`) {
		t.Fatalf("null operations in body: %s", rec.Body.String())
	}
}

func TestChatMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	rec := httptest.NewRecorder()
	newTestHandler(chatstore.NewMemory(), &stubCompleter{}).HandleChat(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestWatchRejectsBadProject(t *testing.T) {
	h := newTestHandler(chatstore.NewMemory(), &stubCompleter{})

	req := httptest.NewRequest(http.MethodGet, "/chat/watch?projectId=nope", nil)
	rec := httptest.NewRecorder()
	h.HandleWatch(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/chat/watch?projectId="+watchProjectID, nil)
	rec = httptest.NewRecorder()
	h.HandleWatch(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	newTestHandler(chatstore.NewMemory(), &stubCompleter{}).HandleHealthz(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}
