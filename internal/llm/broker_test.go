package llm

import (
	"context"
	"errors"
	"testing"

	"archie/internal/llmclient"
)

func advertised(names ...string) []llmclient.ModelInfo {
	out := make([]llmclient.ModelInfo, 0, len(names))
	for _, n := range names {
		out = append(out, llmclient.ModelInfo{Name: n, SupportsCompletion: true})
	}
	return out
}

func TestCompleteUsesBestAdvertisedModel(t *testing.T) {
	fake := &llmclient.FakeClient{
		Models:    advertised("gemini-1.5-pro", "gemini-2.5-flash"),
		Responses: map[string]string{"gemini-2.5-flash": `{"message":"ok"}`},
	}
	text, model, err := NewBroker(fake).Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model != "gemini-2.5-flash" {
		t.Fatalf("picked %q", model)
	}
	if text != `{"message":"ok"}` {
		t.Fatalf("got %q", text)
	}
	if len(fake.GenerateCalls) != 1 {
		t.Fatalf("expected one attempt, got %v", fake.GenerateCalls)
	}
}

func TestCompleteFallsThroughOnFailure(t *testing.T) {
	fake := &llmclient.FakeClient{
		Models: advertised("gemini-2.5-flash", "gemini-1.5-flash"),
		Errors: map[string]error{
			"gemini-2.5-flash": errors.New("500 internal"),
		},
		Responses: map[string]string{"gemini-1.5-flash": `{"message":"ok"}`},
	}
	_, model, err := NewBroker(fake).Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model != "gemini-1.5-flash" {
		t.Fatalf("picked %q", model)
	}
	if len(fake.GenerateCalls) != 2 {
		t.Fatalf("expected two attempts, got %v", fake.GenerateCalls)
	}
}

func TestCompleteAllRateLimited(t *testing.T) {
	fake := &llmclient.FakeClient{
		Models:     advertised("gemini-2.5-flash", "gemini-1.5-flash"),
		DefaultErr: llmclient.ErrRateLimited,
	}
	_, _, err := NewBroker(fake).Complete(context.Background(), "p")
	if !errors.Is(err, llmclient.ErrRateLimited) {
		t.Fatalf("expected rate limit, got %v", err)
	}
}

func TestCompleteMixedFailuresReportRateLimit(t *testing.T) {
	fake := &llmclient.FakeClient{
		Models: advertised("gemini-2.5-flash", "gemini-1.5-flash"),
		Errors: map[string]error{
			"gemini-2.5-flash": errors.New("429 quota exceeded"),
			"gemini-1.5-flash": errors.New("500 internal"),
		},
	}
	_, _, err := NewBroker(fake).Complete(context.Background(), "p")
	if !errors.Is(err, llmclient.ErrRateLimited) {
		t.Fatalf("expected rate limit, got %v", err)
	}
}

func TestCompleteListingFailureTriesPreferenceList(t *testing.T) {
	fake := &llmclient.FakeClient{
		ListErr:   errors.New("listing down"),
		Responses: map[string]string{"gemini-2.5-flash": `{"message":"ok"}`},
	}
	_, model, err := NewBroker(fake).Complete(context.Background(), "p")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model != "gemini-2.5-flash" {
		t.Fatalf("picked %q", model)
	}
}

func TestCompletePermanentErrorStopsFallback(t *testing.T) {
	fake := &llmclient.FakeClient{
		Models: advertised("gemini-2.5-flash", "gemini-1.5-flash"),
		Errors: map[string]error{
			"gemini-2.5-flash": llmclient.NewPermanentError(errors.New("401 unauthorized")),
		},
	}
	_, _, err := NewBroker(fake).Complete(context.Background(), "p")
	var perm *llmclient.PermanentError
	if !errors.As(err, &perm) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if len(fake.GenerateCalls) != 1 {
		t.Fatalf("fallback continued after permanent error: %v", fake.GenerateCalls)
	}
}

func TestRankModelsSkipsPreviewAndExp(t *testing.T) {
	available := []llmclient.ModelInfo{
		{Name: "gemini-2.5-flash-preview-0514", SupportsCompletion: true},
		{Name: "gemini-2.0-flash-exp", SupportsCompletion: true},
		{Name: "gemini-1.5-pro", SupportsCompletion: true},
		{Name: "embedding-001", SupportsCompletion: false},
	}
	ranked := rankModels(preferredModels, available)
	if len(ranked) != 1 || ranked[0] != "gemini-1.5-pro" {
		t.Fatalf("got %v", ranked)
	}
}

func TestRankModelsPrefixVariantsAfterExact(t *testing.T) {
	available := advertised("gemini-2.5-flash-001", "gemini-2.5-flash", "gemini-1.5-flash")
	ranked := rankModels(preferredModels, available)
	want := []string{"gemini-2.5-flash", "gemini-1.5-flash", "gemini-2.5-flash-001"}
	if len(ranked) != len(want) {
		t.Fatalf("got %v", ranked)
	}
	for i := range want {
		if ranked[i] != want[i] {
			t.Fatalf("got %v want %v", ranked, want)
		}
	}
}
