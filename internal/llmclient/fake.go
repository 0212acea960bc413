package llmclient

import (
	"context"
	"sync"
)

// FakeClient is an in-memory Client for tests. Responses and errors are
// keyed by model name; calls are recorded in order.
type FakeClient struct {
	mu sync.Mutex

	Models    []ModelInfo
	ListErr   error
	Responses map[string]string
	Errors    map[string]error
	// DefaultErr is returned for models with no configured response.
	DefaultErr error

	ListCalls     int
	GenerateCalls []string
}

func (f *FakeClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.Models, nil
}

func (f *FakeClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GenerateCalls = append(f.GenerateCalls, model)
	if err, ok := f.Errors[model]; ok {
		return "", err
	}
	if resp, ok := f.Responses[model]; ok {
		return resp, nil
	}
	if f.DefaultErr != nil {
		return "", f.DefaultErr
	}
	return "", ErrEmptyCompletion
}
