package llmclient

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrRateLimited means the provider refused the call on quota grounds.
	ErrRateLimited = errors.New("llm rate limited")
	// ErrUnavailable means the provider could not be reached or is down.
	ErrUnavailable = errors.New("llm unavailable")
	// ErrEmptyCompletion means the call succeeded but returned no text.
	ErrEmptyCompletion = errors.New("empty completion")
)

// ModelInfo describes one model the provider exposes.
type ModelInfo struct {
	// Name is the provider's model identifier, e.g. "gemini-2.5-flash".
	Name string
	// SupportsCompletion reports whether the model can serve text generation.
	SupportsCompletion bool
}

// Client is a text-completion provider. Implementations wrap one vendor SDK;
// ranking, fallback and retries live above this interface.
type Client interface {
	// ListModels enumerates the models visible to the configured credentials.
	ListModels(ctx context.Context) ([]ModelInfo, error)
	// Generate runs one completion on the named model and returns the raw text.
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// PermanentError marks an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

// IsRateLimit reports whether err looks like a quota rejection, either a
// classified sentinel or a raw provider error carrying the usual markers.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "resource_exhausted") ||
		strings.Contains(msg, "resource exhausted")
}
