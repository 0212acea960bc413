package llmclient

import (
	"context"
	"errors"
	"fmt"

	genai "google.golang.org/genai"
)

// GeminiClient is a thin wrapper around the official genai client.
// It only covers the API calls themselves; model ranking and fallback
// are applied by the completion broker above it.
type GeminiClient struct {
	cli *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &GeminiClient{cli: cli}, nil
}

// ListModels enumerates the account's models. A model supports completion
// when the provider lists "generateContent" among its actions.
func (g *GeminiClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var out []ModelInfo
	for m, err := range g.cli.Models.All(ctx) {
		if err != nil {
			return nil, classify(err)
		}
		if m == nil || m.Name == "" {
			continue
		}
		info := ModelInfo{Name: stripModelPrefix(m.Name)}
		for _, action := range m.SupportedActions {
			if action == "generateContent" {
				info.SupportsCompletion = true
				break
			}
		}
		out = append(out, info)
	}
	return out, nil
}

// Generate asks one model for an application/json completion and returns the
// raw candidate text untouched.
func (g *GeminiClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Candidates) == 0 ||
		resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}
	txt := resp.Candidates[0].Content.Parts[0].Text
	if txt == "" {
		return "", ErrEmptyCompletion
	}
	return txt, nil
}

// stripModelPrefix drops the provider's "models/" resource prefix so names
// match what GenerateContent expects.
func stripModelPrefix(name string) string {
	const p = "models/"
	if len(name) > len(p) && name[:len(p)] == p {
		return name[len(p):]
	}
	return name
}

// classify maps a raw genai error onto the package sentinels so the broker
// can decide between fallback and a terminal failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case apiErr.Code >= 500:
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		case apiErr.Code == 401 || apiErr.Code == 403:
			return NewPermanentError(err)
		}
		return err
	}
	if IsRateLimit(err) {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return err
}
