// Package llm selects a working completion model and runs one generation
// against it, falling through a ranked preference list when individual
// models fail.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"archie/internal/llmclient"
)

// preferredModels is the fallback order. Earlier entries are cheaper and
// faster; later entries are older generations kept for accounts that no
// longer see the newer ones.
var preferredModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-flash-latest",
	"gemini-2.5-flash-lite",
	"gemini-2.0-flash-lite",
	"gemini-pro-latest",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

// ErrNoModels means no candidate model could be attempted at all.
var ErrNoModels = errors.New("no completion models available")

// Broker runs one completion per turn, trying candidate models in
// preference order with at most one attempt each.
type Broker struct {
	cli   llmclient.Client
	prefs []string
}

func NewBroker(cli llmclient.Client) *Broker {
	return &Broker{cli: cli, prefs: preferredModels}
}

// Complete tries each candidate model once and returns the first successful
// completion together with the model that produced it.
//
// When every attempt fails: a quota rejection anywhere in the chain makes
// the whole turn rate limited, an empty candidate list makes the provider
// unavailable, and anything else surfaces the last upstream error.
func (b *Broker) Complete(ctx context.Context, prompt string) (text, model string, err error) {
	candidates := b.candidates(ctx)
	if len(candidates) == 0 {
		return "", "", fmt.Errorf("%w: %v", llmclient.ErrUnavailable, ErrNoModels)
	}

	var lastErr error
	sawRateLimit := false
	for _, m := range candidates {
		text, err = b.cli.Generate(ctx, m, prompt)
		if err == nil {
			return text, m, nil
		}
		if llmclient.IsRateLimit(err) {
			sawRateLimit = true
		}
		var perm *llmclient.PermanentError
		if errors.As(err, &perm) {
			return "", "", err
		}
		log.Printf("llm: model %s failed, falling through: %v", m, err)
		lastErr = err
		if ctx.Err() != nil {
			return "", "", ctx.Err()
		}
	}
	if sawRateLimit {
		return "", "", fmt.Errorf("%w: all candidate models exhausted", llmclient.ErrRateLimited)
	}
	return "", "", lastErr
}

// candidates returns the models to try, in order. Enumeration failures are
// not fatal: when the listing call is unavailable the preference list is
// tried blind, one attempt per name.
func (b *Broker) candidates(ctx context.Context) []string {
	available, err := b.cli.ListModels(ctx)
	if err != nil {
		log.Printf("llm: model listing failed, trying preference list directly: %v", err)
		return b.prefs
	}
	ranked := rankModels(b.prefs, available)
	if len(ranked) == 0 {
		log.Printf("llm: no preferred model in listing (%d advertised), trying preference list directly", len(available))
		return b.prefs
	}
	return ranked
}

// rankModels orders the advertised models by the preference list. Models
// that cannot serve completions, and experimental or preview builds, are
// skipped. Exact matches rank before prefix variants of the same entry.
func rankModels(prefs []string, available []llmclient.ModelInfo) []string {
	eligible := make(map[string]bool, len(available))
	for _, m := range available {
		if !m.SupportsCompletion {
			continue
		}
		if strings.Contains(m.Name, "-exp") || strings.Contains(m.Name, "-preview") {
			continue
		}
		eligible[m.Name] = true
	}

	var ranked []string
	for _, pref := range prefs {
		if eligible[pref] {
			ranked = append(ranked, pref)
			delete(eligible, pref)
		}
	}
	for _, pref := range prefs {
		for _, m := range available {
			if eligible[m.Name] && strings.HasPrefix(m.Name, pref+"-") {
				ranked = append(ranked, m.Name)
				delete(eligible, m.Name)
			}
		}
	}
	return ranked
}
