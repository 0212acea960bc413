// Package llmreply turns an arbitrary completion text into one well-formed
// reply. Extraction is total: any input, including empty or pure prose,
// yields a usable (message, operations) pair. Losing the model's edits is
// worse than degrading to an apologetic empty-operations reply, so every
// parse stage has a fallback.
package llmreply

import (
	"encoding/json"
	"sort"
	"strings"

	"archie/internal/diagram"
)

// Reply is the structured result of one completion.
type Reply struct {
	Message    string              `json:"message"`
	Operations []diagram.Operation `json:"operations"`
}

// maxScanDepth bounds brace nesting during the candidate scan so a
// pathological completion cannot blow the stack accounting.
const maxScanDepth = 64

// Extract parses a raw completion. Fallback order: direct parse of the
// fence-stripped text, legacy bare operation array, the first-to-last brace
// span when its braces balance, then a balanced-brace scan over every
// candidate object preferring the longest. When nothing parses the reply
// carries an apology with a short diagnostic fragment and no operations.
func Extract(raw string) Reply {
	s := stripFence(strings.TrimSpace(raw))

	env, firstErr := decodeEnvelope(s)
	if firstErr == nil {
		return normalize(env)
	}

	if ops, ok := decodeBareArray(s); ok {
		return Reply{Message: LegacyArrayMessage, Operations: ops}
	}

	if span, ok := braceSpan(s); ok {
		if env, err := decodeEnvelope(span); err == nil {
			return normalize(env)
		}
	}

	for _, cand := range scanCandidates(s) {
		env, err := decodeEnvelope(cand)
		if err != nil {
			continue
		}
		if _, ok := env["message"]; ok {
			return normalize(env)
		}
		if _, ok := env["operations"]; ok {
			return normalize(env)
		}
	}

	return Reply{
		Message:    fallbackMessage(firstErr),
		Operations: []diagram.Operation{},
	}
}

// stripFence removes one leading markdown fence (optionally tagged, e.g.
// ```json) and the matching trailing fence. Text without a leading fence
// passes through untouched.
func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := s[3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	} else {
		rest = strings.TrimLeft(rest, "`")
	}
	if end := strings.LastIndex(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func decodeEnvelope(s string) (map[string]json.RawMessage, error) {
	var env map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &env); err != nil {
		return nil, err
	}
	return env, nil
}

func decodeBareArray(s string) ([]diagram.Operation, bool) {
	if !strings.HasPrefix(s, "[") {
		return nil, false
	}
	var ops []diagram.Operation
	if err := json.Unmarshal([]byte(s), &ops); err != nil {
		return nil, false
	}
	return pruneOperations(ops), true
}

// braceSpan returns the substring from the first '{' to the last '}',
// but only when the open and close brace counts inside it balance.
func braceSpan(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	span := s[start : end+1]
	open, closed := 0, 0
	inString, escaped := false, false
	for i := 0; i < len(span); i++ {
		c := span[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			open++
		case '}':
			closed++
		}
	}
	if open != closed {
		return "", false
	}
	return span, true
}

// scanCandidates walks the text with a string-aware brace counter and
// collects every top-level balanced object, longest first. Objects nested
// deeper than maxScanDepth are abandoned.
func scanCandidates(s string) []string {
	var candidates []string
	depth := 0
	start := -1
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
			if depth > maxScanDepth {
				depth = 0
				start = -1
			}
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				candidates = append(candidates, s[start:i+1])
				start = -1
			}
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i]) > len(candidates[j])
	})
	return candidates
}

// fallbackMessage is shown to the user when nothing in the completion
// parses. It carries a short fragment of the underlying parse error.
func fallbackMessage(err error) string {
	detail := "no JSON object found"
	if err != nil {
		detail = err.Error()
		if len(detail) > 80 {
			detail = detail[:80]
		}
	}
	return "I'm sorry, I couldn't process that response properly (" + detail + "). Could you try rephrasing your request?"
}
