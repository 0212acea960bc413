package llmreply

import (
	"encoding/json"
	"strings"

	"archie/internal/diagram"
)

const (
	// DefaultMessage replaces an absent or non-string message field.
	DefaultMessage = "I've processed your request."
	// LegacyArrayMessage accompanies a bare operation array with no envelope.
	LegacyArrayMessage = "I've updated your diagram."
)

// normalize repairs a decoded envelope into the two invariants the
// orchestrator depends on: message is a non-empty string and operations is
// a list, possibly empty but never nil.
func normalize(env map[string]json.RawMessage) Reply {
	return Reply{
		Message:    normalizeMessage(env["message"]),
		Operations: normalizeOperations(env["operations"]),
	}
}

func normalizeMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return DefaultMessage
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return DefaultMessage
	}
	if strings.TrimSpace(s) == "" {
		return DefaultMessage
	}
	return s
}

// normalizeOperations coerces the operations field to a list. A single
// operation object is wrapped; anything else that fails to decode becomes
// the empty list.
func normalizeOperations(raw json.RawMessage) []diagram.Operation {
	if len(raw) == 0 {
		return []diagram.Operation{}
	}
	var ops []diagram.Operation
	if err := json.Unmarshal(raw, &ops); err == nil {
		return pruneOperations(ops)
	}
	var one diagram.Operation
	if err := json.Unmarshal(raw, &one); err == nil && one.Op != "" {
		return pruneOperations([]diagram.Operation{one})
	}
	return []diagram.Operation{}
}

// pruneOperations drops entries with no op tag and normalizes the result
// to a non-nil slice. Unknown but tagged operations are kept; rejecting
// them is the applier's call, not this layer's.
func pruneOperations(ops []diagram.Operation) []diagram.Operation {
	out := make([]diagram.Operation, 0, len(ops))
	for _, op := range ops {
		if strings.TrimSpace(op.Op) == "" {
			continue
		}
		out = append(out, op)
	}
	return out
}
