package llmreply

import (
	"strings"
	"testing"
)

const wellFormed = `{"message":"Adding a web server.","operations":[{"op":"add_node","payload":{"id":"web-server-1","type":"web-server"}}]}`

func TestExtractPlainJSON(t *testing.T) {
	r := Extract(wellFormed)
	if r.Message != "Adding a web server." {
		t.Fatalf("message %q", r.Message)
	}
	if len(r.Operations) != 1 || r.Operations[0].Op != "add_node" {
		t.Fatalf("operations %+v", r.Operations)
	}
}

func TestExtractFencedJSON(t *testing.T) {
	for _, fence := range []string{"```json\n" + wellFormed + "\n```", "```\n" + wellFormed + "\n```"} {
		r := Extract(fence)
		if r.Message != "Adding a web server." || len(r.Operations) != 1 {
			t.Fatalf("fence %q: %+v", fence[:6], r)
		}
	}
}

func TestExtractJSONsurroundedByProse(t *testing.T) {
	in := "Sure, here is the plan:\n" + wellFormed + "\nLet me know if that helps."
	r := Extract(in)
	if r.Message != "Adding a web server." || len(r.Operations) != 1 {
		t.Fatalf("got %+v", r)
	}
}

func TestExtractPicksCandidateWithEnvelopeKeys(t *testing.T) {
	in := `First {"irrelevant": true} then {"message":"hi","operations":[]} done`
	r := Extract(in)
	if r.Message != "hi" {
		t.Fatalf("message %q", r.Message)
	}
	if r.Operations == nil || len(r.Operations) != 0 {
		t.Fatalf("operations %+v", r.Operations)
	}
}

func TestExtractLegacyBareArray(t *testing.T) {
	r := Extract(`[{"op":"add_node","payload":{"id":"a","type":"cache"}}]`)
	if r.Message != LegacyArrayMessage {
		t.Fatalf("message %q", r.Message)
	}
	if len(r.Operations) != 1 || r.Operations[0].Op != "add_node" {
		t.Fatalf("operations %+v", r.Operations)
	}
}

func TestExtractTotality(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"no json here at all",
		`{"message": "truncated`,
		"``` \n not even json \n ```",
		strings.Repeat("{", 200),
		`}{`,
	}
	for _, in := range inputs {
		r := Extract(in)
		if r.Operations == nil {
			t.Fatalf("input %q: nil operations", in)
		}
		if r.Message == "" {
			t.Fatalf("input %q: empty message", in)
		}
	}
}

func TestExtractFallbackCarriesDiagnostic(t *testing.T) {
	r := Extract("plain prose, nothing to parse")
	if !strings.Contains(r.Message, "couldn't process") {
		t.Fatalf("message %q", r.Message)
	}
	if len(r.Operations) != 0 {
		t.Fatalf("operations %+v", r.Operations)
	}
}

func TestExtractBracesInsideStrings(t *testing.T) {
	in := `{"message":"use {curly} braces","operations":[]}`
	r := Extract(in)
	if r.Message != "use {curly} braces" {
		t.Fatalf("message %q", r.Message)
	}
}

func TestExtractMissingFieldsGetDefaults(t *testing.T) {
	r := Extract(`{"operations":[]}`)
	if r.Message != DefaultMessage {
		t.Fatalf("message %q", r.Message)
	}
	r = Extract(`{"message":"only text"}`)
	if r.Operations == nil || len(r.Operations) != 0 {
		t.Fatalf("operations %+v", r.Operations)
	}
}

func TestNormalizeOperationsCoercion(t *testing.T) {
	r := Extract(`{"message":"x","operations":{"op":"delete_node","payload":{"id":"a"}}}`)
	if len(r.Operations) != 1 || r.Operations[0].Op != "delete_node" {
		t.Fatalf("single object not wrapped: %+v", r.Operations)
	}
	r = Extract(`{"message":"x","operations":"nope"}`)
	if len(r.Operations) != 0 {
		t.Fatalf("non-list not coerced: %+v", r.Operations)
	}
	r = Extract(`{"message":"x","operations":[{"op":"add_edge"},{"payload":{}}]}`)
	if len(r.Operations) != 1 || r.Operations[0].Op != "add_edge" {
		t.Fatalf("untagged entry kept: %+v", r.Operations)
	}
}

func TestNormalizeMessageCoercion(t *testing.T) {
	r := Extract(`{"message":42,"operations":[]}`)
	if r.Message != DefaultMessage {
		t.Fatalf("message %q", r.Message)
	}
	r = Extract(`{"message":"   ","operations":[]}`)
	if r.Message != DefaultMessage {
		t.Fatalf("blank message kept: %q", r.Message)
	}
}
