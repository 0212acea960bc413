package jsonutil

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshalNoEscape(t *testing.T) {
	out, err := MarshalNoEscape(map[string]string{"op": "a -> b & c"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), `\u003`) {
		t.Fatalf("output still HTML-escaped: %s", out)
	}
	if strings.HasSuffix(string(out), "\n") {
		t.Fatalf("trailing newline not trimmed: %q", out)
	}
}

func TestIndentRaw(t *testing.T) {
	got := IndentRaw(json.RawMessage(`{"nodes":[{"id":"a"}]}`))
	if !strings.Contains(got, "\n  \"nodes\"") {
		t.Fatalf("expected indented output, got %q", got)
	}
	if got := IndentRaw(nil); got != "{}" {
		t.Fatalf("empty document should render as {}, got %q", got)
	}
	// Unparseable input passes through untouched.
	if got := IndentRaw(json.RawMessage(`{broken`)); got != "{broken" {
		t.Fatalf("malformed document should pass through, got %q", got)
	}
}
