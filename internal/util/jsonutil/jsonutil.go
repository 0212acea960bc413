// Package jsonutil holds the JSON helpers used at the LLM boundary, where
// payloads are embedded in prompt text and must stay readable: no
// <-style HTML escapes, stable indentation.
package jsonutil

import (
	"bytes"
	"encoding/json"
)

// MarshalNoEscape encodes v without escaping <, >, & to < and friends.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// json.Encoder.Encode appends a newline.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// IndentRaw re-indents a raw JSON document for prompt embedding. Input that
// does not parse is returned as-is: the prompt still wants to show the
// model whatever the store holds.
func IndentRaw(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "{}"
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	out, err := marshalIndentNoEscape(v, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(out)
}

func marshalIndentNoEscape(v any, prefix, indent string) ([]byte, error) {
	b, err := MarshalNoEscape(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
