// Package diagram defines the wire types shared with the canvas: the
// diagram document itself and the edit operations the assistant proposes.
// Operations are a hand-off value; nothing in this service applies them.
package diagram

import (
	"encoding/json"
	"strings"
)

// Position is a node's canvas coordinate.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NodeData carries the user-visible fields of a node.
type NodeData struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

// Node is one component in the diagram document.
type Node struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// Edge is a directed connection between two nodes.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type,omitempty"`
}

// Document is the diagram as persisted by the store. The store owns the
// document; this service only reads it for prompt context.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeIDs extracts the node ids from a raw diagram document. The document
// is external input, so anything that does not decode is treated as empty
// rather than failing the caller.
func NodeIDs(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	ids := make([]string, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if id := strings.TrimSpace(n.ID); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
