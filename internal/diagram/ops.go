package diagram

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Operation kinds the protocol accepts.
const (
	OpAddNode    = "add_node"
	OpUpdateNode = "update_node"
	OpDeleteNode = "delete_node"
	OpAddEdge    = "add_edge"
	OpDeleteEdge = "delete_edge"
)

// Operation is one diagram edit instruction. The payload is kept raw so
// fields this service does not understand survive the round trip to the
// applier; typed views are obtained with the Decode helpers.
type Operation struct {
	Op       string          `json:"op"`
	Payload  json.RawMessage `json:"payload"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// AddNodePayload is the decoded payload of an add_node operation.
type AddNodePayload struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
}

// UpdateNodePayload is the decoded payload of an update_node operation.
type UpdateNodePayload struct {
	ID   string   `json:"id"`
	Data NodeData `json:"data"`
}

// DeleteNodePayload is the decoded payload of a delete_node operation.
// Cascading edge removal is the applier's job; the operation only names
// the node.
type DeleteNodePayload struct {
	ID string `json:"id"`
}

// AddEdgePayload is the decoded payload of an add_edge operation.
type AddEdgePayload struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type,omitempty"`
}

// DeleteEdgePayload is the decoded payload of a delete_edge operation.
type DeleteEdgePayload struct {
	ID string `json:"id"`
}

// KnownOp reports whether op names an operation kind the protocol defines.
func KnownOp(op string) bool {
	switch op {
	case OpAddNode, OpUpdateNode, OpDeleteNode, OpAddEdge, OpDeleteEdge:
		return true
	}
	return false
}

// DecodeAddNode decodes an add_node payload.
func (o Operation) DecodeAddNode() (AddNodePayload, error) {
	if o.Op != OpAddNode {
		return AddNodePayload{}, fmt.Errorf("diagram: operation is %q, not %s", o.Op, OpAddNode)
	}
	var p AddNodePayload
	if err := json.Unmarshal(o.Payload, &p); err != nil {
		return AddNodePayload{}, fmt.Errorf("diagram: decode add_node payload: %w", err)
	}
	return p, nil
}

// DecodeAddEdge decodes an add_edge payload.
func (o Operation) DecodeAddEdge() (AddEdgePayload, error) {
	if o.Op != OpAddEdge {
		return AddEdgePayload{}, fmt.Errorf("diagram: operation is %q, not %s", o.Op, OpAddEdge)
	}
	var p AddEdgePayload
	if err := json.Unmarshal(o.Payload, &p); err != nil {
		return AddEdgePayload{}, fmt.Errorf("diagram: decode add_edge payload: %w", err)
	}
	return p, nil
}

// nodeRef pulls just the id out of a node-addressing payload.
func (o Operation) nodeRef() string {
	var p struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(o.Payload, &p); err != nil {
		return ""
	}
	return strings.TrimSpace(p.ID)
}

// OrderingReport is the result of checking creation-before-reference
// ordering over an operation list.
type OrderingReport struct {
	// Dangling lists edge endpoints that reference an id with no
	// pre-existing node and no preceding add_node in the list.
	Dangling []string
}

// OK reports whether no dangling references were found.
func (r OrderingReport) OK() bool { return len(r.Dangling) == 0 }

// CheckOrdering walks the operation list in order, tracking the set of
// node ids visible at each step (the snapshot's nodes plus ids introduced
// by earlier add_node operations, minus deletions). Edge references that
// resolve to nothing are reported, never dropped: the applier decides
// what to do with them, but the caller must know.
func CheckOrdering(existing []string, ops []Operation) OrderingReport {
	known := make(map[string]bool, len(existing)+len(ops))
	for _, id := range existing {
		if id = strings.TrimSpace(id); id != "" {
			known[id] = true
		}
	}

	var report OrderingReport
	flag := func(id string) {
		for _, d := range report.Dangling {
			if d == id {
				return
			}
		}
		report.Dangling = append(report.Dangling, id)
	}

	for _, op := range ops {
		switch op.Op {
		case OpAddNode:
			p, err := op.DecodeAddNode()
			if err != nil {
				continue
			}
			if id := strings.TrimSpace(p.ID); id != "" {
				known[id] = true
			}
		case OpDeleteNode:
			if id := op.nodeRef(); id != "" {
				delete(known, id)
			}
		case OpAddEdge:
			p, err := op.DecodeAddEdge()
			if err != nil {
				continue
			}
			if src := strings.TrimSpace(p.Source); src != "" && !known[src] {
				flag(src)
			}
			if dst := strings.TrimSpace(p.Target); dst != "" && !known[dst] {
				flag(dst)
			}
		}
	}
	return report
}
