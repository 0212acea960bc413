// Package catalog holds the static registry of node types a diagram may
// contain. The registry is built once at process start and never mutated.
package catalog

import (
	"fmt"
	"strings"
)

// Tier classifies the infrastructure scale a technology suggestion targets.
type Tier string

const (
	TierLightweight Tier = "lightweight"
	TierHeavy       Tier = "heavy"
)

// NodeType describes one allowed diagram component type.
type NodeType struct {
	ID           string
	Label        string
	Description  string
	Technologies map[Tier][]string
	UseCases     []string
}

// Catalog is an immutable, ordered set of node types.
type Catalog struct {
	types []NodeType
	byID  map[string]NodeType
}

// New builds a catalog from the given node types. Duplicate or empty ids
// are rejected so a bad registry fails loudly at startup.
func New(types []NodeType) (*Catalog, error) {
	byID := make(map[string]NodeType, len(types))
	out := make([]NodeType, 0, len(types))
	for _, nt := range types {
		id := strings.TrimSpace(nt.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog: node type with empty id")
		}
		if _, exists := byID[id]; exists {
			return nil, fmt.Errorf("catalog: duplicate node type id %q", id)
		}
		nt.ID = id
		byID[id] = nt
		out = append(out, nt)
	}
	return &Catalog{types: out, byID: byID}, nil
}

// MustDefault returns the built-in registry and panics on a malformed table.
// The table is a compile-time literal, so a panic here is a programming error.
func MustDefault() *Catalog {
	c, err := New(defaultNodeTypes)
	if err != nil {
		panic(err)
	}
	return c
}

// Types returns the node types in registry order.
func (c *Catalog) Types() []NodeType { return c.types }

// ByID looks up a node type by its id slug.
func (c *Catalog) ByID(id string) (NodeType, bool) {
	nt, ok := c.byID[strings.TrimSpace(id)]
	return nt, ok
}

// Has reports whether id is a known node type.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[strings.TrimSpace(id)]
	return ok
}

// IDs returns all node type ids in registry order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.types))
	for i, nt := range c.types {
		ids[i] = nt.ID
	}
	return ids
}

// TechnologiesFor returns the suggestion list for a node type at a tier.
func (c *Catalog) TechnologiesFor(id string, tier Tier) []string {
	nt, ok := c.ByID(id)
	if !ok {
		return nil
	}
	return nt.Technologies[tier]
}
