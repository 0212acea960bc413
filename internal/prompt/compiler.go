// Package prompt assembles the instruction text for one diagram-chat turn.
// Compilation is pure: the same catalog, diagram, history and message
// always produce byte-identical output, so prompt regressions are testable
// without a live model.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"archie/internal/catalog"
	"archie/internal/util/jsonutil"
)

// HistoryEntry is one prior conversation turn, oldest first.
type HistoryEntry struct {
	Role    string
	Content string
}

// NoHistorySentinel is rendered when a project has no prior conversation.
const NoHistorySentinel = "No previous messages."

// Compiler renders turn prompts against a fixed catalog.
type Compiler struct {
	cat *catalog.Catalog
}

func NewCompiler(cat *catalog.Catalog) *Compiler {
	return &Compiler{cat: cat}
}

// Compile builds the full instruction string for one turn. Section order is
// fixed; every section is deterministic given its inputs.
func (c *Compiler) Compile(diagramJSON json.RawMessage, history []HistoryEntry, userMessage string) string {
	var buf bytes.Buffer

	buf.WriteString(persona)
	buf.WriteString("\n\nCurrent diagram JSON:\n")
	buf.WriteString(jsonutil.IndentRaw(diagramJSON))
	buf.WriteString("\n\nRecent chat:\n")
	buf.WriteString(FormatHistory(history))
	buf.WriteString("\n\n")

	writeSection(&buf, "CRITICAL: EDITING EXISTING DIAGRAMS", editRules)
	writeSection(&buf, "INFRASTRUCTURE SCALE DETECTION", scaleDetection)
	writeSection(&buf, "TECHNOLOGY SELECTION BY SCALE", c.technologyTable())
	writeSection(&buf, "NODE DESCRIPTION REQUIREMENTS", descriptionRules)
	writeSection(&buf, "RESPONSE FORMAT", responseFormat)
	writeSection(&buf, "AVAILABLE NODE TYPES", strings.Join(c.cat.IDs(), ", "))
	writeSection(&buf, "LAYOUT AND POSITIONING", layoutRules)

	buf.WriteString("USER:\n")
	buf.WriteString(userMessage)
	buf.WriteString("\n")
	return buf.String()
}

// FormatHistory renders prior turns as "ROLE: content" lines, oldest first,
// or the no-history sentinel.
func FormatHistory(history []HistoryEntry) string {
	if len(history) == 0 {
		return NoHistorySentinel
	}
	lines := make([]string, 0, len(history))
	for _, h := range history {
		lines = append(lines, strings.ToUpper(h.Role)+": "+h.Content)
	}
	return strings.Join(lines, "\n")
}

// technologyTable renders, per node type, the tier-specific technology
// suggestions straight from the catalog so prompt and registry cannot
// drift apart.
func (c *Compiler) technologyTable() string {
	var b strings.Builder
	b.WriteString("Detect the scale first, then pick technologies from the matching column below.\n")
	b.WriteString("Put the chosen technology in the node's \"data.name\" and in a \"technology\" attribute.\n\n")
	for _, nt := range c.cat.Types() {
		fmt.Fprintf(&b, "%s (%s):\n", strings.ToUpper(nt.Label), nt.ID)
		fmt.Fprintf(&b, "- Lightweight: %s\n", strings.Join(nt.Technologies[catalog.TierLightweight], ", "))
		fmt.Fprintf(&b, "- Heavy: %s\n", strings.Join(nt.Technologies[catalog.TierHeavy], ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}

func writeSection(buf *bytes.Buffer, title, body string) {
	buf.WriteString("=== ")
	buf.WriteString(title)
	buf.WriteString(" ===\n")
	buf.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}
