// Package render turns graphs into Graphviz DOT or SVG and prints result
// tables in the formats the CLI offers.
package render

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/redsocial/core"
)

// DOTOptions configures ToDOT.
type DOTOptions struct {
	// Undirected emits "graph" with "--" connectors.
	Undirected bool

	// Highlight marks edges whose endpoints match one of these edges.
	// With Undirected, either direction matches.
	Highlight []core.Edge
}

// ToDOT converts g to DOT. Vertices are emitted sorted by ID and edges in
// insertion order, so the output is stable.
func ToDOT(g *core.Graph, opts DOTOptions) string {
	kind, arrow := "digraph", "->"
	if opts.Undirected {
		kind, arrow = "graph", "--"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %d [label=%q];\n", v.ID, v.String())
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := fmt.Sprintf("label=%q", fmt.Sprint(e.Weight))
		if highlighted(e, opts) {
			attrs += ", color=red, penwidth=2"
		}
		fmt.Fprintf(&buf, "  %d %s %d [%s];\n", e.From.ID, arrow, e.To.ID, attrs)
	}

	buf.WriteString("}\n")

	return buf.String()
}

func highlighted(e core.Edge, opts DOTOptions) bool {
	for _, h := range opts.Highlight {
		if e.Connects(h.From.ID, h.To.ID) {
			return true
		}
		if opts.Undirected && e.Connects(h.To.ID, h.From.ID) {
			return true
		}
	}

	return false
}
