package render

import (
	"fmt"
	"strings"
)

// NodeRecord is one subject identity in the pair graph.
type NodeRecord struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Total        uint64 `json:"total"`
	Compressed   bool   `json:"compressed,omitempty"`
	Unclassified bool   `json:"unclassified,omitempty"`
}

// EdgeRecord is one (subject, follower) adjacency count.
type EdgeRecord struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Count uint64 `json:"count"`
}

// PairsDOT renders the co-occurrence graph as DOT. Edge color and width
// scale with the count relative to the hottest pair. Only nodes touched by
// a rendered edge appear. maxEdges limits the number of edges rendered
// (0 = all); callers pass edges already ordered by priority.
func PairsDOT(nodes []NodeRecord, edges []EdgeRecord, title string, t Theme, maxEdges int) string {
	if maxEdges > 0 && len(edges) > maxEdges {
		edges = edges[:maxEdges]
	}

	var hottest uint64
	used := make(map[string]bool)
	for _, e := range edges {
		if e.Count > hottest {
			hottest = e.Count
		}
		used[e.From] = true
		used[e.To] = true
	}

	var b strings.Builder
	b.WriteString("digraph pairs {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  nodesep=0.25;\n")
	b.WriteString("  ranksep=0.6;\n")
	fmt.Fprintf(&b, "  bgcolor=%q;\n", t.Background)
	fmt.Fprintf(&b, "  node [shape=rect, style=filled, fillcolor=%q, color=%q, penwidth=0.5, fontname=\"Courier,monospace\", fontsize=9, fontcolor=%q, margin=\"0.08,0.04\"];\n",
		t.NodeFill, t.NodeBorder, t.TextColor)
	b.WriteString("  edge [arrowsize=0.5, arrowhead=vee, fontname=\"Helvetica Neue,Helvetica\", fontsize=7];\n")
	b.WriteString("  labelloc=t;\n  labeljust=l;\n")
	fmt.Fprintf(&b, "  label=<<font face=\"Helvetica Neue,Helvetica\" point-size=\"10\" color=\"%s\">%s</font>>;\n",
		t.TextColor, dotEscape(title))
	b.WriteByte('\n')

	for _, n := range nodes {
		if !used[n.Key] {
			continue
		}
		name, ops := operandLines(n.Label)
		label := fmt.Sprintf("<b>%s</b>", dotEscape(truncLabel(name, 24)))
		if ops != "" {
			label += fmt.Sprintf("<br/><font point-size=\"7\">%s</font>", dotEscape(truncLabel(ops, 32)))
		}
		label += fmt.Sprintf("<br/><font point-size=\"7\">%d</font>", n.Total)

		attrs := ""
		switch {
		case n.Unclassified:
			attrs = fmt.Sprintf(", fontcolor=%q, style=\"filled,dashed\"", t.UnclassifiedText)
		case n.Compressed:
			attrs = fmt.Sprintf(", fillcolor=%q", t.CompressedFill)
		}
		fmt.Fprintf(&b, "  %s [label=<%s>%s];\n", dotID(n.Key), label, attrs)
	}
	b.WriteByte('\n')

	for _, e := range edges {
		color := edgeColor(e.Count, hottest, t)
		fmt.Fprintf(&b, "  %s -> %s [color=%q, penwidth=%.2f, label=<<font color=\"%s\">%d</font>>];\n",
			dotID(e.From), dotID(e.To), color, edgeWidth(e.Count, hottest), color, e.Count)
	}

	b.WriteString("}\n")
	return b.String()
}
