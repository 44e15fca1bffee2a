package render

import (
	"fmt"
	"io"
	"strings"
)

// SummaryRow is one label/value line of the summary table.
type SummaryRow struct {
	Label string
	Value string
}

// Link points at another artifact written next to the index.
type Link struct {
	Href string
	Text string
}

// Summary is the content of the HTML index page.
type Summary struct {
	Rows  []SummaryRow
	Nodes []NodeRecord // hottest subjects first
	Edges []EdgeRecord // hottest pairs first
	Links []Link
	Limit int // rows per ranking table; 0 = 25
}

// WriteIndexHTML writes a small HTML page summarizing a fusion run.
func WriteIndexHTML(w io.Writer, s Summary, title string, t Theme) {
	limit := s.Limit
	if limit <= 0 {
		limit = 25
	}

	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; font-size: 14px; color: %s; background: %s; margin: 2em; max-width: 900px; }
h1 { font-size: 18px; font-weight: 600; margin-bottom: 0.5em; }
h2 { font-size: 14px; font-weight: 600; margin-top: 1.5em; border-bottom: 1px solid #ddd; padding-bottom: 4px; }
table { border-collapse: collapse; margin: 0.5em 0; }
th, td { text-align: left; padding: 3px 12px 3px 0; font-size: 13px; }
th { font-weight: 600; }
td.num { text-align: right; font-variant-numeric: tabular-nums; }
td.ins { font-family: "Courier New", monospace; font-size: 12px; }
a { color: %s; }
.mbar { height: 6px; border-radius: 2px; display: inline-block; vertical-align: middle; background: %s; }
</style>
</head>
<body>
`, htmlEscape(title), t.TextColor, t.Background, t.BarColor, t.BarColor)

	fmt.Fprintf(w, "<h1>%s</h1>\n", htmlEscape(title))

	fmt.Fprintln(w, "<h2>Summary</h2>")
	fmt.Fprintln(w, "<table>")
	for _, r := range s.Rows {
		fmt.Fprintf(w, "<tr><td>%s</td><td class=\"num\">%s</td></tr>\n", htmlEscape(r.Label), htmlEscape(r.Value))
	}
	fmt.Fprintln(w, "</table>")

	if len(s.Links) > 0 {
		fmt.Fprintln(w, "<h2>Artifacts</h2>")
		var links []string
		for _, l := range s.Links {
			links = append(links, fmt.Sprintf(`<a href="%s">%s</a>`, htmlEscape(l.Href), htmlEscape(l.Text)))
		}
		fmt.Fprintf(w, "<p>%s</p>\n", strings.Join(links, " | "))
	}

	if len(s.Edges) > 0 {
		fmt.Fprintln(w, "<h2>Hottest Pairs</h2>")
		fmt.Fprintln(w, "<table>")
		fmt.Fprintln(w, "<tr><th>Subject</th><th>Follower</th><th>Count</th><th></th></tr>")
		edges := s.Edges
		if len(edges) > limit {
			edges = edges[:limit]
		}
		hottest := edges[0].Count
		for _, e := range edges {
			fmt.Fprintf(w, "<tr><td class=\"ins\">%s</td><td class=\"ins\">%s</td><td class=\"num\">%d</td><td>%s</td></tr>\n",
				htmlEscape(e.From), htmlEscape(e.To), e.Count, bar(e.Count, hottest))
		}
		fmt.Fprintln(w, "</table>")
	}

	if len(s.Nodes) > 0 {
		fmt.Fprintln(w, "<h2>Hottest Instructions</h2>")
		fmt.Fprintln(w, "<table>")
		fmt.Fprintln(w, "<tr><th>Instruction</th><th>Executions</th><th></th></tr>")
		nodes := s.Nodes
		if len(nodes) > limit {
			nodes = nodes[:limit]
		}
		hottest := nodes[0].Total
		for _, n := range nodes {
			fmt.Fprintf(w, "<tr><td class=\"ins\">%s</td><td class=\"num\">%d</td><td>%s</td></tr>\n",
				htmlEscape(n.Label), n.Total, bar(n.Total, hottest))
		}
		if len(s.Nodes) > limit {
			fmt.Fprintf(w, "<tr><td>... and %d more</td></tr>\n", len(s.Nodes)-limit)
		}
		fmt.Fprintln(w, "</table>")
	}

	fmt.Fprintln(w, "</body></html>")
}

func bar(n, hottest uint64) string {
	barW := uint64(2)
	if hottest > 0 {
		barW = n * 120 / hottest
		if barW < 2 {
			barW = 2
		}
	}
	return fmt.Sprintf("<span class=\"mbar\" style=\"width:%dpx\"></span>", barW)
}

func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}
