package report

import (
	"slices"

	"instfusion/internal/fusion"
	"instfusion/internal/render"
)

func nodeRecord(e *fusion.Entry) render.NodeRecord {
	return render.NodeRecord{
		Key:          e.Key.String(),
		Label:        e.Label(),
		Total:        e.Total.Load(),
		Compressed:   e.Inst.Layout().Compressed(),
		Unclassified: e.Inst.Unclassified(),
	}
}

// Nodes returns the reported subjects as render records.
func Nodes(t *fusion.Table, opts Options) []render.NodeRecord {
	items := Totals(t, opts)
	out := make([]render.NodeRecord, len(items))
	for i, it := range items {
		out[i] = nodeRecord(it.Subject)
	}
	return out
}

// Edges returns the reported pairs as render records keyed by entry key.
func Edges(t *fusion.Table, opts Options) []render.EdgeRecord {
	items := Pairs(t, opts)
	out := make([]render.EdgeRecord, len(items))
	for i, it := range items {
		out[i] = render.EdgeRecord{
			From:  it.Subject.Key.String(),
			To:    it.Follower.Key.String(),
			Count: it.Count,
		}
	}
	return out
}

// Hottest returns pairs ordered by count, descending, ignoring grouping.
func Hottest(t *fusion.Table, opts Options) []Item {
	top := opts.Top
	opts.Top = 0
	items := Pairs(t, opts)
	slices.SortStableFunc(items, byCountDesc)
	if top > 0 && len(items) > top {
		items = items[:top]
	}
	return items
}

// PairsDOT renders the hottest pairs as a themed, weighted DOT graph.
func PairsDOT(t *fusion.Table, opts Options, title string) string {
	var nodes []render.NodeRecord
	for _, e := range t.Entries() {
		nodes = append(nodes, nodeRecord(e))
	}
	var edges []render.EdgeRecord
	for _, it := range Hottest(t, opts) {
		edges = append(edges, render.EdgeRecord{
			From:  it.Subject.Key.String(),
			To:    it.Follower.Key.String(),
			Count: it.Count,
		})
	}
	return render.PairsDOT(nodes, edges, title, render.NASA, 0)
}
