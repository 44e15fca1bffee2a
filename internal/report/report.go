// Package report renders fusion tables: the line-oriented text report plus
// tree, graph and chart views of the same data.
package report

import (
	"bufio"
	"fmt"
	"io"
	"slices"

	"instfusion/internal/fusion"
)

// Section headers of the text report.
const (
	TotalsHeader = "# instruction totals"
	PairsHeader  = "# pair counts"
)

// Item is one reportable count: a subject total when Follower is nil,
// otherwise an adjacency.
type Item struct {
	Subject  *fusion.Entry
	Follower *fusion.Entry
	Count    uint64
}

// Pair reports whether it is an adjacency count.
func (it Item) Pair() bool { return it.Follower != nil }

func (it Item) String() string {
	if it.Follower == nil {
		return fmt.Sprintf("%s: %d", it.Subject.Label(), it.Count)
	}
	return fmt.Sprintf("%s-%s:%d", it.Subject.Label(), it.Follower.Label(), it.Count)
}

// Options selects and orders report lines. The zero value reports every
// non-zero count in table insertion order.
type Options struct {
	// Sort orders subjects by total count, descending, and followers by
	// count within each subject. Ties keep insertion order.
	Sort bool
	// Top limits the lines per section. 0 = all.
	Top int
	// MinCount drops counts below it. Zero counts are always dropped.
	MinCount uint64
	// Keep, if set, must return true for an item to be reported.
	Keep func(Item) bool
	// Stats, if set, is written as a header line.
	Stats *fusion.Stats
}

func (o Options) keep(it Item) bool {
	if it.Count == 0 || it.Count < o.MinCount {
		return false
	}
	return o.Keep == nil || o.Keep(it)
}

func (o Options) limit(items []Item) []Item {
	if o.Top > 0 && len(items) > o.Top {
		return items[:o.Top]
	}
	return items
}

func byCountDesc(a, b Item) int {
	switch {
	case a.Count > b.Count:
		return -1
	case a.Count < b.Count:
		return 1
	}
	return 0
}

// subjects returns table entries in report order.
func subjects(t *fusion.Table, opts Options) []*fusion.Entry {
	es := t.Entries()
	if opts.Sort {
		slices.SortStableFunc(es, func(a, b *fusion.Entry) int {
			return byCountDesc(Item{Count: a.Total.Load()}, Item{Count: b.Total.Load()})
		})
	}
	return es
}

// Totals returns the per-subject execution counts to report.
func Totals(t *fusion.Table, opts Options) []Item {
	var out []Item
	for _, e := range subjects(t, opts) {
		it := Item{Subject: e, Count: e.Total.Load()}
		if opts.keep(it) {
			out = append(out, it)
		}
	}
	return opts.limit(out)
}

// Pairs returns the adjacency counts to report, grouped by subject.
func Pairs(t *fusion.Table, opts Options) []Item {
	var out []Item
	for _, e := range subjects(t, opts) {
		var group []Item
		for _, k := range e.Followers() {
			f, ok := t.Lookup(k)
			if !ok {
				continue
			}
			it := Item{Subject: e, Follower: f, Count: e.Follower(k).Load()}
			if opts.keep(it) {
				group = append(group, it)
			}
		}
		if opts.Sort {
			slices.SortStableFunc(group, byCountDesc)
		}
		out = append(out, group...)
	}
	return opts.limit(out)
}

// StatsLine renders run statistics as a single comment line.
func StatsLine(s fusion.Stats) string {
	return fmt.Sprintf("# blocks=%d translations=%d executions=%d trace=%d insts=%d unclassified=%d",
		s.Blocks, s.Translations, s.Executions, s.TraceLen, s.Insts, s.Unclassified)
}

// Text writes the two-section text report. Output depends only on the
// table contents and opts, so repeated calls produce identical text.
func Text(w io.Writer, t *fusion.Table, opts Options) error {
	bw := bufio.NewWriter(w)
	if opts.Stats != nil {
		fmt.Fprintln(bw, StatsLine(*opts.Stats))
	}
	fmt.Fprintln(bw, TotalsHeader)
	for _, it := range Totals(t, opts) {
		fmt.Fprintln(bw, it.String())
	}
	fmt.Fprintln(bw, PairsHeader)
	for _, it := range Pairs(t, opts) {
		fmt.Fprintln(bw, it.String())
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report: write: %w", err)
	}
	return nil
}
