package fusion

import (
	"fmt"

	"instfusion/internal/decode"
)

// Entry is the co-occurrence record of one subject identity: how often it
// executed and how often each follower executed immediately after it.
type Entry struct {
	Key  decode.Key
	Inst decode.Inst

	Total Counter

	label     string
	followers map[decode.Key]*Counter
	order     []decode.Key
}

// Label renders the subject for reports. Tables keyed by pattern only
// render the bare mnemonic.
func (e *Entry) Label() string { return e.label }

// Follower returns the adjacency counter towards k, or nil if that
// transition was never wired.
func (e *Entry) Follower(k decode.Key) *Counter {
	return e.followers[k]
}

// Followers returns follower keys in first-observed order.
func (e *Entry) Followers() []decode.Key {
	out := make([]decode.Key, len(e.order))
	copy(out, e.order)
	return out
}

func (e *Entry) follower(k decode.Key) *Counter {
	if c, ok := e.followers[k]; ok {
		return c
	}
	if e.followers == nil {
		e.followers = make(map[decode.Key]*Counter)
	}
	c := &Counter{}
	e.followers[k] = c
	e.order = append(e.order, k)
	return c
}

// Pair is one observed (subject, follower) transition.
type Pair struct {
	Subject  *Entry
	Follower *Entry
	Count    uint64
}

// Table maps identity keys to entries and remembers insertion order so
// every walk over it is deterministic. A Table is not safe for concurrent
// mutation; aggregators serialize access to it. Counters reached through
// it may be incremented concurrently.
type Table struct {
	operands bool
	entries  map[decode.Key]*Entry
	order    []*Entry
}

// NewTable returns an empty table. operands selects whether entries render
// with their operand list.
func NewTable(operands bool) *Table {
	return &Table{
		operands: operands,
		entries:  make(map[decode.Key]*Entry),
	}
}

// Operands reports whether keys carry operand lanes.
func (t *Table) Operands() bool { return t.operands }

// Len returns the number of distinct subjects.
func (t *Table) Len() int { return len(t.order) }

// Entry returns the entry for k, creating it from in on first use.
func (t *Table) Entry(k decode.Key, in decode.Inst) *Entry {
	if e, ok := t.entries[k]; ok {
		return e
	}
	label := in.Name()
	if t.operands {
		label = in.String()
	}
	e := &Entry{Key: k, Inst: in, label: label}
	t.entries[k] = e
	t.order = append(t.order, e)
	return e
}

// Lookup returns the entry for k.
func (t *Table) Lookup(k decode.Key) (*Entry, bool) {
	e, ok := t.entries[k]
	return e, ok
}

// Link returns the adjacency counter from subject to follower, creating it
// at zero on first use.
func (t *Table) Link(subject, follower *Entry) *Counter {
	return subject.follower(follower.Key)
}

// Entries returns all entries in insertion order.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, len(t.order))
	copy(out, t.order)
	return out
}

// Pairs returns every wired transition grouped by subject, subjects in
// insertion order and followers in first-observed order. Zero counts are
// included.
func (t *Table) Pairs() []Pair {
	var out []Pair
	for _, e := range t.order {
		for _, k := range e.order {
			out = append(out, Pair{
				Subject:  e,
				Follower: t.entries[k],
				Count:    e.followers[k].Load(),
			})
		}
	}
	return out
}

// Merge adds every count in o into t. Both tables must come from
// aggregators sharing one pattern table and key mode.
func (t *Table) Merge(o *Table) error {
	if o == nil {
		return nil
	}
	if o.operands != t.operands {
		return fmt.Errorf("fusion: merge: key mode mismatch (operands=%v vs %v)", t.operands, o.operands)
	}
	for _, src := range o.order {
		t.Entry(src.Key, src.Inst).Total.Add(src.Total.Load())
	}
	for _, src := range o.order {
		dst := t.entries[src.Key]
		for _, k := range src.order {
			dst.follower(k).Add(src.followers[k].Load())
		}
	}
	return nil
}
