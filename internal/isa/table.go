// Package isa holds the RISC-V instruction pattern table used to classify
// raw instruction words for fusion analysis.
package isa

import (
	"errors"
	"fmt"
	"sync"
)

// Pattern is one mask/match rule. A word w is an instance of the pattern
// when w&Mask == Match.
type Pattern struct {
	ID     int
	Name   string
	Mask   uint32
	Match  uint32
	Layout Layout
}

// Matches reports whether word is an instance of p.
func (p *Pattern) Matches(word uint32) bool {
	return word&p.Mask == p.Match
}

// Fallback reports whether p is the catch-all entry.
func (p *Pattern) Fallback() bool {
	return p.Mask == 0
}

// UnclassifiedName names the mask-0 entry that terminates every table.
const UnclassifiedName = "unclassified"

var (
	ErrEmptyTable = errors.New("isa: empty pattern table")
	ErrNoFallback = errors.New("isa: last pattern is not a mask-0 fallback")
	ErrBadPattern = errors.New("isa: match has bits outside mask")
)

// Table is an ordered, validated pattern list. Matching is first-match-wins.
type Table struct {
	patterns []Pattern
	byName   map[string]*Pattern
}

// NewTable validates patterns and returns a table that owns a copy of them.
// IDs are reassigned to the slice position.
func NewTable(patterns []Pattern) (*Table, error) {
	if len(patterns) == 0 {
		return nil, ErrEmptyTable
	}
	if !patterns[len(patterns)-1].Fallback() {
		return nil, ErrNoFallback
	}
	t := &Table{
		patterns: make([]Pattern, len(patterns)),
		byName:   make(map[string]*Pattern, len(patterns)),
	}
	copy(t.patterns, patterns)
	for i := range t.patterns {
		p := &t.patterns[i]
		if p.Match&^p.Mask != 0 {
			return nil, fmt.Errorf("%w: %s (mask 0x%08x, match 0x%08x)", ErrBadPattern, p.Name, p.Mask, p.Match)
		}
		if p.Layout >= numLayouts {
			return nil, fmt.Errorf("isa: %s: unknown layout %d", p.Name, p.Layout)
		}
		p.ID = i
		if _, dup := t.byName[p.Name]; !dup {
			t.byName[p.Name] = p
		}
	}
	return t, nil
}

// Len returns the number of patterns including the fallback.
func (t *Table) Len() int { return len(t.patterns) }

// At returns the pattern with the given ID.
func (t *Table) At(id int) *Pattern { return &t.patterns[id] }

// Lookup returns the first pattern registered under name.
func (t *Table) Lookup(name string) (*Pattern, bool) {
	p, ok := t.byName[name]
	return p, ok
}

// Match returns the first pattern matching word. It never returns nil for a
// table built by NewTable.
func (t *Table) Match(word uint32) *Pattern {
	for i := range t.patterns {
		if t.patterns[i].Matches(word) {
			return &t.patterns[i]
		}
	}
	return nil
}

// Patterns returns the table entries in match order. The slice must not be
// modified.
func (t *Table) Patterns() []Pattern { return t.patterns }

// Shadow records a pattern that can never match because an earlier entry
// accepts every word it would accept.
type Shadow struct {
	Hidden *Pattern
	By     *Pattern
}

// Shadowed lists entries made unreachable by earlier, more general ones.
func (t *Table) Shadowed() []Shadow {
	var out []Shadow
	for j := range t.patterns {
		b := &t.patterns[j]
		for i := 0; i < j; i++ {
			a := &t.patterns[i]
			// a accepts a superset of b when a's mask is a subset of b's and
			// b's fixed bits agree with a's on a's mask.
			if a.Mask&^b.Mask == 0 && b.Match&a.Mask == a.Match {
				out = append(out, Shadow{Hidden: b, By: a})
				break
			}
		}
	}
	return out
}

// Unclassified is the fallback entry appended to the default table.
var Unclassified = Pattern{Name: UnclassifiedName, Layout: None}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the RV64GCVH + Zb* + Zfh table with a trailing fallback.
func Default() *Table {
	defaultOnce.Do(func() {
		all := make([]Pattern, 0, len(rv64)+len(rvc)+1)
		all = append(all, rv64...)
		all = append(all, rvc...)
		all = append(all, Unclassified)
		t, err := NewTable(all)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}
