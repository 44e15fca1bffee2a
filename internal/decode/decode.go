// Package decode classifies raw RISC-V instruction words against an isa
// pattern table and derives fusion identity keys from the result.
package decode

import (
	"fmt"
	"sync/atomic"

	"instfusion/internal/isa"
)

// Inst is a classified instruction: the matched pattern plus the operand
// fields its layout carries.
type Inst struct {
	Pattern *isa.Pattern
	isa.Operands
}

// Name returns the pattern mnemonic.
func (in Inst) Name() string { return in.Pattern.Name }

// Layout returns the operand layout of the matched pattern.
func (in Inst) Layout() isa.Layout { return in.Pattern.Layout }

// String renders the mnemonic with its layout's operand list, e.g.
// "add$rd@10,$rs1@10,$rs2@11".
func (in Inst) String() string {
	return in.Pattern.Layout.Format(in.Pattern.Name, in.Operands)
}

// Unclassified reports whether the word fell through to the fallback entry.
func (in Inst) Unclassified() bool { return in.Pattern.Fallback() }

// Decoder classifies instruction words. It is safe for concurrent use.
type Decoder struct {
	table *isa.Table

	unclassified     atomic.Uint64
	lastUnclassified atomic.Uint32
}

// New returns a decoder over table. A nil table selects isa.Default.
func New(table *isa.Table) (*Decoder, error) {
	if table == nil {
		table = isa.Default()
	}
	if table.Len() == 0 || !table.At(table.Len()-1).Fallback() {
		return nil, fmt.Errorf("decode: %w", isa.ErrNoFallback)
	}
	return &Decoder{table: table}, nil
}

// Table returns the pattern table the decoder scans.
func (d *Decoder) Table() *isa.Table { return d.table }

// Classify finds the first pattern matching word and extracts its operands.
// It always succeeds: words no rule recognises land on the fallback.
func (d *Decoder) Classify(word uint32) Inst {
	p := d.table.Match(word)
	if p.Fallback() {
		d.unclassified.Add(1)
		d.lastUnclassified.Store(word)
	}
	return Inst{Pattern: p, Operands: p.Layout.Extract(word)}
}

// ClassifyAll classifies each word in order.
func (d *Decoder) ClassifyAll(words []uint32) []Inst {
	out := make([]Inst, len(words))
	for i, w := range words {
		out[i] = d.Classify(w)
	}
	return out
}

// Unclassified returns how many words hit the fallback and the most recent
// such word.
func (d *Decoder) Unclassified() (count uint64, last uint32) {
	return d.unclassified.Load(), d.lastUnclassified.Load()
}
