package fusion

import (
	"fmt"
	"slices"
	"sync"

	"instfusion/internal/decode"
	"instfusion/internal/log"
)

// Block is a translated basic block as seen by the batch aggregator.
type Block struct {
	Addr  uint64
	Words []uint32
	Insts []decode.Inst

	Translations uint64
	Executions   uint64
}

// BatchAggregator records block executions and the order in which blocks
// ran, then derives adjacency in two passes at Finalize.
//
// Intra-block adjacency is scaled by each block's execution count while
// cross-block adjacency adds one per consecutive pair in the execution
// trace. The two contributions use different units and are not
// normalised against each other.
type BatchAggregator struct {
	dec *decode.Decoder
	key decode.KeyFunc

	mu           sync.Mutex
	blocks       map[uint64]*Block
	order        []*Block
	trace        []uint64
	unclassified uint64

	table     *Table
	finalized bool
}

// NewBatch returns a block-scaled aggregator.
func NewBatch(dec *decode.Decoder, opts Options) *BatchAggregator {
	return &BatchAggregator{
		dec:    dec,
		key:    opts.keyFunc(),
		blocks: make(map[uint64]*Block),
		table:  NewTable(opts.Operands),
	}
}

// Translate classifies a newly observed block or bumps the translation
// count of a known one. It returns a single block-level hook.
func (a *BatchAggregator) Translate(cpu int, addr uint64, words []uint32) ([]Hook, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("fusion: translate %#x: %w", addr, ErrEmptyBlock)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if b, ok := a.blocks[addr]; ok {
		b.Translations++
		if !slices.Equal(b.Words, words) {
			log.Warn(log.FusionModule, "retranslated block changed, keeping first decode",
				"cpu", cpu, "addr", fmt.Sprintf("%#x", addr), "old", len(b.Words), "new", len(words))
		}
		return []Hook{{Addr: addr, Index: -1}}, nil
	}

	b := &Block{
		Addr:         addr,
		Words:        slices.Clone(words),
		Insts:        a.dec.ClassifyAll(words),
		Translations: 1,
	}
	for _, in := range b.Insts {
		if in.Unclassified() {
			a.unclassified++
		}
	}
	a.blocks[addr] = b
	a.order = append(a.order, b)
	log.Trace(log.FusionModule, "translate", "cpu", cpu, "addr", fmt.Sprintf("%#x", addr), "insts", len(b.Insts))
	return []Hook{{Addr: addr, Index: -1}}, nil
}

// Execute records one execution of the hooked block. Executing a block
// that was never translated is an invariant violation and panics.
func (a *BatchAggregator) Execute(cpu int, h Hook) {
	a.mu.Lock()
	defer a.mu.Unlock()
	b, ok := a.blocks[h.Addr]
	if !ok {
		panic(fmt.Sprintf("fusion: execute of untranslated block %#x on cpu %d", h.Addr, cpu))
	}
	b.Executions++
	a.trace = append(a.trace, h.Addr)
}

// Blocks returns translated blocks in first-translation order.
func (a *BatchAggregator) Blocks() []*Block {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.order)
}

// Trace returns the recorded block execution order.
func (a *BatchAggregator) Trace() []uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.trace)
}

// Finalize runs the intra-block and cross-block passes once and returns
// the resulting table. Later calls return the same table unchanged.
func (a *BatchAggregator) Finalize() *Table {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.finalized {
		return a.table
	}
	a.finalized = true

	t := a.table
	for _, b := range a.order {
		n := b.Executions
		if n == 0 {
			continue
		}
		var prev *Entry
		for _, in := range b.Insts {
			e := t.Entry(a.key(in), in)
			e.Total.Add(n)
			if prev != nil {
				t.Link(prev, e).Add(n)
			}
			prev = e
		}
	}

	for k := 1; k < len(a.trace); k++ {
		from := a.blocks[a.trace[k-1]]
		to := a.blocks[a.trace[k]]
		tail := from.Insts[len(from.Insts)-1]
		head := to.Insts[0]
		t.Link(t.Entry(a.key(tail), tail), t.Entry(a.key(head), head)).Inc()
	}

	log.Debug(log.FusionModule, "batch finalized", "blocks", len(a.order), "trace", len(a.trace), "subjects", t.Len())
	return t
}

// Stats reports block and trace counters.
func (a *BatchAggregator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := Stats{
		Blocks:       len(a.order),
		TraceLen:     len(a.trace),
		Unclassified: a.unclassified,
	}
	for _, b := range a.order {
		s.Translations += b.Translations
		s.Executions += b.Executions
		s.Insts += b.Executions * uint64(len(b.Insts))
	}
	return s
}
