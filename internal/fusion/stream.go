package fusion

import (
	"fmt"
	"sync"
	"sync/atomic"

	"instfusion/internal/decode"
	"instfusion/internal/log"
)

// StreamAggregator wires one counter per static (previous, current)
// transition at translation time. Execute only performs atomic increments.
//
// The previous-identity slot follows translation order, not execution
// order, so the counts are exact for code that is translated in the order
// it runs. When a block is retranslated with different words the new
// decode gets fresh hooks; counters wired for the old decode keep what
// they already counted.
type StreamAggregator struct {
	dec   *decode.Decoder
	key   decode.KeyFunc
	cache *blockCache

	mu           sync.Mutex
	table        *Table
	last         *Entry
	translations uint64
	unclassified uint64

	executions atomic.Uint64
	insts      atomic.Uint64
}

// NewStream returns an online aggregator.
func NewStream(dec *decode.Decoder, opts Options) *StreamAggregator {
	return &StreamAggregator{
		dec:   dec,
		key:   opts.keyFunc(),
		cache: newBlockCache(),
		table: NewTable(opts.Operands),
	}
}

// Translate returns one block hook followed by one hook per instruction,
// in block order.
func (a *StreamAggregator) Translate(cpu int, addr uint64, words []uint32) ([]Hook, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("fusion: translate %#x: %w", addr, ErrEmptyBlock)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	ent := a.cache.Get(addr, words)
	fresh := ent == nil
	var insts []decode.Inst
	if fresh {
		insts = a.dec.ClassifyAll(words)
		if a.cache.Put(addr, words, insts) {
			log.Warn(log.FusionModule, "retranslated block changed, rewiring",
				"cpu", cpu, "addr", fmt.Sprintf("%#x", addr))
		}
	} else {
		insts = ent.Insts
	}

	a.translations++
	hooks := make([]Hook, 0, len(insts)+1)
	hooks = append(hooks, Hook{Addr: addr, Index: -1})
	for i, in := range insts {
		if fresh && in.Unclassified() {
			a.unclassified++
		}
		e := a.table.Entry(a.key(in), in)
		h := Hook{Addr: addr, Index: i, self: &e.Total}
		if a.last != nil {
			h.pair = a.table.Link(a.last, e)
		}
		a.last = e
		hooks = append(hooks, h)
	}
	log.Trace(log.FusionModule, "translate", "cpu", cpu, "addr", fmt.Sprintf("%#x", addr), "insts", len(insts), "cached", !fresh)
	return hooks, nil
}

// Execute bumps the counters bound to h. Block hooks only count block
// executions.
func (a *StreamAggregator) Execute(cpu int, h Hook) {
	if h.Block() {
		a.executions.Add(1)
		return
	}
	if h.self == nil {
		panic(fmt.Sprintf("fusion: execute of unwired hook %#x[%d] on cpu %d", h.Addr, h.Index, cpu))
	}
	a.insts.Add(1)
	h.self.Inc()
	if h.pair != nil {
		h.pair.Inc()
	}
}

// Finalize returns the counter table. Counts are already final.
func (a *StreamAggregator) Finalize() *Table {
	a.mu.Lock()
	defer a.mu.Unlock()
	log.Debug(log.FusionModule, "stream finalized", "subjects", a.table.Len())
	return a.table
}

// Stats reports translation and execution counters.
func (a *StreamAggregator) Stats() Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Stats{
		Blocks:       a.cache.Len(),
		Translations: a.translations,
		Executions:   a.executions.Load(),
		TraceLen:     int(a.executions.Load()),
		Insts:        a.insts.Load(),
		Unclassified: a.unclassified,
	}
}
