// Package fusion counts how often one classified instruction executes
// immediately after another. Two strategies share the Aggregator contract:
// Batch records block executions and scales per-block adjacency at
// Finalize, Stream wires one counter per static transition at translation
// time and increments it on every dynamic execution.
package fusion

import (
	"errors"
	"fmt"
	"strings"

	"instfusion/internal/decode"
)

// ErrEmptyBlock is returned when a translation carries no instructions.
var ErrEmptyBlock = errors.New("empty block")

// Hook is an instrumentation handle returned at translation. The runtime
// passes it back to Execute each time the instrumented unit runs.
type Hook struct {
	Addr  uint64
	Index int // instruction index within the block, -1 for block hooks

	pair *Counter
	self *Counter
}

// Block reports whether h fires once per block execution.
func (h Hook) Block() bool { return h.Index < 0 }

// Stats summarises a run.
type Stats struct {
	Blocks       int    `json:"blocks"`
	Translations uint64 `json:"translations"`
	Executions   uint64 `json:"executions"`
	TraceLen     int    `json:"trace_len"`
	Insts        uint64 `json:"insts"`
	Unclassified uint64 `json:"unclassified"`
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Blocks += o.Blocks
	s.Translations += o.Translations
	s.Executions += o.Executions
	s.TraceLen += o.TraceLen
	s.Insts += o.Insts
	s.Unclassified += o.Unclassified
}

// Aggregator is driven by a runtime: Translate once per new or re-observed
// block, Execute per hook firing, Finalize once after execution stops.
type Aggregator interface {
	Translate(cpu int, addr uint64, words []uint32) ([]Hook, error)
	Execute(cpu int, h Hook)
	Finalize() *Table
	Stats() Stats
}

// Mode selects the counting strategy.
type Mode uint8

const (
	Batch Mode = iota
	Stream
)

func (m Mode) String() string {
	switch m {
	case Batch:
		return "batch"
	case Stream:
		return "stream"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode accepts "batch" or "stream".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "batch", "block":
		return Batch, nil
	case "stream", "online":
		return Stream, nil
	}
	return 0, fmt.Errorf("fusion: unknown mode %q", s)
}

// Options configures an aggregator.
type Options struct {
	// Operands keys subjects by pattern and operands. When false only the
	// pattern is used.
	Operands bool
}

// DefaultOptions returns the usual options for m: batch counts patterns,
// stream counts full identities.
func DefaultOptions(m Mode) Options {
	return Options{Operands: m == Stream}
}

func (o Options) keyFunc() decode.KeyFunc {
	if o.Operands {
		return decode.Identity
	}
	return decode.PatternKey
}

// New returns an aggregator for mode m.
func New(m Mode, dec *decode.Decoder, opts Options) (Aggregator, error) {
	if dec == nil {
		return nil, errors.New("fusion: nil decoder")
	}
	switch m {
	case Batch:
		return NewBatch(dec, opts), nil
	case Stream:
		return NewStream(dec, opts), nil
	}
	return nil, fmt.Errorf("fusion: unknown mode %v", m)
}
