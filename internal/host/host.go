// Package host replays recorded trace events into an aggregator the way an
// instrumenting emulator would drive it.
package host

import (
	"context"
	"errors"
	"fmt"
	"io"

	"instfusion/internal/fusion"
	"instfusion/internal/log"
	"instfusion/internal/trace"
)

// ErrUntranslated is returned for an exec event whose pc was never
// translated.
var ErrUntranslated = errors.New("exec of untranslated block")

// Source yields trace events until io.EOF.
type Source interface {
	Next() (trace.Event, error)
}

// Counts tallies replayed events.
type Counts struct {
	Translations uint64
	Execs        uint64
	Hooks        uint64
}

// Host owns the hook set of one run.
type Host struct {
	agg    fusion.Aggregator
	hooks  map[uint64][]fusion.Hook
	counts Counts
	exited bool
}

// New returns a Host driving agg.
func New(agg fusion.Aggregator) *Host {
	return &Host{agg: agg, hooks: make(map[uint64][]fusion.Hook)}
}

// Aggregator returns the driven aggregator.
func (h *Host) Aggregator() fusion.Aggregator { return h.agg }

// Counts returns event tallies so far.
func (h *Host) Counts() Counts { return h.counts }

// Handle applies one event. Translations replace the hook set of their
// address. An exec fires the block's hooks in order.
func (h *Host) Handle(ev trace.Event) error {
	switch ev.Op {
	case trace.OpTranslate:
		words, err := ev.Block()
		if err != nil {
			return err
		}
		hooks, err := h.agg.Translate(ev.CPU, ev.PC, words)
		if err != nil {
			return err
		}
		h.hooks[ev.PC] = hooks
		h.counts.Translations++
	case trace.OpExec:
		hooks, ok := h.hooks[ev.PC]
		if !ok {
			return fmt.Errorf("host: pc %#x cpu %d: %w", ev.PC, ev.CPU, ErrUntranslated)
		}
		for _, hk := range hooks {
			h.agg.Execute(ev.CPU, hk)
		}
		h.counts.Execs++
		h.counts.Hooks += uint64(len(hooks))
	case trace.OpExit:
		h.exited = true
	default:
		return fmt.Errorf("host: unknown op %q", ev.Op)
	}
	return nil
}

// Run replays src until io.EOF or an exit event, then finalizes the
// aggregator. ctx is checked between events.
func (h *Host) Run(ctx context.Context, src Source) (*fusion.Table, error) {
	for !h.exited {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ev, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := h.Handle(ev); err != nil {
			return nil, err
		}
	}
	t := h.agg.Finalize()
	log.Debug(log.HostModule, "replay done",
		"translations", h.counts.Translations, "execs", h.counts.Execs,
		"hooks", h.counts.Hooks, "exit", h.exited)
	return t, nil
}

// Replay is a convenience wrapper: New(agg).Run(ctx, src).
func Replay(ctx context.Context, agg fusion.Aggregator, src Source) (*fusion.Table, error) {
	return New(agg).Run(ctx, src)
}
