// Package filter evaluates JavaScript predicates over report items.
//
// An expression sees these variables:
//
//	name      subject mnemonic
//	subject   subject label (mnemonic, with operands when keyed by operands)
//	follower  follower label, "" for totals
//	fname     follower mnemonic, "" for totals
//	count     the count being reported
//	total     subject execution total
//	pair      true for adjacency counts
//	compressed  true when the subject is an RVC instruction
//
// Example: `pair && name == "lui" && fname == "addi" && count > 100`.
package filter

import (
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"instfusion/internal/log"
	"instfusion/internal/report"
)

// Filter is a compiled predicate. It is safe for concurrent use; calls are
// serialised on one VM.
type Filter struct {
	src  string
	prog *goja.Program

	mu sync.Mutex
	vm *goja.Runtime
}

// Compile parses expr as a JavaScript expression.
func Compile(expr string) (*Filter, error) {
	prog, err := goja.Compile("filter", "("+expr+")", true)
	if err != nil {
		return nil, fmt.Errorf("filter: compile %q: %w", expr, err)
	}
	return &Filter{src: expr, prog: prog, vm: goja.New()}, nil
}

// String returns the source expression.
func (f *Filter) String() string { return f.src }

// Eval evaluates the predicate for it.
func (f *Filter) Eval(it report.Item) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s := it.Subject
	vars := map[string]any{
		"name":       s.Inst.Name(),
		"subject":    s.Label(),
		"follower":   "",
		"fname":      "",
		"count":      it.Count,
		"total":      s.Total.Load(),
		"pair":       it.Pair(),
		"compressed": s.Inst.Layout().Compressed(),
	}
	if it.Follower != nil {
		vars["follower"] = it.Follower.Label()
		vars["fname"] = it.Follower.Inst.Name()
	}
	for k, v := range vars {
		if err := f.vm.Set(k, v); err != nil {
			return false, fmt.Errorf("filter: set %s: %w", k, err)
		}
	}

	v, err := f.vm.RunProgram(f.prog)
	if err != nil {
		return false, fmt.Errorf("filter: eval %q: %w", f.src, err)
	}
	return v.ToBoolean(), nil
}

// Keep is a report.Options.Keep adapter. Evaluation errors drop the item
// and are logged.
func (f *Filter) Keep(it report.Item) bool {
	ok, err := f.Eval(it)
	if err != nil {
		log.Warn(log.ReportModule, "filter error", "item", it.String(), "err", err)
		return false
	}
	return ok
}
