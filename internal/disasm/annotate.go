package disasm

import (
	"fmt"

	"instfusion/internal/decode"
)

// Annotator returns an optional inline comment for an instruction.
// Empty string means no annotation. Receives the full Inst for access
// to both raw encoding and address.
type Annotator func(inst Inst) string

// ClassAnnotator annotates every instruction with its fusion-table
// classification, e.g. "add$rd@10,$rs1@10,$rs2@11".
func ClassAnnotator(dec *decode.Decoder) Annotator {
	return func(inst Inst) string {
		return dec.Classify(inst.Raw).String()
	}
}

// BranchAnnotator annotates control transfers with their target.
func BranchAnnotator(lookup SymbolLookup) Annotator {
	return func(inst Inst) string {
		bi := DecodeBranch(inst.Raw, inst.Addr)
		if bi == nil {
			return ""
		}
		switch {
		case bi.IsRet:
			return "return"
		case bi.Indirect && bi.Link:
			return "call (indirect)"
		case bi.Indirect:
			return "jump (indirect)"
		}
		target := fmt.Sprintf("0x%x", bi.Target)
		if lookup != nil {
			if name, ok := lookup(bi.Target); ok {
				target = fmt.Sprintf("<%s>", name)
			}
		}
		if bi.Link {
			return "call " + target
		}
		return "-> " + target
	}
}

// CountAnnotator annotates instructions whose address appears in counts
// with their execution count.
func CountAnnotator(counts map[uint64]uint64) Annotator {
	return func(inst Inst) string {
		if n, ok := counts[inst.Addr]; ok {
			return fmt.Sprintf("x%d", n)
		}
		return ""
	}
}

// Combine joins the non-empty results of several annotators with ", ".
// Format stops at the first non-empty annotator, so callers that want
// more than one comment per line wrap them here.
func Combine(anns ...Annotator) Annotator {
	return func(inst Inst) string {
		var out string
		for _, ann := range anns {
			s := ann(inst)
			if s == "" {
				continue
			}
			if out != "" {
				out += ", "
			}
			out += s
		}
		return out
	}
}
