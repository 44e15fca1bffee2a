package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"instfusion/internal/decode"
	"instfusion/internal/disasm"
	"instfusion/internal/elfx"
	"instfusion/internal/output"
	"instfusion/internal/trace"
)

type disasmConfig struct {
	base     string
	tracePth string
	out      string
	cfg      bool
	maxSteps int
	syms     []string
}

func newDisasmCmd() *cobra.Command {
	var cfg disasmConfig
	cmd := &cobra.Command{
		Use:   "disasm <code.bin|prog.elf>",
		Short: "List an RV64 code image with classification and branch annotations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDisasm(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, args[0])
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.base, "base", "0", "load address of a raw image (ELF files use their segment address)")
	f.StringVar(&cfg.tracePth, "trace", "", "annotate per-address execution counts from this trace")
	f.StringVarP(&cfg.out, "out", "o", "", "write asm/<name>.txt (and cfg/<name>.dot with --cfg) instead of stdout")
	f.BoolVar(&cfg.cfg, "cfg", false, "also write the control flow graph as DOT")
	f.IntVar(&cfg.maxSteps, "max-steps", 0, "max instructions to decode (0 = default cap)")
	f.StringSliceVar(&cfg.syms, "sym", nil, "symbol as addr=name (repeatable)")
	return cmd
}

func parseAddr(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}
	return v, nil
}

func parseSyms(specs []string) (map[uint64]string, error) {
	syms := make(map[uint64]string, len(specs))
	for _, s := range specs {
		addr, name, ok := strings.Cut(s, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("bad symbol %q (want addr=name)", s)
		}
		a, err := parseAddr(addr)
		if err != nil {
			return nil, err
		}
		syms[a] = name
	}
	return syms, nil
}

// image is a code region loaded from a raw binary or an ELF executable.
type image struct {
	base uint64
	data []byte
	syms map[uint64]string
}

// loadImage reads path. ELF files contribute their lowest executable
// segment and function symbols; anything else is raw code loaded at base.
func loadImage(path, base string) (image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return image{}, fmt.Errorf("read: %w", err)
	}
	if !elfx.IsELF(data) {
		addr, err := parseAddr(base)
		if err != nil {
			return image{}, err
		}
		return image{base: addr, data: data, syms: map[uint64]string{}}, nil
	}

	ef, err := elfx.Open(path)
	if err != nil {
		return image{}, err
	}
	defer ef.Close()
	addr, code, err := ef.Code()
	if err != nil {
		return image{}, err
	}
	return image{base: addr, data: code, syms: ef.FuncSymbols()}, nil
}

func runDisasm(stdout, stderr io.Writer, cfg disasmConfig, path string) error {
	img, err := loadImage(path, cfg.base)
	if err != nil {
		return err
	}
	syms, err := parseSyms(cfg.syms)
	if err != nil {
		return err
	}
	for addr, name := range syms {
		img.syms[addr] = name
	}

	var lookup disasm.SymbolLookup
	if len(img.syms) > 0 {
		lookup = disasm.PlaceholderLookup(img.syms)
	}
	insts := disasm.Disassemble(img.data, disasm.Options{BaseAddr: img.base, MaxSteps: cfg.maxSteps, Symbols: lookup})

	dec, err := decode.New(nil)
	if err != nil {
		return err
	}
	anns := []disasm.Annotator{disasm.BranchAnnotator(lookup), disasm.ClassAnnotator(dec)}
	if cfg.tracePth != "" {
		counts, err := addrCounts(cfg.tracePth)
		if err != nil {
			return err
		}
		anns = append(anns, disasm.CountAnnotator(counts))
	}
	ann := disasm.Combine(anns...)

	if cfg.out == "" {
		_, err := io.WriteString(stdout, disasm.Format(insts, lookup, ann))
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := output.WriteASM(cfg.out, name, insts, lookup, ann); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "wrote %s (%d instructions)\n", filepath.Join(cfg.out, "asm", name+".txt"), len(insts))
	if cfg.cfg {
		g := disasm.BuildCFG(name, insts)
		if err := output.WriteCFGDOT(cfg.out, g, ann); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "wrote %s (%d blocks)\n", filepath.Join(cfg.out, "cfg", name+".dot"), len(g.Blocks))
	}
	return nil
}

// addrCounts folds a trace into per-instruction-address execution counts.
// A block's latest translation decides which addresses an exec covers.
func addrCounts(path string) (map[uint64]uint64, error) {
	r, err := trace.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	blocks := make(map[uint64][]uint64)
	counts := make(map[uint64]uint64)
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return counts, nil
		}
		if err != nil {
			return nil, err
		}
		switch ev.Op {
		case trace.OpTranslate:
			words, err := ev.Block()
			if err != nil {
				return nil, err
			}
			addrs := make([]uint64, len(words))
			pc := ev.PC
			for i, w := range words {
				addrs[i] = pc
				pc += uint64(disasm.Length(uint16(w)))
			}
			blocks[ev.PC] = addrs
		case trace.OpExec:
			for _, a := range blocks[ev.PC] {
				counts[a]++
			}
		case trace.OpExit:
			return counts, nil
		}
	}
}
