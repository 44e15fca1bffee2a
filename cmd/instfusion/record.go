package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"instfusion/internal/disasm"
	"instfusion/internal/trace"
)

func newRecordCmd() *cobra.Command {
	var (
		base   string
		out    string
		repeat int
		cpu    int
		hexOut bool
	)
	cmd := &cobra.Command{
		Use:   "record <code.bin|prog.elf>",
		Short: "Synthesize a trace from a raw code image, one translation per basic block",
		Long: `record splits the image into basic blocks, announces each block once and
then executes every block in address order --repeat times. The result is a
trace that analyze can replay.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			img, err := loadImage(args[0], base)
			if err != nil {
				return err
			}
			n, err := recordImage(out, img.data, img.base, cpu, repeat, hexOut)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d blocks, %d execs)\n", out, n, n*repeat)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "0", "load address of a raw image")
	cmd.Flags().StringVarP(&out, "out", "o", "", "trace file (.jsonl or .jsonl.gz)")
	cmd.Flags().IntVar(&repeat, "repeat", 1, "executions per block")
	cmd.Flags().IntVar(&cpu, "cpu", 0, "cpu index recorded on every event")
	cmd.Flags().BoolVar(&hexOut, "hex", false, "record block code as little-endian hex bytes instead of words")
	return cmd
}

// recordImage writes the synthetic trace for data loaded at base and
// returns the number of blocks. With hexCode set, translations carry the
// block bytes in the code field.
func recordImage(path string, data []byte, base uint64, cpu, repeat int, hexCode bool) (int, error) {
	insts := disasm.Disassemble(data, disasm.Options{BaseAddr: base})
	if len(insts) == 0 {
		return 0, fmt.Errorf("no instructions in image")
	}
	cfg := disasm.BuildCFG("image", insts)

	w, err := trace.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}

	type block struct {
		pc    uint64
		words []uint32
	}
	blocks := make([]block, 0, len(cfg.Blocks))
	for _, bb := range cfg.Blocks {
		b := block{pc: insts[bb.Start].Addr}
		for _, in := range insts[bb.Start:bb.End] {
			b.words = append(b.words, in.Raw)
		}
		blocks = append(blocks, b)
	}

	for _, b := range blocks {
		ev := trace.Event{Op: trace.OpTranslate, CPU: cpu, PC: b.pc, Words: b.words}
		if hexCode {
			ev.Words = nil
			ev.Code = hex.EncodeToString(disasm.Join(b.words))
		}
		if err := w.Write(ev); err != nil {
			w.Close()
			return 0, err
		}
	}
	for i := 0; i < repeat; i++ {
		for _, b := range blocks {
			if err := w.Exec(cpu, b.pc); err != nil {
				w.Close()
				return 0, err
			}
		}
	}
	if err := w.Exit(); err != nil {
		w.Close()
		return 0, err
	}
	return len(blocks), w.Close()
}
