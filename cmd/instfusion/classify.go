package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"instfusion/internal/decode"
	"instfusion/internal/disasm"
)

func newClassifyCmd() *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "classify <word>...",
		Short: "Classify instruction words (hex) against the pattern table",
		RunE: func(cmd *cobra.Command, args []string) error {
			dec, err := decode.New(nil)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, a := range args {
				if err := classifyLine(out, dec, a); err != nil {
					return err
				}
			}
			if interactive {
				return classifyREPL(out, dec)
			}
			if len(args) == 0 {
				return fmt.Errorf("no words given (use -i for interactive mode)")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "read words interactively")
	return cmd
}

// parseWord accepts 0x-prefixed or bare hex.
func parseWord(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad word %q: %w", s, err)
	}
	return uint32(v), nil
}

// classifyLine prints: word, table name with operands, layout, key, and
// the reference disassembly.
func classifyLine(w io.Writer, dec *decode.Decoder, arg string) error {
	word, err := parseWord(arg)
	if err != nil {
		return err
	}
	in := dec.Classify(word)
	asm := disasm.DisassembleWords([]uint32{word}, 0)[0].Text
	fmt.Fprintf(w, "%08x  %-40s %-6s %s  ; %s\n",
		word, in.String(), in.Layout(), decode.Identity(in), asm)
	return nil
}

func classifyREPL(out io.Writer, dec *decode.Decoder) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "word> ",
		HistoryFile: filepath.Join(os.TempDir(), "instfusion_history.txt"),
		Stdout:      out,
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		for _, f := range strings.Fields(line) {
			if err := classifyLine(out, dec, f); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
	}
}
