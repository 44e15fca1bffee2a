package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"instfusion/internal/isa"
)

type patternJSON struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Mask   string `json:"mask"`
	Match  string `json:"match"`
	Layout string `json:"layout"`
}

func newTableCmd() *cobra.Command {
	var (
		asJSON   bool
		shadowed bool
		grep     string
	)
	cmd := &cobra.Command{
		Use:   "table [name]...",
		Short: "Dump the instruction pattern table",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := isa.Default()
			out := cmd.OutOrStdout()
			if shadowed {
				return dumpShadowed(out, t)
			}
			pats := t.Patterns()
			if len(args) > 0 {
				pats = pats[:0:0]
				for _, name := range args {
					p, ok := t.Lookup(name)
					if !ok {
						return fmt.Errorf("no pattern named %q", name)
					}
					pats = append(pats, *p)
				}
			}
			return dumpTable(out, pats, grep, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON")
	cmd.Flags().BoolVar(&shadowed, "shadowed", false, "list entries unreachable behind earlier ones")
	cmd.Flags().StringVar(&grep, "grep", "", "only names containing this substring")
	return cmd
}

func dumpTable(w io.Writer, pats []isa.Pattern, grep string, asJSON bool) error {
	var rows []patternJSON
	for _, p := range pats {
		if grep != "" && !strings.Contains(p.Name, grep) {
			continue
		}
		rows = append(rows, patternJSON{
			ID:     p.ID,
			Name:   p.Name,
			Mask:   fmt.Sprintf("%08x", p.Mask),
			Match:  fmt.Sprintf("%08x", p.Match),
			Layout: p.Layout.String(),
		})
	}
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%4d  %-22s mask=%s match=%s  %s\n", r.ID, r.Name, r.Mask, r.Match, r.Layout)
	}
	return nil
}

func dumpShadowed(w io.Writer, t *isa.Table) error {
	sh := t.Shadowed()
	for _, s := range sh {
		fmt.Fprintf(w, "%4d %-22s shadowed by %4d %s\n", s.Hidden.ID, s.Hidden.Name, s.By.ID, s.By.Name)
	}
	fmt.Fprintf(w, "# %d of %d entries shadowed\n", len(sh), t.Len())
	return nil
}
