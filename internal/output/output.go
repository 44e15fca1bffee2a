// Package output writes fusion analysis results to files.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"instfusion/internal/disasm"
	"instfusion/internal/fusion"
	"instfusion/internal/render"
	"instfusion/internal/report"
)

// Artifact file names under the output directory.
const (
	ReportFile = "report.txt"
	TreeFile   = "tree.txt"
	PairsDOT   = "pairs.dot"
	GraphDOT   = "graph.dot"
	BlocksDOT  = "blocks.dot"
	ChartHTML  = "pairs.html"
	IndexHTML  = "index.html"
	TableJSON  = "table.json"
)

// WriteReport writes the text report to report.txt.
func WriteReport(dir string, t *fusion.Table, opts report.Options) error {
	return writeFile(filepath.Join(dir, ReportFile), func(w io.Writer) error {
		return report.Text(w, t, opts)
	})
}

// WriteTree writes the subject/follower tree to tree.txt.
func WriteTree(dir string, t *fusion.Table, opts report.Options) error {
	return writeString(filepath.Join(dir, TreeFile), report.Tree(t, opts))
}

// WritePairsDOT writes the themed pair graph to pairs.dot.
func WritePairsDOT(dir string, t *fusion.Table, opts report.Options, title string) error {
	return writeString(filepath.Join(dir, PairsDOT), report.PairsDOT(t, opts, title))
}

// WriteGraphDOT writes the plain lattice pair graph to graph.dot.
func WriteGraphDOT(dir string, t *fusion.Table, opts report.Options, title string) error {
	return writeString(filepath.Join(dir, GraphDOT), report.GraphDOT(t, opts, title))
}

// WriteBlocksDOT writes the executed block transition graph to blocks.dot.
func WriteBlocksDOT(dir string, blocks []*fusion.Block, trace []uint64, title string) error {
	return writeString(filepath.Join(dir, BlocksDOT), report.BlockDOT(blocks, trace, title))
}

// WriteChart writes the interactive pair chart to pairs.html.
func WriteChart(dir string, t *fusion.Table, opts report.Options, title string) error {
	return writeFile(filepath.Join(dir, ChartHTML), func(w io.Writer) error {
		return report.Chart(w, t, opts, title)
	})
}

// WriteIndexHTML writes index.html summarizing the run and linking the
// other artifacts.
func WriteIndexHTML(dir string, t *fusion.Table, opts report.Options, stats fusion.Stats, title string, links []render.Link) error {
	ranked := opts
	ranked.Sort = true
	var edges []render.EdgeRecord
	for _, it := range report.Hottest(t, opts) {
		edges = append(edges, render.EdgeRecord{
			From:  it.Subject.Key.String(),
			To:    it.Follower.Key.String(),
			Count: it.Count,
		})
	}
	s := render.Summary{
		Rows: []render.SummaryRow{
			{Label: "Blocks", Value: fmt.Sprint(stats.Blocks)},
			{Label: "Translations", Value: fmt.Sprint(stats.Translations)},
			{Label: "Block executions", Value: fmt.Sprint(stats.Executions)},
			{Label: "Instructions", Value: fmt.Sprint(stats.Insts)},
			{Label: "Unclassified", Value: fmt.Sprint(stats.Unclassified)},
			{Label: "Subjects", Value: fmt.Sprint(t.Len())},
			{Label: "Keyed by operands", Value: fmt.Sprint(t.Operands())},
		},
		Nodes: report.Nodes(t, ranked),
		Edges: edges,
		Links: links,
		Limit: opts.Top,
	}
	return writeFile(filepath.Join(dir, IndexHTML), func(w io.Writer) error {
		render.WriteIndexHTML(w, s, title, render.NASA)
		return nil
	})
}

// FollowerJSON is one adjacency of a TableEntryJSON.
type FollowerJSON struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count uint64 `json:"count"`
}

// TableEntryJSON is one subject of the exported table.
type TableEntryJSON struct {
	Key       string         `json:"key"`
	Name      string         `json:"name"`
	Label     string         `json:"label"`
	Total     uint64         `json:"total"`
	Followers []FollowerJSON `json:"followers,omitempty"`
}

// TableJSONDoc is the table.json document.
type TableJSONDoc struct {
	Operands bool             `json:"operands"`
	Stats    fusion.Stats     `json:"stats"`
	Entries  []TableEntryJSON `json:"entries"`
}

// ExportTable converts t into its JSON form, entries and followers in
// table order. Zero counts are kept.
func ExportTable(t *fusion.Table, stats fusion.Stats) TableJSONDoc {
	doc := TableJSONDoc{Operands: t.Operands(), Stats: stats, Entries: []TableEntryJSON{}}
	for _, e := range t.Entries() {
		ent := TableEntryJSON{
			Key:   e.Key.String(),
			Name:  e.Inst.Name(),
			Label: e.Label(),
			Total: e.Total.Load(),
		}
		for _, k := range e.Followers() {
			f, ok := t.Lookup(k)
			if !ok {
				continue
			}
			ent.Followers = append(ent.Followers, FollowerJSON{
				Key:   k.String(),
				Label: f.Label(),
				Count: e.Follower(k).Load(),
			})
		}
		doc.Entries = append(doc.Entries, ent)
	}
	return doc
}

// WriteTableJSON writes the full table to table.json.
func WriteTableJSON(dir string, t *fusion.Table, stats fusion.Stats) error {
	return writeJSON(filepath.Join(dir, TableJSON), ExportTable(t, stats))
}

// WriteASM writes disassembled instructions to asm/<name>.txt.
// name may contain path separators for directory grouping.
func WriteASM(dir string, name string, insts []disasm.Inst, lookup disasm.SymbolLookup, annotators ...disasm.Annotator) error {
	path := filepath.Join(dir, "asm", name+".txt")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir asm: %w", err)
	}

	text := disasm.Format(insts, lookup, annotators...)
	return os.WriteFile(path, []byte(text), 0644)
}

// WriteCFGDOT writes the control flow graph of one region to cfg/<name>.dot.
func WriteCFGDOT(dir string, cfg disasm.FuncCFG, ann disasm.Annotator) error {
	path := filepath.Join(dir, "cfg", cfg.Name+".dot")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("output: mkdir cfg: %w", err)
	}
	return writeString(path, render.CFGDOT(cfg, render.NASA, ann))
}

func writeString(path, s string) error {
	if err := os.WriteFile(path, []byte(s), 0644); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("output: flush %s: %w", path, err)
	}
	return f.Close()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("output: encode %s: %w", path, err)
	}
	return nil
}
