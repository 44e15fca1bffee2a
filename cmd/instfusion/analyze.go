package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"instfusion/internal/decode"
	"instfusion/internal/filter"
	"instfusion/internal/fusion"
	"instfusion/internal/host"
	"instfusion/internal/log"
	"instfusion/internal/output"
	"instfusion/internal/render"
	"instfusion/internal/report"
	"instfusion/internal/telemetry"
	"instfusion/internal/trace"
)

type analyzeConfig struct {
	mode      string
	operands  bool
	filter    string
	top       int
	minCount  uint64
	sort      bool
	stats     bool
	out       string
	title     string
	svg       bool
	jobs      int
	telemetry string
}

func newAnalyzeCmd() *cobra.Command {
	var cfg analyzeConfig
	cmd := &cobra.Command{
		Use:   "analyze <trace.jsonl[.gz]>...",
		Short: "Replay execution traces and report instruction pair counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), cmd, cfg, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.mode, "mode", "batch", "aggregation mode: batch or stream")
	f.BoolVar(&cfg.operands, "operands", false, "key instructions by operands (default: on in stream mode)")
	f.StringVar(&cfg.filter, "filter", "", "JavaScript predicate over report items, e.g. 'pair && count > 10'")
	f.IntVar(&cfg.top, "top", 0, "max lines per section (0 = all)")
	f.Uint64Var(&cfg.minCount, "min-count", 0, "drop counts below this")
	f.BoolVar(&cfg.sort, "sort", false, "sort by count instead of first-seen order")
	f.BoolVar(&cfg.stats, "stats", true, "print run statistics header")
	f.StringVarP(&cfg.out, "out", "o", "", "write report artifacts to this directory")
	f.StringVar(&cfg.title, "title", "instfusion", "title for graphs and HTML")
	f.BoolVar(&cfg.svg, "svg", false, "render DOT artifacts to SVG with graphviz")
	f.IntVarP(&cfg.jobs, "jobs", "j", 4, "traces replayed concurrently")
	f.StringVar(&cfg.telemetry, "telemetry", "", "OTLP/HTTP endpoint for phase spans (e.g. localhost:4318)")
	return cmd
}

// run is one replayed trace.
type run struct {
	path  string
	table *fusion.Table
	stats fusion.Stats
	agg   fusion.Aggregator
}

func runAnalyze(ctx context.Context, cmd *cobra.Command, cfg analyzeConfig, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	mode, err := fusion.ParseMode(cfg.mode)
	if err != nil {
		return err
	}
	fopts := fusion.DefaultOptions(mode)
	if cmd.Flags().Changed("operands") {
		fopts.Operands = cfg.operands
	}

	ropts := report.Options{Sort: cfg.sort, Top: cfg.top, MinCount: cfg.minCount}
	if cfg.filter != "" {
		flt, err := filter.Compile(cfg.filter)
		if err != nil {
			return err
		}
		ropts.Keep = flt.Keep
	}

	tel, err := telemetry.Init(ctx, telemetry.Config{Endpoint: cfg.telemetry, Insecure: true})
	if err != nil {
		return err
	}
	defer tel.Shutdown(context.Background())

	ctx, end := tel.Phase(ctx, "analyze",
		attribute.String("mode", mode.String()),
		attribute.Bool("operands", fopts.Operands),
		attribute.Int("traces", len(paths)))
	dec, err := decode.New(nil)
	if err != nil {
		end(err)
		return err
	}
	table, stats, runs, err := replayAll(ctx, tel, dec, mode, fopts, paths, cfg.jobs)
	end(err)
	if err != nil {
		return err
	}

	if n, last := dec.Unclassified(); n > 0 {
		log.Warn(log.CLIModule, "unclassified instructions", "count", n, "last", fmt.Sprintf("%#08x", last))
	}
	log.Info(log.CLIModule, "replayed", "traces", len(paths), "subjects", table.Len(),
		"insts", stats.Insts, "executions", stats.Executions)

	if cfg.stats {
		ropts.Stats = &stats
	}
	if err := report.Text(stdout, table, ropts); err != nil {
		return err
	}

	if cfg.out == "" {
		return nil
	}
	_, endOut := tel.Phase(ctx, "write")
	err = writeArtifacts(stderr, cfg, table, stats, ropts, runs)
	endOut(err)
	return err
}

// replayAll replays each trace into its own aggregator and merges the
// finalized tables in argument order.
func replayAll(ctx context.Context, tel *telemetry.Provider, dec *decode.Decoder, mode fusion.Mode, fopts fusion.Options, paths []string, jobs int) (*fusion.Table, fusion.Stats, []*run, error) {
	runs := make([]*run, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, path := range paths {
		g.Go(func() error {
			r, err := replayOne(gctx, tel, dec, mode, fopts, path)
			if err != nil {
				return err
			}
			runs[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fusion.Stats{}, nil, err
	}

	merged := fusion.NewTable(fopts.Operands)
	var stats fusion.Stats
	for _, r := range runs {
		if err := merged.Merge(r.table); err != nil {
			return nil, fusion.Stats{}, nil, err
		}
		stats.Add(r.stats)
	}
	return merged, stats, runs, nil
}

func replayOne(ctx context.Context, tel *telemetry.Provider, dec *decode.Decoder, mode fusion.Mode, fopts fusion.Options, path string) (res *run, err error) {
	ctx, end := tel.Phase(ctx, "replay", attribute.String("trace", path))
	defer func() { end(err) }()

	src, err := trace.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	agg, err := fusion.New(mode, dec, fopts)
	if err != nil {
		return nil, err
	}
	h := host.New(agg)
	table, err := h.Run(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c := h.Counts()
	log.Debug(log.CLIModule, "trace replayed", "path", path,
		"translations", c.Translations, "execs", c.Execs)
	return &run{path: path, table: table, stats: agg.Stats(), agg: agg}, nil
}

func writeArtifacts(stderr io.Writer, cfg analyzeConfig, t *fusion.Table, stats fusion.Stats, ropts report.Options, runs []*run) error {
	dir := cfg.out
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	type artifact struct {
		name  string
		write func() error
	}
	arts := []artifact{
		{output.ReportFile, func() error { return output.WriteReport(dir, t, ropts) }},
		{output.TreeFile, func() error { return output.WriteTree(dir, t, ropts) }},
		{output.PairsDOT, func() error { return output.WritePairsDOT(dir, t, ropts, cfg.title) }},
		{output.GraphDOT, func() error { return output.WriteGraphDOT(dir, t, ropts, cfg.title) }},
		{output.ChartHTML, func() error { return output.WriteChart(dir, t, ropts, cfg.title) }},
		{output.TableJSON, func() error { return output.WriteTableJSON(dir, t, stats) }},
	}
	if len(runs) == 1 {
		if b, ok := runs[0].agg.(*fusion.BatchAggregator); ok {
			arts = append(arts, artifact{output.BlocksDOT, func() error {
				return output.WriteBlocksDOT(dir, b.Blocks(), b.Trace(), cfg.title+" blocks")
			}})
		}
	}

	var links []render.Link
	for _, a := range arts {
		if err := a.write(); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "wrote %s\n", filepath.Join(dir, a.name))
		links = append(links, render.Link{Href: a.name, Text: a.name})
	}

	if cfg.svg {
		for _, a := range arts {
			if !strings.HasSuffix(a.name, ".dot") {
				continue
			}
			dot := filepath.Join(dir, a.name)
			svg := strings.TrimSuffix(dot, ".dot") + ".svg"
			if err := runDot(dot, svg, "svg"); err != nil {
				fmt.Fprintf(stderr, "warning: %s SVG failed: %v (install graphviz or drop --svg)\n", a.name, err)
				continue
			}
			fmt.Fprintf(stderr, "wrote %s\n", svg)
			links = append(links, render.Link{Href: filepath.Base(svg), Text: filepath.Base(svg)})
		}
	}

	if err := output.WriteIndexHTML(dir, t, ropts, stats, cfg.title, links); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "wrote %s\n", filepath.Join(dir, output.IndexHTML))
	return nil
}

func runDot(dotPath, outPath, format string) error {
	cmd := exec.Command("dot", "-T"+format, "-o", outPath, dotPath)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
