package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"instfusion/internal/fusion"
)

const defaultChartTop = 30

// Chart writes an HTML page with a bar chart of the hottest pairs and a
// force graph of the same pairs.
func Chart(w io.Writer, t *fusion.Table, o Options, title string) error {
	if o.Top <= 0 {
		o.Top = defaultChartTop
	}
	hot := Hottest(t, o)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("top %d adjacent pairs", len(hot)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	labels := make([]string, len(hot))
	data := make([]opts.BarData, len(hot))
	for i, it := range hot {
		labels[i] = fmt.Sprintf("%s → %s", it.Subject.Label(), it.Follower.Label())
		data[i] = opts.BarData{Value: it.Count}
	}
	bar.SetXAxis(labels).AddSeries("count", data)

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title + " pair graph"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	nodes, links := graphData(hot)
	graph.AddSeries("pairs", nodes, links).SetSeriesOptions(
		charts.WithGraphChartOpts(opts.GraphChart{
			Force:  &opts.GraphForce{Repulsion: 1000, Gravity: 0.3},
			Layout: "force",
			Roam:   opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right", Formatter: "{b}"}),
	)

	page := components.NewPage()
	page.AddCharts(bar, graph)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}
	return nil
}

func graphData(hot []Item) ([]opts.GraphNode, []opts.GraphLink) {
	seen := make(map[*fusion.Entry]bool)
	var nodes []opts.GraphNode
	addNode := func(e *fusion.Entry) {
		if seen[e] {
			return
		}
		seen[e] = true
		nodes = append(nodes, opts.GraphNode{
			Name:  e.Label(),
			Value: float32(e.Total.Load()),
			Tooltip: &opts.Tooltip{
				Show:      opts.Bool(true),
				Formatter: types.FuncStr(fmt.Sprintf("%s<br>executed: %d", e.Label(), e.Total.Load())),
			},
		})
	}
	links := make([]opts.GraphLink, 0, len(hot))
	for _, it := range hot {
		addNode(it.Subject)
		addNode(it.Follower)
		links = append(links, opts.GraphLink{
			Source: it.Subject.Label(),
			Target: it.Follower.Label(),
			Value:  float32(it.Count),
		})
	}
	return nodes, links
}
