package report

import (
	"fmt"

	"github.com/zboralski/lattice"
	latrender "github.com/zboralski/lattice/render"

	"instfusion/internal/fusion"
)

// Graph builds the structural pair graph: one node per reported subject,
// one edge per reported adjacency.
func Graph(t *fusion.Table, opts Options) *lattice.Graph {
	g := &lattice.Graph{}
	for _, it := range Totals(t, opts) {
		g.Nodes = append(g.Nodes, it.Subject.Label())
	}
	for _, it := range Pairs(t, opts) {
		g.Edges = append(g.Edges, lattice.Edge{
			Caller: it.Subject.Label(),
			Callee: it.Follower.Label(),
		})
	}
	g.Dedup()
	return g
}

// GraphDOT renders Graph as DOT.
func GraphDOT(t *fusion.Table, opts Options, title string) string {
	return latrender.DOT(Graph(t, opts), title)
}

// BlockGraph builds the block transition graph of a batch run: blocks in
// first-translation order, one edge per distinct consecutive pair in the
// execution trace.
func BlockGraph(blocks []*fusion.Block, trace []uint64) *lattice.Graph {
	g := &lattice.Graph{}
	for _, b := range blocks {
		g.Nodes = append(g.Nodes, blockName(b.Addr))
	}
	for i := 1; i < len(trace); i++ {
		g.Edges = append(g.Edges, lattice.Edge{
			Caller: blockName(trace[i-1]),
			Callee: blockName(trace[i]),
		})
	}
	g.Dedup()
	return g
}

// BlockDOT renders BlockGraph as DOT.
func BlockDOT(blocks []*fusion.Block, trace []uint64, title string) string {
	return latrender.DOT(BlockGraph(blocks, trace), title)
}

func blockName(addr uint64) string {
	return fmt.Sprintf("block_%x", addr)
}
