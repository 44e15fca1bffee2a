package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instfusion/internal/decode"
	"instfusion/internal/fusion"
)

const (
	wAdd = 0x00b50533 // add a0,a0,a1
	wSub = 0x40b50533 // sub a0,a0,a1
	wBeq = 0x00b50063 // beq a0,a1,0
	wCli = 0x4505     // c.li a0,1
)

// streamTable runs words through a streaming aggregator once per round.
func streamTable(t *testing.T, rounds int, words ...uint32) (*fusion.Table, fusion.Stats) {
	t.Helper()
	d, err := decode.New(nil)
	require.NoError(t, err)
	a := fusion.NewStream(d, fusion.DefaultOptions(fusion.Stream))
	hooks, err := a.Translate(0, 0x1000, words)
	require.NoError(t, err)
	for i := 0; i < rounds; i++ {
		for _, h := range hooks {
			a.Execute(0, h)
		}
	}
	return a.Finalize(), a.Stats()
}

func renderText(t *testing.T, tab *fusion.Table, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, tab, opts))
	return buf.String()
}

func TestTextSections(t *testing.T) {
	tab, _ := streamTable(t, 3, wAdd, wSub, wAdd)
	want := strings.Join([]string{
		TotalsHeader,
		"add$rd@10,$rs1@10,$rs2@11: 6",
		"sub$rd@10,$rs1@10,$rs2@11: 3",
		PairsHeader,
		"add$rd@10,$rs1@10,$rs2@11-sub$rd@10,$rs1@10,$rs2@11:3",
		"sub$rd@10,$rs1@10,$rs2@11-add$rd@10,$rs1@10,$rs2@11:3",
		"",
	}, "\n")
	assert.Equal(t, want, renderText(t, tab, Options{}))
}

func TestTextIdempotent(t *testing.T) {
	tab, stats := streamTable(t, 4, wCli, wAdd, wBeq, wCli)
	opts := Options{Stats: &stats}
	first := renderText(t, tab, opts)
	assert.Equal(t, first, renderText(t, tab, opts))
	assert.True(t, strings.HasPrefix(first, "# blocks=1 translations=1 executions=4 trace=4 insts=16 unclassified=0\n"), first)
}

func TestTextOmitsZeroCounts(t *testing.T) {
	// Translated but never executed: counters exist at zero.
	tab, _ := streamTable(t, 0, wAdd, wSub)
	assert.Equal(t, TotalsHeader+"\n"+PairsHeader+"\n", renderText(t, tab, Options{}))
}

func TestSortTopMinCount(t *testing.T) {
	d, err := decode.New(nil)
	require.NoError(t, err)
	tab := fusion.NewTable(false)
	add := tab.Entry(decode.PatternKey(d.Classify(wAdd)), d.Classify(wAdd))
	sub := tab.Entry(decode.PatternKey(d.Classify(wSub)), d.Classify(wSub))
	beq := tab.Entry(decode.PatternKey(d.Classify(wBeq)), d.Classify(wBeq))
	add.Total.Add(2)
	sub.Total.Add(9)
	beq.Total.Add(5)
	tab.Link(add, sub).Add(1)
	tab.Link(sub, add).Add(2)
	tab.Link(sub, beq).Add(7)

	lines := func(items []Item) []string {
		var out []string
		for _, it := range items {
			out = append(out, it.String())
		}
		return out
	}

	assert.Equal(t, []string{"add: 2", "sub: 9", "beq: 5"}, lines(Totals(tab, Options{})))
	assert.Equal(t, []string{"sub: 9", "beq: 5", "add: 2"}, lines(Totals(tab, Options{Sort: true})))
	assert.Equal(t, []string{"sub: 9"}, lines(Totals(tab, Options{Sort: true, Top: 1})))

	assert.Equal(t, []string{"add-sub:1", "sub-add:2", "sub-beq:7"}, lines(Pairs(tab, Options{})))
	assert.Equal(t, []string{"sub-beq:7", "sub-add:2", "add-sub:1"}, lines(Pairs(tab, Options{Sort: true})))
	assert.Equal(t, []string{"sub-add:2", "sub-beq:7"}, lines(Pairs(tab, Options{MinCount: 2})))
	assert.Equal(t, []string{"sub-beq:7", "sub-add:2"}, lines(Hottest(tab, Options{Top: 2})))

	keep := func(it Item) bool { return !it.Pair() || it.Follower.Inst.Name() == "add" }
	assert.Equal(t, []string{"sub-add:2"}, lines(Pairs(tab, Options{Keep: keep})))
}

func TestTree(t *testing.T) {
	tab, _ := streamTable(t, 2, wAdd, wSub)
	out := Tree(tab, Options{})
	assert.True(t, strings.HasPrefix(out, "pairs\n"), out)
	assert.Contains(t, out, "add$rd@10,$rs1@10,$rs2@11: 2")
	assert.Contains(t, out, "sub$rd@10,$rs1@10,$rs2@11: 2")
	assert.Less(t, strings.Index(out, "add$"), strings.Index(out, "sub$"))
}

func TestGraph(t *testing.T) {
	tab, _ := streamTable(t, 1, wAdd, wSub, wAdd, wSub)
	g := Graph(tab, Options{})
	assert.Len(t, g.Nodes, 2)
	assert.Len(t, g.Edges, 2)
	callers := []string{g.Edges[0].Caller, g.Edges[1].Caller}
	assert.ElementsMatch(t, []string{"add$rd@10,$rs1@10,$rs2@11", "sub$rd@10,$rs1@10,$rs2@11"}, callers)
	assert.NotEmpty(t, GraphDOT(tab, Options{}, "pairs"))
}

func TestBlockGraph(t *testing.T) {
	d, err := decode.New(nil)
	require.NoError(t, err)
	a := fusion.NewBatch(d, fusion.Options{})
	x, err := a.Translate(0, 0x1000, []uint32{wAdd})
	require.NoError(t, err)
	y, err := a.Translate(0, 0x2000, []uint32{wSub})
	require.NoError(t, err)
	for _, h := range [][]fusion.Hook{x, y, x, y} {
		a.Execute(0, h[0])
	}
	g := BlockGraph(a.Blocks(), a.Trace())
	assert.ElementsMatch(t, []string{"block_1000", "block_2000"}, g.Nodes)
	assert.Len(t, g.Edges, 2)
}

func TestPairsDOT(t *testing.T) {
	tab, _ := streamTable(t, 3, wCli, wAdd)
	dot := PairsDOT(tab, Options{}, "hot pairs")
	assert.Contains(t, dot, "digraph pairs {")
	assert.Contains(t, dot, "hot pairs")
	assert.Equal(t, 1, strings.Count(dot, "->"))
}

func TestChart(t *testing.T) {
	tab, _ := streamTable(t, 3, wCli, wAdd, wBeq)
	var buf bytes.Buffer
	require.NoError(t, Chart(&buf, tab, Options{}, "fusion"))
	assert.Contains(t, buf.String(), "<html")
	assert.Contains(t, buf.String(), "c.li$rd@10,$rs1@10")
}

func TestRecords(t *testing.T) {
	tab, _ := streamTable(t, 2, wCli, wAdd)
	nodes := Nodes(tab, Options{})
	require.Len(t, nodes, 2)
	assert.True(t, nodes[0].Compressed)
	assert.False(t, nodes[1].Compressed)
	assert.Equal(t, uint64(2), nodes[0].Total)

	edges := Edges(tab, Options{})
	require.Len(t, edges, 1)
	assert.Equal(t, nodes[0].Key, edges[0].From)
	assert.Equal(t, nodes[1].Key, edges[0].To)
}
