package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instfusion/internal/decode"
	"instfusion/internal/disasm"
	"instfusion/internal/fusion"
	"instfusion/internal/render"
	"instfusion/internal/report"
)

func batchRun(t *testing.T) *fusion.BatchAggregator {
	t.Helper()
	d, err := decode.New(nil)
	require.NoError(t, err)
	a := fusion.NewBatch(d, fusion.Options{})
	hooks, err := a.Translate(0, 0x1000, []uint32{0x00b50533, 0x40b50533, 0x00b50063})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for _, h := range hooks {
			a.Execute(0, h)
		}
	}
	a.Finalize()
	return a
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestWriteArtifacts(t *testing.T) {
	a := batchRun(t)
	tab := a.Finalize()
	stats := a.Stats()
	dir := t.TempDir()
	opts := report.Options{Stats: &stats}

	require.NoError(t, WriteReport(dir, tab, opts))
	require.NoError(t, WriteTree(dir, tab, opts))
	require.NoError(t, WritePairsDOT(dir, tab, opts, "pairs"))
	require.NoError(t, WriteGraphDOT(dir, tab, opts, "graph"))
	require.NoError(t, WriteBlocksDOT(dir, a.Blocks(), a.Trace(), "blocks"))
	require.NoError(t, WriteChart(dir, tab, opts, "chart"))
	require.NoError(t, WriteIndexHTML(dir, tab, opts, stats, "run", []render.Link{{Href: ReportFile, Text: "report"}}))

	txt := readFile(t, filepath.Join(dir, ReportFile))
	assert.Contains(t, txt, report.TotalsHeader)
	assert.Contains(t, txt, "beq-add:4")
	assert.Contains(t, txt, "add-sub:5")

	assert.Contains(t, readFile(t, filepath.Join(dir, TreeFile)), "sub")
	assert.True(t, strings.HasPrefix(readFile(t, filepath.Join(dir, PairsDOT)), "digraph"))
	assert.NotEmpty(t, readFile(t, filepath.Join(dir, GraphDOT)))
	assert.NotEmpty(t, readFile(t, filepath.Join(dir, BlocksDOT)))
	assert.Contains(t, readFile(t, filepath.Join(dir, ChartHTML)), "<html")

	idx := readFile(t, filepath.Join(dir, IndexHTML))
	assert.Contains(t, idx, "<title>run</title>")
	assert.Contains(t, idx, `href="report.txt"`)
}

func TestWriteTableJSON(t *testing.T) {
	a := batchRun(t)
	dir := t.TempDir()
	require.NoError(t, WriteTableJSON(dir, a.Finalize(), a.Stats()))

	var doc TableJSONDoc
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(dir, TableJSON))), &doc))
	assert.False(t, doc.Operands)
	assert.Equal(t, 1, doc.Stats.Blocks)
	require.Len(t, doc.Entries, 3)
	assert.Equal(t, "add", doc.Entries[0].Name)
	assert.Equal(t, uint64(5), doc.Entries[0].Total)
	require.Len(t, doc.Entries[0].Followers, 1)
	assert.Equal(t, FollowerJSON{Key: doc.Entries[1].Key, Label: "sub", Count: 5}, doc.Entries[0].Followers[0])
	require.Len(t, doc.Entries[2].Followers, 1)
	assert.Equal(t, uint64(4), doc.Entries[2].Followers[0].Count)
}

func TestWriteASMAndCFG(t *testing.T) {
	dir := t.TempDir()
	// addi a0,a0,1 ; beq a0,x0,+8 ; nop ; ret
	insts := disasm.DisassembleWords([]uint32{0x00150513, 0x00050463, 0x00000013, 0x00008067}, 0x1000)
	require.NoError(t, WriteASM(dir, "sub/region", insts, nil))
	asm := readFile(t, filepath.Join(dir, "asm", "sub", "region.txt"))
	assert.Contains(t, asm, "0x00001000")

	cfg := disasm.BuildCFG("region", insts)
	require.NoError(t, WriteCFGDOT(dir, cfg, nil))
	assert.Contains(t, readFile(t, filepath.Join(dir, "cfg", "region.dot")), "digraph")
}
