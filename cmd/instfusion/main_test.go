package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instfusion/internal/disasm"
	"instfusion/internal/output"
)

// Image at 0x1000: three blocks [addi add beq] [sub] [ret].
var imageWords = []uint32{
	0x00150513, // addi a0,a0,1
	0x00b50533, // add a0,a0,a1
	0x00050463, // beq a0,zero,+8
	0x40b50533, // sub a0,a0,a1
	0x00008067, // ret
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeImage(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "code.bin")
	require.NoError(t, os.WriteFile(path, disasm.Join(imageWords), 0644))
	return path
}

func recordTrace(t *testing.T, name string, repeat string, extra ...string) string {
	t.Helper()
	dir := t.TempDir()
	img := writeImage(t, dir)
	tr := filepath.Join(dir, name)
	args := append([]string{"record", img, "--base", "0x1000", "--repeat", repeat, "-o", tr}, extra...)
	_, stderr, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "3 blocks")
	return tr
}

func TestAnalyzeBatch(t *testing.T) {
	tr := recordTrace(t, "run.jsonl", "2")
	stdout, _, err := execute(t, "analyze", tr, "--stats=false")
	require.NoError(t, err)

	want := strings.Join([]string{
		"# instruction totals",
		"addi: 2",
		"add: 2",
		"beq: 2",
		"sub: 2",
		"jalr: 2",
		"# pair counts",
		"addi-add:2",
		"add-beq:2",
		"beq-sub:2",
		"sub-jalr:2",
		"jalr-addi:1",
		"",
	}, "\n")
	assert.Equal(t, want, stdout)
}

func TestRecordHexCodeReplaysLikeWords(t *testing.T) {
	words := recordTrace(t, "words.jsonl", "2")
	code := recordTrace(t, "code.jsonl", "2", "--hex")

	raw, err := os.ReadFile(code)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"code":"130515003305b50063040500"`)
	assert.NotContains(t, string(raw), `"words"`)

	want, _, err := execute(t, "analyze", words, "--stats=false")
	require.NoError(t, err)
	got, _, err := execute(t, "analyze", code, "--stats=false")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAnalyzeStream(t *testing.T) {
	tr := recordTrace(t, "run.jsonl.gz", "2")
	stdout, _, err := execute(t, "analyze", tr, "--mode", "stream", "--operands=false", "--stats=false")
	require.NoError(t, err)

	assert.Contains(t, stdout, "beq-sub:2\n")
	assert.Contains(t, stdout, "sub-jalr:2\n")
	// Streaming never wires the wrap-around from the last block back to
	// the first.
	assert.NotContains(t, stdout, "jalr-addi")
}

func TestAnalyzeMergesTraces(t *testing.T) {
	tr := recordTrace(t, "run.jsonl", "2")
	stdout, _, err := execute(t, "analyze", tr, tr, "--stats=false")
	require.NoError(t, err)
	assert.Contains(t, stdout, "addi: 4\n")
	assert.Contains(t, stdout, "jalr-addi:2\n")
}

func TestAnalyzeFilterAndStats(t *testing.T) {
	tr := recordTrace(t, "run.jsonl", "3")
	stdout, _, err := execute(t, "analyze", tr, "--filter", `pair && fname == "sub"`)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"# blocks=3 translations=3 executions=9 trace=9 insts=15 unclassified=0",
		"# instruction totals",
		"# pair counts",
		"beq-sub:3",
		"",
	}, "\n"), stdout)
}

func TestAnalyzeOut(t *testing.T) {
	tr := recordTrace(t, "run.jsonl", "1")
	out := filepath.Join(t.TempDir(), "report")
	_, stderr, err := execute(t, "analyze", tr, "--out", out)
	require.NoError(t, err)
	for _, name := range []string{
		output.ReportFile, output.TreeFile, output.PairsDOT, output.GraphDOT,
		output.ChartHTML, output.TableJSON, output.BlocksDOT, output.IndexHTML,
	} {
		assert.FileExists(t, filepath.Join(out, name))
		assert.Contains(t, stderr, "wrote "+filepath.Join(out, name))
	}
}

func TestAnalyzeErrors(t *testing.T) {
	tr := recordTrace(t, "run.jsonl", "1")
	_, _, err := execute(t, "analyze", tr, "--mode", "sideways")
	assert.Error(t, err)

	_, _, err = execute(t, "analyze", tr, "--filter", "count >")
	assert.Error(t, err)

	_, _, err = execute(t, "analyze", filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.jsonl")
	require.NoError(t, os.WriteFile(bad, []byte(`{"op":"exec","cpu":0,"pc":4096}`+"\n"), 0644))
	_, _, err = execute(t, "analyze", bad)
	assert.ErrorContains(t, err, "untranslated")
}

func TestClassify(t *testing.T) {
	stdout, _, err := execute(t, "classify", "0x00000073", "4505")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "00000073  ecall"))
	assert.Contains(t, lines[0], "; ecall")
	assert.True(t, strings.HasPrefix(lines[1], "00004505  c.li$rd@10,$rs1@10"))

	stdout, _, err = execute(t, "classify", "ffffffff")
	require.NoError(t, err)
	assert.Contains(t, stdout, "; .word 0xffffffff")

	_, _, err = execute(t, "classify", "xyz")
	assert.Error(t, err)
	_, _, err = execute(t, "classify")
	assert.Error(t, err)
}

func TestTable(t *testing.T) {
	stdout, _, err := execute(t, "table", "--grep", "beq")
	require.NoError(t, err)
	assert.Contains(t, stdout, "beq")
	assert.Contains(t, stdout, "mask=0000707f match=00000063")

	stdout, _, err = execute(t, "table", "c.li", "ecall")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], " c.li ")
	assert.Contains(t, lines[1], " ecall ")

	_, _, err = execute(t, "table", "no.such.op")
	assert.Error(t, err)

	stdout, _, err = execute(t, "table", "--shadowed")
	require.NoError(t, err)
	assert.Contains(t, stdout, "entries shadowed")
}

func TestDisasm(t *testing.T) {
	tr := recordTrace(t, "run.jsonl", "2")
	img := writeImage(t, t.TempDir())
	stdout, _, err := execute(t, "disasm", img, "--base", "0x1000", "--trace", tr, "--sym", "0x1010=done")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, len(imageWords))
	assert.Contains(t, lines[1], "add$rd@10,$rs1@10,$rs2@11, x2")
	assert.Contains(t, lines[2], "-> <done>")
	assert.Contains(t, lines[4], "; <done>")

	out := t.TempDir()
	_, stderr, err := execute(t, "disasm", img, "--base", "0x1000", "--cfg", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "(3 blocks)")
	assert.FileExists(t, filepath.Join(out, "asm", "code.txt"))
	assert.FileExists(t, filepath.Join(out, "cfg", "code.dot"))
}
