package render

import (
	"bytes"
	"strings"
	"testing"

	"instfusion/internal/disasm"
)

func TestPairsDOT(t *testing.T) {
	nodes := []NodeRecord{
		{Key: "3:00000a0a", Label: "c.li$rd@10,$rs1@10", Total: 10, Compressed: true},
		{Key: "7:00000b0a", Label: "addi$rd@10,$rs1@11", Total: 10},
		{Key: "9:00000000", Label: "unclassified", Total: 1, Unclassified: true},
		{Key: "12:00000000", Label: "ecall", Total: 4},
	}
	edges := []EdgeRecord{
		{From: "3:00000a0a", To: "7:00000b0a", Count: 10},
		{From: "7:00000b0a", To: "9:00000000", Count: 1},
	}
	dot := PairsDOT(nodes, edges, "pairs <test>", NASA, 0)

	if !strings.HasPrefix(dot, "digraph pairs {") {
		t.Fatalf("not a digraph: %s", dot)
	}
	if !strings.Contains(dot, "pairs &lt;test&gt;") {
		t.Error("title not escaped")
	}
	if strings.Contains(dot, "ecall") {
		t.Error("node without edges should be omitted")
	}
	if !strings.Contains(dot, "<b>c.li</b><br/><font point-size=\"7\">rd@10,rs1@10</font>") {
		t.Errorf("missing two-line label: %s", dot)
	}
	hot := dotID("3:00000a0a") + " -> " + dotID("7:00000b0a") + " [color=\"" + NASA.EdgeHot + "\", penwidth=3.50"
	if !strings.Contains(dot, hot) {
		t.Errorf("missing hot edge %q in %s", hot, dot)
	}
	warm := "[color=\"" + NASA.EdgeWarm + "\", penwidth=0.80"
	if !strings.Contains(dot, warm) {
		t.Errorf("missing warm edge %q in %s", warm, dot)
	}
	if PairsDOT(nodes, edges, "pairs <test>", NASA, 0) != dot {
		t.Error("non-deterministic output")
	}
}

func TestPairsDOTMaxEdges(t *testing.T) {
	edges := []EdgeRecord{{From: "a", To: "b", Count: 5}, {From: "b", To: "c", Count: 4}}
	dot := PairsDOT(nil, edges, "x", NASA, 1)
	if strings.Count(dot, "->") != 1 {
		t.Errorf("want 1 edge: %s", dot)
	}
}

func TestDotID(t *testing.T) {
	if got := dotID("3:0a"); got != "n_3_003a0a" {
		t.Errorf("dotID = %q", got)
	}
}

func TestOperandLines(t *testing.T) {
	name, ops := operandLines("add$rd@10,$rs1@10,$rs2@11")
	if name != "add" || ops != "rd@10,rs1@10,rs2@11" {
		t.Errorf("got %q %q", name, ops)
	}
	name, ops = operandLines("fence")
	if name != "fence" || ops != "" {
		t.Errorf("got %q %q", name, ops)
	}
}

func TestCFGDOT(t *testing.T) {
	insts := disasm.DisassembleWords([]uint32{0x00b50863, 0x00000013, 0x00008067, 0x00000013, 0x00008067}, 0x1000)
	cfg := disasm.BuildCFG("region", insts)
	ann := func(inst disasm.Inst) string {
		if inst.Addr == 0x1004 {
			return "hot"
		}
		return ""
	}
	dot := CFGDOT(cfg, NASA, ann)
	if !strings.Contains(dot, "0x1004: nop  ; hot") {
		t.Errorf("missing annotated line: %s", dot)
	}
	if !strings.Contains(dot, "bb0 -> bb3") || !strings.Contains(dot, "bb0 -> bb1") {
		t.Errorf("missing branch edges: %s", dot)
	}
	if CFGDOT(disasm.FuncCFG{}, NASA, nil) != "" {
		t.Error("empty CFG should render nothing")
	}
}

func TestWriteIndexHTML(t *testing.T) {
	var buf bytes.Buffer
	WriteIndexHTML(&buf, Summary{
		Rows:  []SummaryRow{{"Blocks", "2"}},
		Nodes: []NodeRecord{{Label: "add", Total: 8}, {Label: "sub", Total: 2}},
		Edges: []EdgeRecord{{From: "add", To: "sub", Count: 4}},
		Links: []Link{{Href: "pairs.html", Text: "Chart"}},
		Limit: 1,
	}, "run <1>", NASA)
	html := buf.String()

	for _, want := range []string{
		"<title>run &lt;1&gt;</title>",
		"<tr><td>Blocks</td><td class=\"num\">2</td></tr>",
		`<a href="pairs.html">Chart</a>`,
		"<td class=\"ins\">add</td><td class=\"ins\">sub</td><td class=\"num\">4</td>",
		"... and 1 more",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q", want)
		}
	}
}
