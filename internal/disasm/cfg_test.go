package disasm

import "testing"

const (
	rawNop = 0x00000013 // addi x0,x0,0
	rawRet = 0x00008067 // jalr x0,0(ra)
)

// makeInst creates a synthetic Inst at the given address with raw encoding.
func makeInst(addr uint64, raw uint32) Inst {
	return Inst{Addr: addr, Raw: raw, Size: Length(uint16(raw))}
}

func TestBuildCFG_Linear(t *testing.T) {
	// Two NOPs then RET → one block.
	insts := []Inst{
		makeInst(0x1000, rawNop),
		makeInst(0x1004, rawNop),
		makeInst(0x1008, rawRet),
	}
	cfg := BuildCFG("linear", insts)
	if len(cfg.Blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(cfg.Blocks))
	}
	blk := cfg.Blocks[0]
	if blk.Start != 0 || blk.End != 3 {
		t.Errorf("block range = [%d,%d), want [0,3)", blk.Start, blk.End)
	}
	if !blk.IsTerm {
		t.Error("block should be terminal (ret)")
	}
	if len(blk.Succs) != 0 {
		t.Errorf("succs = %d, want 0", len(blk.Succs))
	}
}

func TestBuildCFG_ConditionalBranch(t *testing.T) {
	//   0x1000: beq a0,a1,+16 → target 0x1010
	//   0x1004: nop            (fallthrough)
	//   0x1008: ret
	//   0x100c: nop
	//   0x1010: ret            (branch target)
	insts := []Inst{
		makeInst(0x1000, 0x00b50863),
		makeInst(0x1004, rawNop),
		makeInst(0x1008, rawRet),
		makeInst(0x100c, rawNop),
		makeInst(0x1010, rawRet),
	}
	cfg := BuildCFG("cond", insts)

	// Leaders: 0 (entry), 1 (after beq), 3 (after ret at idx 2), 4 (target 0x1010)
	if len(cfg.Blocks) != 4 {
		t.Fatalf("blocks = %d, want 4", len(cfg.Blocks))
	}

	b0 := cfg.Blocks[0]
	if len(b0.Succs) != 2 {
		t.Fatalf("block 0 succs = %d, want 2", len(b0.Succs))
	}
	var hasT, hasF bool
	for _, s := range b0.Succs {
		if s.Cond == "T" && s.BlockID == 3 {
			hasT = true
		}
		if s.Cond == "F" && s.BlockID == 1 {
			hasF = true
		}
	}
	if !hasT {
		t.Errorf("block 0 missing T→block3, succs=%+v", b0.Succs)
	}
	if !hasF {
		t.Errorf("block 0 missing F→block1, succs=%+v", b0.Succs)
	}

	if !cfg.Blocks[1].IsTerm {
		t.Error("block 1 should be terminal (ret)")
	}
	if !cfg.Blocks[3].IsTerm {
		t.Error("block 3 should be terminal (ret)")
	}
}

func TestBuildCFG_UnconditionalBranch(t *testing.T) {
	//   0x2000: j +8  → target 0x2008
	//   0x2004: nop   (dead code)
	//   0x2008: ret   (branch target)
	insts := []Inst{
		makeInst(0x2000, 0x0080006f),
		makeInst(0x2004, rawNop),
		makeInst(0x2008, rawRet),
	}
	cfg := BuildCFG("uncond", insts)

	if len(cfg.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(cfg.Blocks))
	}
	b0 := cfg.Blocks[0]
	if len(b0.Succs) != 1 {
		t.Fatalf("block 0 succs = %d, want 1", len(b0.Succs))
	}
	if b0.Succs[0].BlockID != 2 || b0.Succs[0].Cond != "" {
		t.Errorf("block 0 succ = {%d, %q}, want {2, \"\"}", b0.Succs[0].BlockID, b0.Succs[0].Cond)
	}
}

func TestBuildCFG_CallFallsThrough(t *testing.T) {
	//   0x3000: c.li a0,1
	//   0x3002: jal ra,+16 (call, not a terminator)
	//   0x3006: c.jr ra
	insts := []Inst{
		makeInst(0x3000, 0x4505),
		makeInst(0x3002, 0x010000ef),
		makeInst(0x3006, 0x8082),
	}
	cfg := BuildCFG("call", insts)
	if len(cfg.Blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(cfg.Blocks))
	}
	if !cfg.Blocks[0].IsTerm {
		t.Error("block should end with c.jr ra")
	}
}

func TestBuildCFG_Empty(t *testing.T) {
	cfg := BuildCFG("empty", nil)
	if len(cfg.Blocks) != 0 {
		t.Errorf("blocks = %d, want 0", len(cfg.Blocks))
	}
}
