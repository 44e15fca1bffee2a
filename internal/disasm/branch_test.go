package disasm

import "testing"

func TestDecodeBranch_Ret(t *testing.T) {
	// jalr x0, 0(ra)
	bi := DecodeBranch(0x00008067, 0x1000)
	if bi == nil {
		t.Fatal("expected ret")
	}
	if !bi.IsRet || !bi.Indirect {
		t.Errorf("got %+v, want indirect ret", *bi)
	}
}

func TestDecodeBranch_CRet(t *testing.T) {
	// c.jr ra
	bi := DecodeBranch(0x8082, 0x1000)
	if bi == nil || !bi.IsRet {
		t.Fatalf("got %+v, want ret", bi)
	}
}

func TestDecodeBranch_JAL(t *testing.T) {
	// j +16 at PC=0x1000 → target=0x1010
	bi := DecodeBranch(0x0100006f, 0x1000)
	if bi == nil {
		t.Fatal("expected jal")
	}
	if bi.Target != 0x1010 {
		t.Errorf("target = 0x%x, want 0x1010", bi.Target)
	}
	if bi.Cond || bi.Link {
		t.Error("j should be unconditional and not link")
	}
}

func TestDecodeBranch_JAL_Negative(t *testing.T) {
	// j -8 at PC=0x1000 → target=0xff8
	bi := DecodeBranch(0xff9ff06f, 0x1000)
	if bi == nil {
		t.Fatal("expected jal")
	}
	if bi.Target != 0x0ff8 {
		t.Errorf("target = 0x%x, want 0xff8", bi.Target)
	}
}

func TestDecodeBranch_Call(t *testing.T) {
	// jal ra, +16
	bi := DecodeBranch(0x010000ef, 0x2000)
	if bi == nil || !bi.Link {
		t.Fatalf("got %+v, want linking jal", bi)
	}
	if IsBranchTerminator(0x010000ef) {
		t.Error("call should not terminate a block")
	}
}

func TestDecodeBranch_Cond(t *testing.T) {
	tests := []struct {
		name   string
		raw    uint32
		pc     uint64
		target uint64
	}{
		{"beq_fwd", 0x00b50863, 0x2000, 0x2010}, // beq a0,a1,+16
		{"bne_back", 0xfeb518e3, 0x2000, 0x1ff0}, // bne a0,a1,-16
		{"beqz_fwd", 0x00050463, 0x3000, 0x3008}, // beq a0,x0,+8
		{"c.beqz", 0xc501, 0x4000, 0x4008},       // c.beqz a0,+8
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bi := DecodeBranch(tt.raw, tt.pc)
			if bi == nil {
				t.Fatal("expected branch")
			}
			if !bi.Cond {
				t.Error("expected conditional")
			}
			if bi.Target != tt.target {
				t.Errorf("target = 0x%x, want 0x%x", bi.Target, tt.target)
			}
		})
	}
}

func TestDecodeBranch_CJ(t *testing.T) {
	// c.j +8
	bi := DecodeBranch(0xa021, 0x1000)
	if bi == nil {
		t.Fatal("expected c.j")
	}
	if bi.Target != 0x1008 || bi.Cond {
		t.Errorf("got %+v, want unconditional to 0x1008", *bi)
	}
}

func TestDecodeBranch_NotBranch(t *testing.T) {
	for _, raw := range []uint32{
		0x00b50533, // add
		0x4505,     // c.li
		0x852e,     // c.mv (shares the c.jr opcode space)
		0x00000073, // ecall
	} {
		if bi := DecodeBranch(raw, 0x1000); bi != nil {
			t.Errorf("0x%08x: unexpected branch %+v", raw, *bi)
		}
	}
}

func TestSignExtend(t *testing.T) {
	if got := signExtend(0x1ff0, 13); got != -16 {
		t.Errorf("signExtend(0x1ff0, 13) = %d, want -16", got)
	}
	if got := signExtend(0x10, 13); got != 16 {
		t.Errorf("signExtend(0x10, 13) = %d, want 16", got)
	}
}
