package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractByLayout(t *testing.T) {
	tests := []struct {
		name   string
		word   uint32
		layout Layout
		want   Operands
	}{
		{"ecall", 0x00000073, None, Operands{}},
		{"add a0,a0,a1", 0x00b50533, R, Operands{Rd: 10, Rs1: 10, Rs2: 11}},
		{"addi a0,a1,1", 0x00158513, I, Operands{Rd: 10, Rs1: 11}},
		{"ld a0,16(sp)", 0x01013503, Load, Operands{Rd: 10, Rs1: 2}},
		{"sd a1,8(sp)", 0x00b13423, Store, Operands{Rs1: 2, Rs2: 11}},
		{"beq a0,a1", 0x00b50063, Branch, Operands{Rs1: 10, Rs2: 11}},
		{"jal ra", 0x000000ef, Jal, Operands{Rd: 1}},
		{"lui a0", 0x12345537, Upper, Operands{Rd: 10}},
		{"slli a0,a0,33", 0x02151513, Shift6, Operands{Rd: 10, Rs1: 10, Imm: 33}},
		{"slliw a0,a0,5", 0x0055151b, Shift5, Operands{Rd: 10, Rs1: 10, Imm: 5}},
		{"sfence.vma a0,a1", 0x12b50073, RegPair, Operands{Rs1: 10, Rs2: 11}},
		{"c.lw a0,0(a1)", 0x4188, CLoad, Operands{Rd: 10, Rs1: 11}},
		{"c.sw a0,0(a1)", 0xc188, CStore, Operands{Rs1: 11, Rs2: 10}},
		{"c.addi4spn a0,16", 0x0808, CWide, Operands{Rd: 10, Rs1: 2}},
		{"c.li a0,1", 0x4505, CImm, Operands{Rd: 10, Rs1: 10}},
		{"c.andi a0,7", 0x891d, CAndi, Operands{Rd: 10, Rs1: 10, Imm: 7}},
		{"c.andi a0,-1", 0x997d, CAndi, Operands{Rd: 10, Rs1: 10, Imm: 63}},
		{"c.srli a0,3", 0x810d, CShiftR3, Operands{Rd: 10, Rs1: 10, Imm: 3}},
		{"c.slli a0,3", 0x050e, CShiftR5, Operands{Rd: 10, Rs1: 10, Imm: 3}},
		{"c.srli64 a0", 0x8101, CShift64R3, Operands{Rd: 10, Rs1: 10, Imm: 64}},
		{"c.slli64 a0", 0x0502, CShift64R5, Operands{Rd: 10, Rs1: 10, Imm: 64}},
		{"c.sub a0,a1", 0x8d0d, CArith, Operands{Rd: 10, Rs1: 10, Rs2: 11}},
		{"c.beqz a0", 0xc101, CBranch, Operands{Rs1: 10}},
		{"c.ldsp ra,8(sp)", 0x60a2, CLoadSP, Operands{Rd: 1, Rs1: 2}},
		{"c.sdsp ra,8(sp)", 0xe406, CStoreSP, Operands{Rs1: 2, Rs2: 1}},
		{"c.add a0,a1", 0x952e, CAdd, Operands{Rd: 10, Rs1: 10, Rs2: 11}},
		{"c.mv a0,a1", 0x852e, CMove, Operands{Rd: 10, Rs2: 11}},
		{"c.jr ra", 0x8082, CJr, Operands{Rs1: 1}},
		{"c.jalr a5", 0x9782, CJalr, Operands{Rd: 1, Rs1: 15}},
	}
	tab := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tab.Match(tt.word)
			require.NotNil(t, p)
			require.Equal(t, tt.layout, p.Layout, "matched %s", p.Name)
			assert.Equal(t, tt.want, p.Layout.Extract(tt.word))
		})
	}
}

func TestPackLanes(t *testing.T) {
	o := Operands{Rd: 10, Rs1: 11, Rs2: 12, Imm: 5}
	assert.Equal(t, uint32(10|11<<8|12<<16), R.Pack(o))
	assert.Equal(t, uint32(11|12<<8), Branch.Pack(o), "branches carry no destination")
	assert.Equal(t, uint32(10|11<<8), Load.Pack(o))
	assert.Equal(t, uint32(10|11<<8|5<<16), Shift6.Pack(o))
	assert.Equal(t, uint32(10|12<<8), CMove.Pack(o))
	assert.Equal(t, uint32(11), CJr.Pack(o))
	assert.Equal(t, uint32(12), CStoreSP.Pack(o))
	assert.Zero(t, None.Pack(o))
}

func TestFormat(t *testing.T) {
	o := Operands{Rd: 10, Rs1: 10, Rs2: 11, Imm: 3}
	assert.Equal(t, "add$rd@10,$rs1@10,$rs2@11", R.Format("add", o))
	assert.Equal(t, "beq$rs1@10,$rs2@11", Branch.Format("beq", o))
	assert.Equal(t, "jal$rd@10", Jal.Format("jal", o))
	assert.Equal(t, "slli$rd@10,$rs1@10,$sh@3", Shift6.Format("slli", o))
	assert.Equal(t, "c.andi$rd@10,$rs1@10,$imm@3", CAndi.Format("c.andi", o))
	assert.Equal(t, "c.jr$rs1@10", CJr.Format("c.jr", o))
	assert.Equal(t, "ecall", None.Format("ecall", o))
}

func TestLayoutString(t *testing.T) {
	assert.Equal(t, "r", R.String())
	assert.Equal(t, "c.jalr", CJalr.String())
	assert.Equal(t, "layout(200)", Layout(200).String())
	assert.True(t, CLoad.Compressed())
	assert.False(t, Shift6.Compressed())
}
