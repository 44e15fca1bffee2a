package isa

import (
	"fmt"
	"strings"
)

// Layout selects how operand fields are pulled out of an instruction word
// and which of them take part in the fusion identity.
type Layout uint8

const (
	None Layout = iota // fences, system instructions, c.j, c.nop, fallback
	R                  // rd, rs1, rs2 (also R4, vector, AMO)
	I                  // rd, rs1 (ALU immediate, jalr, csr, unary)
	Load               // rd, rs1
	Store              // rs1, rs2
	Branch             // rs1, rs2
	Jal                // rd
	Upper              // rd (lui, auipc)
	Shift5             // rd, rs1, shamt[24:20]
	Shift6             // rd, rs1, shamt[25:20]
	RegPair            // rs1, rs2 with no destination (sfence.vma, hsv.*)

	CLoad      // rd', rs1'
	CStore     // rs1', rs2'
	CWide      // rd', sp (c.addi4spn)
	CImm       // rd/rs1 (c.addi, c.li, c.lui, ...)
	CAndi      // rd'/rs1', imm
	CShiftR3   // rd'/rs1', shamt
	CShiftR5   // rd/rs1, shamt
	CShift64R3 // rd'/rs1', shamt fixed at 64
	CShift64R5 // rd/rs1, shamt fixed at 64
	CArith     // rd'/rs1', rs2'
	CBranch    // rs1'
	CLoadSP    // rd, sp
	CStoreSP   // sp, rs2
	CAdd       // rd/rs1, rs2
	CMove      // rd, rs2
	CJr        // rs1
	CJalr      // ra, rs1

	numLayouts
)

// Operands holds the register and immediate fields of one instruction.
// Registers are architectural indices 0..31. Imm carries a shift amount or
// the c.andi immediate, depending on layout.
type Operands struct {
	Rd  uint8
	Rs1 uint8
	Rs2 uint8
	Imm uint8
}

const (
	regSP = 2
	regRA = 1
)

// bits returns the n-bit field of v whose most significant bit is msb.
func bits(v uint32, msb, n uint8) uint8 {
	return uint8((v << (31 - msb)) >> (32 - n))
}

// creg maps a 3-bit RVC register field onto x8..x15.
func creg(v uint32, msb uint8) uint8 {
	return 0x8 | bits(v, msb, 3)
}

// cimm6 is the split 6-bit immediate used by c.andi and the c.sh* forms.
func cimm6(v uint32) uint8 {
	return bits(v, 12, 1)<<5 | bits(v, 6, 5)
}

// Extract reads the operand fields of word according to l.
func (l Layout) Extract(word uint32) Operands {
	switch l {
	case R:
		return Operands{Rd: bits(word, 11, 5), Rs1: bits(word, 19, 5), Rs2: bits(word, 24, 5)}
	case I, Load:
		return Operands{Rd: bits(word, 11, 5), Rs1: bits(word, 19, 5)}
	case Store, Branch, RegPair:
		return Operands{Rs1: bits(word, 19, 5), Rs2: bits(word, 24, 5)}
	case Jal, Upper:
		return Operands{Rd: bits(word, 11, 5)}
	case Shift5:
		return Operands{Rd: bits(word, 11, 5), Rs1: bits(word, 19, 5), Imm: bits(word, 24, 5)}
	case Shift6:
		return Operands{Rd: bits(word, 11, 5), Rs1: bits(word, 19, 5), Imm: bits(word, 25, 6)}

	case CLoad:
		return Operands{Rd: creg(word, 4), Rs1: creg(word, 9)}
	case CStore:
		return Operands{Rs1: creg(word, 9), Rs2: creg(word, 4)}
	case CWide:
		return Operands{Rd: creg(word, 4), Rs1: regSP}
	case CImm:
		r := bits(word, 11, 5)
		return Operands{Rd: r, Rs1: r}
	case CAndi:
		r := creg(word, 9)
		return Operands{Rd: r, Rs1: r, Imm: cimm6(word)}
	case CShiftR3:
		r := creg(word, 9)
		return Operands{Rd: r, Rs1: r, Imm: cimm6(word)}
	case CShiftR5:
		r := bits(word, 11, 5)
		return Operands{Rd: r, Rs1: r, Imm: cimm6(word)}
	case CShift64R3:
		r := creg(word, 9)
		return Operands{Rd: r, Rs1: r, Imm: 64}
	case CShift64R5:
		r := bits(word, 11, 5)
		return Operands{Rd: r, Rs1: r, Imm: 64}
	case CArith:
		r := creg(word, 9)
		return Operands{Rd: r, Rs1: r, Rs2: creg(word, 4)}
	case CBranch:
		return Operands{Rs1: creg(word, 9)}
	case CLoadSP:
		return Operands{Rd: bits(word, 11, 5), Rs1: regSP}
	case CStoreSP:
		return Operands{Rs1: regSP, Rs2: bits(word, 6, 5)}
	case CAdd:
		r := bits(word, 11, 5)
		return Operands{Rd: r, Rs1: r, Rs2: bits(word, 6, 5)}
	case CMove:
		return Operands{Rd: bits(word, 11, 5), Rs2: bits(word, 6, 5)}
	case CJr:
		return Operands{Rs1: bits(word, 11, 5)}
	case CJalr:
		return Operands{Rd: regRA, Rs1: bits(word, 11, 5)}
	}
	return Operands{}
}

// Pack folds the fusion-relevant operands into 8-bit lanes. Lane order
// follows the field list documented for each layout; unused lanes are 0.
func (l Layout) Pack(o Operands) uint32 {
	lanes := func(v ...uint8) uint32 {
		var r uint32
		for i, b := range v {
			r |= uint32(b) << (8 * i)
		}
		return r
	}
	switch l {
	case R:
		return lanes(o.Rd, o.Rs1, o.Rs2)
	case CAdd, CMove, CArith:
		return lanes(o.Rd, o.Rs2)
	case I, Load:
		return lanes(o.Rd, o.Rs1)
	case Store, Branch, RegPair:
		return lanes(o.Rs1, o.Rs2)
	case Jal, Upper, CLoad, CWide, CImm, CLoadSP:
		return lanes(o.Rd)
	case Shift5, Shift6:
		return lanes(o.Rd, o.Rs1, o.Imm)
	case CAndi, CShiftR3, CShiftR5, CShift64R3, CShift64R5:
		return lanes(o.Rd, o.Imm)
	case CStore, CBranch, CJr, CJalr:
		return lanes(o.Rs1)
	case CStoreSP:
		return lanes(o.Rs2)
	}
	return 0
}

type field struct {
	label string
	get   func(Operands) uint8
}

var (
	fRd  = field{"rd", func(o Operands) uint8 { return o.Rd }}
	fRs1 = field{"rs1", func(o Operands) uint8 { return o.Rs1 }}
	fRs2 = field{"rs2", func(o Operands) uint8 { return o.Rs2 }}
	fSh  = field{"sh", func(o Operands) uint8 { return o.Imm }}
	fImm = field{"imm", func(o Operands) uint8 { return o.Imm }}
)

func (l Layout) fields() []field {
	switch l {
	case R, CAdd, CMove, CArith:
		return []field{fRd, fRs1, fRs2}
	case Jal, Upper:
		return []field{fRd}
	case Store, Branch, RegPair, CStore, CBranch, CStoreSP:
		return []field{fRs1, fRs2}
	case I, Load, CLoad, CWide, CImm, CLoadSP, CJalr:
		return []field{fRd, fRs1}
	case CAndi:
		return []field{fRd, fRs1, fImm}
	case Shift5, Shift6, CShiftR3, CShiftR5, CShift64R3, CShift64R5:
		return []field{fRd, fRs1, fSh}
	case CJr:
		return []field{fRs1}
	}
	return nil
}

// Format renders name with the operand values the layout carries, e.g.
// "add$rd@10,$rs1@10,$rs2@11". Layouts without operands render the bare name.
func (l Layout) Format(name string, o Operands) string {
	fs := l.fields()
	if len(fs) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	for i, f := range fs {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "$%s@%d", f.label, f.get(o))
	}
	return b.String()
}

// Compressed reports whether the layout belongs to a 16-bit encoding.
func (l Layout) Compressed() bool {
	return l >= CLoad && l < numLayouts
}

var layoutNames = [...]string{
	None: "none", R: "r", I: "i", Load: "load", Store: "store",
	Branch: "branch", Jal: "jal", Upper: "upper", Shift5: "shift5",
	Shift6: "shift6", RegPair: "regpair",
	CLoad: "c.load", CStore: "c.store", CWide: "c.wide", CImm: "c.imm",
	CAndi: "c.andi", CShiftR3: "c.shift3", CShiftR5: "c.shift5",
	CShift64R3: "c.shift64.3", CShift64R5: "c.shift64.5", CArith: "c.arith",
	CBranch: "c.branch", CLoadSP: "c.loadsp", CStoreSP: "c.storesp",
	CAdd: "c.add", CMove: "c.mv", CJr: "c.jr", CJalr: "c.jalr",
}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("layout(%d)", uint8(l))
}
