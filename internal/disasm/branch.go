package disasm

// RISC-V control-transfer detection from raw encodings, both 32-bit and
// compressed. These functions identify basic-block terminators and extract
// branch targets.

// BranchInfo describes a decoded control transfer.
type BranchInfo struct {
	Target   uint64 // absolute target address (0 if indirect)
	Cond     bool   // true if conditional (has fallthrough)
	IsRet    bool   // true for jalr x0, 0(ra) and c.jr ra
	Indirect bool   // target comes from a register
	Link     bool   // writes a return address (call)
}

const regRA = 1

// DecodeBranch attempts to decode a control transfer from raw encoding at the given PC.
// Returns nil if the instruction does not transfer control.
func DecodeBranch(raw uint32, pc uint64) *BranchInfo {
	if Length(uint16(raw)) == 2 {
		return decodeCompressedBranch(uint16(raw), pc)
	}

	rd := (raw >> 7) & 0x1f
	rs1 := (raw >> 15) & 0x1f

	switch raw & 0x7f {
	case 0x6f: // JAL
		off := signExtend((raw>>31)<<20|((raw>>12)&0xff)<<12|((raw>>20)&1)<<11|((raw>>21)&0x3ff)<<1, 21)
		return &BranchInfo{Target: uint64(int64(pc) + int64(off)), Link: rd != 0}

	case 0x67: // JALR
		if (raw>>12)&7 != 0 {
			return nil
		}
		return &BranchInfo{
			Indirect: true,
			Link:     rd != 0,
			IsRet:    rd == 0 && rs1 == regRA && raw>>20 == 0,
		}

	case 0x63: // BEQ..BGEU
		switch (raw >> 12) & 7 {
		case 2, 3:
			return nil
		}
		off := signExtend((raw>>31)<<12|((raw>>7)&1)<<11|((raw>>25)&0x3f)<<5|((raw>>8)&0xf)<<1, 13)
		return &BranchInfo{Target: uint64(int64(pc) + int64(off)), Cond: true}
	}
	return nil
}

func decodeCompressedBranch(raw uint16, pc uint64) *BranchInfo {
	bit := func(i uint) uint32 { return uint32(raw>>i) & 1 }
	w := uint32(raw)

	switch {
	case w&0xe003 == 0xa001: // C.J
		v := bit(12)<<11 | bit(11)<<4 | ((w>>9)&3)<<8 | bit(8)<<10 |
			bit(7)<<6 | bit(6)<<7 | ((w>>3)&7)<<1 | bit(2)<<5
		return &BranchInfo{Target: uint64(int64(pc) + int64(signExtend(v, 12)))}

	case w&0xe003 == 0xc001, w&0xe003 == 0xe001: // C.BEQZ, C.BNEZ
		v := bit(12)<<8 | ((w>>10)&3)<<3 | ((w>>5)&3)<<6 | ((w>>3)&3)<<1 | bit(2)<<5
		return &BranchInfo{Target: uint64(int64(pc) + int64(signExtend(v, 9))), Cond: true}

	case w&0xf07f == 0x8002 && (w>>7)&0x1f != 0: // C.JR
		return &BranchInfo{Indirect: true, IsRet: (w>>7)&0x1f == regRA}

	case w&0xf07f == 0x9002 && (w>>7)&0x1f != 0: // C.JALR
		return &BranchInfo{Indirect: true, Link: true}
	}
	return nil
}

// signExtend sign-extends a value from the given bit width to int32.
func signExtend(val uint32, bits int) int32 {
	sign := uint32(1) << (bits - 1)
	mask := sign - 1
	if val&sign != 0 {
		return int32(val | ^mask) // negative
	}
	return int32(val & mask)
}

// IsBranchTerminator returns true if the instruction terminates a basic block.
// This includes jumps, conditional branches and returns but NOT linking
// calls (they return to the next instruction).
func IsBranchTerminator(raw uint32) bool {
	bi := DecodeBranch(raw, 0)
	return bi != nil && !bi.Link
}
