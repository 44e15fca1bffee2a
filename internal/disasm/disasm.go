// Package disasm provides RISC-V disassembly for raw code images and trace
// blocks. Reference text comes from riscv64asm; fusion classification is
// attached through annotators.
package disasm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/arch/riscv64/riscv64asm"
)

// ErrTruncated is returned when a code image ends inside an instruction.
var ErrTruncated = errors.New("truncated instruction")

// Inst is a decoded RISC-V instruction with address and raw encoding.
type Inst struct {
	Addr     uint64
	Raw      uint32
	Size     int // 2 for RVC, 4 otherwise
	Mnemonic string
	Operands string
	Text     string // full disassembly line
}

// SymbolLookup resolves an address to a symbolic name. Returns ("", false) if unknown.
type SymbolLookup func(addr uint64) (name string, ok bool)

// Options controls disassembly behavior.
type Options struct {
	BaseAddr uint64       // VA of the first byte in Data
	MaxSteps int          // maximum instructions to decode; 0 = 10M
	Symbols  SymbolLookup // optional symbol resolver
}

const defaultMaxSteps = 10_000_000

func (o Options) effectiveMax() int {
	if o.MaxSteps > 0 {
		return o.MaxSteps
	}
	return defaultMaxSteps
}

// Length returns the encoded size of the instruction whose low halfword is lo.
func Length(lo uint16) int {
	if lo&3 == 3 {
		return 4
	}
	return 2
}

// Split cuts a little-endian code image into instruction words. Compressed
// instructions occupy the low 16 bits of their word.
func Split(data []byte) ([]uint32, error) {
	var words []uint32
	for off := 0; off < len(data); {
		if off+2 > len(data) {
			return words, fmt.Errorf("disasm: offset %d: %w", off, ErrTruncated)
		}
		lo := binary.LittleEndian.Uint16(data[off:])
		if Length(lo) == 2 {
			words = append(words, uint32(lo))
			off += 2
			continue
		}
		if off+4 > len(data) {
			return words, fmt.Errorf("disasm: offset %d: %w", off, ErrTruncated)
		}
		words = append(words, binary.LittleEndian.Uint32(data[off:]))
		off += 4
	}
	return words, nil
}

// Join is the inverse of Split.
func Join(words []uint32) []byte {
	out := make([]byte, 0, len(words)*4)
	for _, w := range words {
		if Length(uint16(w)) == 2 {
			out = binary.LittleEndian.AppendUint16(out, uint16(w))
			continue
		}
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}

// Disassemble decodes RISC-V instructions from a byte region.
// Returns decoded instructions up to MaxSteps or end of data. A trailing
// partial instruction is dropped.
func Disassemble(data []byte, opts Options) []Inst {
	maxSteps := opts.effectiveMax()

	var result []Inst
	for off := 0; off+2 <= len(data) && len(result) < maxSteps; {
		size := Length(binary.LittleEndian.Uint16(data[off:]))
		if off+size > len(data) {
			break
		}
		var raw uint32
		if size == 2 {
			raw = uint32(binary.LittleEndian.Uint16(data[off:]))
		} else {
			raw = binary.LittleEndian.Uint32(data[off:])
		}
		result = append(result, decodeAt(raw, size, opts.BaseAddr+uint64(off)))
		off += size
	}
	return result
}

// DisassembleWords decodes a block already split into words, starting at addr.
func DisassembleWords(words []uint32, addr uint64) []Inst {
	result := make([]Inst, 0, len(words))
	for _, w := range words {
		size := Length(uint16(w))
		result = append(result, decodeAt(w, size, addr))
		addr += uint64(size)
	}
	return result
}

func decodeAt(raw uint32, size int, addr uint64) Inst {
	var mnemonic, operands, text string
	if s := disasmOne(raw); s != "" {
		text = s
		// Split into mnemonic and operands.
		parts := strings.SplitN(text, " ", 2)
		mnemonic = parts[0]
		if len(parts) > 1 {
			operands = parts[1]
		}
	} else if size == 2 {
		mnemonic = ".half"
		operands = fmt.Sprintf("0x%04x", raw)
		text = ".half " + operands
	} else {
		mnemonic = ".word"
		operands = fmt.Sprintf("0x%08x", raw)
		text = ".word " + operands
	}
	return Inst{
		Addr:     addr,
		Raw:      raw,
		Size:     size,
		Mnemonic: mnemonic,
		Operands: operands,
		Text:     text,
	}
}

// Format renders a slice of instructions as stable text output.
// Each line: <addr>  <hex bytes>  <disasm>  ; <comments>
// Annotators are checked in order; first non-empty result is used.
func Format(insts []Inst, lookup SymbolLookup, annotators ...Annotator) string {
	var b strings.Builder
	for _, inst := range insts {
		// Address.
		fmt.Fprintf(&b, "0x%08x  ", inst.Addr)
		// Raw bytes (little-endian hex), padded so text columns line up.
		if inst.Size == 2 {
			fmt.Fprintf(&b, "%02x %02x        ", byte(inst.Raw), byte(inst.Raw>>8))
		} else {
			fmt.Fprintf(&b, "%02x %02x %02x %02x  ",
				byte(inst.Raw), byte(inst.Raw>>8), byte(inst.Raw>>16), byte(inst.Raw>>24))
		}
		// Disassembly.
		b.WriteString(inst.Text)
		// Symbol comment.
		commented := false
		if lookup != nil {
			if name, ok := lookup(inst.Addr); ok {
				fmt.Fprintf(&b, "  ; <%s>", name)
				commented = true
			}
		}
		if !commented {
			for _, ann := range annotators {
				if s := ann(inst); s != "" {
					fmt.Fprintf(&b, "  ; %s", s)
					break
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// disasmOne decodes a single RISC-V instruction from its raw encoding in
// GNU syntax. Returns "" if decoding fails.
func disasmOne(raw uint32) string {
	var buf []byte
	if Length(uint16(raw)) == 2 {
		buf = binary.LittleEndian.AppendUint16(nil, uint16(raw))
	} else {
		buf = binary.LittleEndian.AppendUint32(nil, raw)
	}
	inst, err := riscv64asm.Decode(buf)
	if err != nil {
		return ""
	}
	return riscv64asm.GNUSyntax(inst)
}

// PlaceholderLookup returns a SymbolLookup over a fixed address→name map.
func PlaceholderLookup(entryPoints map[uint64]string) SymbolLookup {
	return func(addr uint64) (string, bool) {
		if name, ok := entryPoints[addr]; ok {
			return name, true
		}
		return "", false
	}
}
