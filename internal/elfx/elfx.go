// Package elfx loads RV64 code images and function symbols from ELF files.
package elfx

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

var (
	ErrNotELF    = errors.New("elfx: not an ELF file")
	ErrNotRISCV  = errors.New("elfx: not RISC-V (EM_RISCV)")
	ErrNot64Bit  = errors.New("elfx: not 64-bit ELF")
	ErrNoSymbol  = errors.New("elfx: symbol not found")
	ErrNoSegment = errors.New("elfx: no PT_LOAD segment covers address")
	ErrNoCode    = errors.New("elfx: no executable segment")
)

var magic = []byte(elf.ELFMAG)

// IsELF reports whether data starts with the ELF magic.
func IsELF(data []byte) bool {
	return bytes.HasPrefix(data, magic)
}

// File wraps a debug/elf.File with helpers for RV64 code extraction.
type File struct {
	ELF  *elf.File
	raw  io.ReaderAt
	size int64
}

// Open opens an ELF file and validates it is a 64-bit RISC-V object.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("elfx: open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("elfx: stat: %w", err)
	}

	ef, err := elf.NewFile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrNotELF, err)
	}

	if ef.Class != elf.ELFCLASS64 {
		f.Close()
		return nil, ErrNot64Bit
	}
	if ef.Machine != elf.EM_RISCV {
		f.Close()
		return nil, ErrNotRISCV
	}

	return &File{ELF: ef, raw: f, size: info.Size()}, nil
}

// Close releases resources.
func (f *File) Close() error {
	if c, ok := f.raw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// FileSize returns the size of the underlying file.
func (f *File) FileSize() int64 { return f.size }

// Entry returns the ELF entry point.
func (f *File) Entry() uint64 { return f.ELF.Entry }

// Symbol looks up a symbol by exact name in .symtab, then .dynsym.
// Returns the symbol's virtual address and size.
func (f *File) Symbol(name string) (addr, size uint64, err error) {
	for _, s := range f.symbols() {
		if s.Name == name {
			return s.Value, s.Size, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %s", ErrNoSymbol, name)
}

func (f *File) symbols() []elf.Symbol {
	syms, _ := f.ELF.Symbols()
	dyn, _ := f.ELF.DynamicSymbols()
	return append(syms, dyn...)
}

// FuncSymbols maps function start addresses to names. Files without
// symbol tables yield an empty map.
func (f *File) FuncSymbols() map[uint64]string {
	out := make(map[uint64]string)
	for _, s := range f.symbols() {
		if elf.ST_TYPE(s.Info) != elf.STT_FUNC || s.Value == 0 || s.Name == "" {
			continue
		}
		if _, ok := out[s.Value]; !ok {
			out[s.Value] = s.Name
		}
	}
	return out
}

// VAToFileOffset converts a virtual address to a file offset using PT_LOAD segments.
func (f *File) VAToFileOffset(va uint64) (uint64, error) {
	for _, p := range f.ELF.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		if va >= p.Vaddr && va < p.Vaddr+p.Memsz {
			offset := va - p.Vaddr + p.Off
			if offset >= uint64(f.size) {
				return 0, fmt.Errorf("elfx: VA 0x%x maps to offset 0x%x beyond file size 0x%x", va, offset, f.size)
			}
			return offset, nil
		}
	}
	return 0, fmt.Errorf("%w: VA 0x%x", ErrNoSegment, va)
}

// ReadBytesAtVA reads n bytes starting at the given virtual address.
func (f *File) ReadBytesAtVA(va uint64, n int) ([]byte, error) {
	off, err := f.VAToFileOffset(va)
	if err != nil {
		return nil, err
	}
	// Clamp to file size.
	avail := f.size - int64(off)
	if avail <= 0 {
		return nil, fmt.Errorf("elfx: offset 0x%x at or past end of file", off)
	}
	if int64(n) > avail {
		n = int(avail)
	}
	buf := make([]byte, n)
	_, err = f.raw.ReadAt(buf, int64(off))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("elfx: read at 0x%x: %w", off, err)
	}
	return buf, nil
}

// SegmentInfo describes a PT_LOAD segment.
type SegmentInfo struct {
	Vaddr  uint64
	Memsz  uint64
	Filesz uint64
	Offset uint64
	Flags  elf.ProgFlag
}

// LoadSegments returns all PT_LOAD segments.
func (f *File) LoadSegments() []SegmentInfo {
	var segs []SegmentInfo
	for _, p := range f.ELF.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		segs = append(segs, SegmentInfo{
			Vaddr:  p.Vaddr,
			Memsz:  p.Memsz,
			Filesz: p.Filesz,
			Offset: p.Off,
			Flags:  p.Flags,
		})
	}
	return segs
}

// Code returns the file-backed bytes of the lowest executable PT_LOAD
// segment and its load address.
func (f *File) Code() (base uint64, data []byte, err error) {
	var exec []SegmentInfo
	for _, s := range f.LoadSegments() {
		if s.Flags&elf.PF_X != 0 && s.Filesz > 0 {
			exec = append(exec, s)
		}
	}
	if len(exec) == 0 {
		return 0, nil, ErrNoCode
	}
	sort.Slice(exec, func(i, j int) bool { return exec[i].Vaddr < exec[j].Vaddr })
	s := exec[0]
	data, err = f.ReadBytesAtVA(s.Vaddr, int(s.Filesz))
	if err != nil {
		return 0, nil, err
	}
	return s.Vaddr, data, nil
}
