package elfx

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// buildELF returns a minimal ELF64 image with one R+X PT_LOAD segment
// holding code at vaddr. No section headers.
func buildELF(machine elf.Machine, vaddr uint64, code []byte) []byte {
	const ehsize, phentsize = 64, 56
	var b bytes.Buffer
	le := binary.LittleEndian

	ident := [elf.EI_NIDENT]byte{0x7f, 'E', 'L', 'F', byte(elf.ELFCLASS64), byte(elf.ELFDATA2LSB), byte(elf.EV_CURRENT)}
	b.Write(ident[:])
	binary.Write(&b, le, uint16(elf.ET_EXEC))
	binary.Write(&b, le, uint16(machine))
	binary.Write(&b, le, uint32(elf.EV_CURRENT))
	binary.Write(&b, le, vaddr)          // entry
	binary.Write(&b, le, uint64(ehsize)) // phoff
	binary.Write(&b, le, uint64(0))      // shoff
	binary.Write(&b, le, uint32(0))      // flags
	binary.Write(&b, le, uint16(ehsize))
	binary.Write(&b, le, uint16(phentsize))
	binary.Write(&b, le, uint16(1)) // phnum
	binary.Write(&b, le, uint16(64))
	binary.Write(&b, le, uint16(0)) // shnum
	binary.Write(&b, le, uint16(0)) // shstrndx

	binary.Write(&b, le, uint32(elf.PT_LOAD))
	binary.Write(&b, le, uint32(elf.PF_R|elf.PF_X))
	binary.Write(&b, le, uint64(ehsize+phentsize)) // offset
	binary.Write(&b, le, vaddr)
	binary.Write(&b, le, vaddr)
	binary.Write(&b, le, uint64(len(code)))
	binary.Write(&b, le, uint64(len(code)))
	binary.Write(&b, le, uint64(4))

	b.Write(code)
	return b.Bytes()
}

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "prog.elf")
	if err := os.WriteFile(p, data, 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestOpenCode(t *testing.T) {
	code := []byte{0x13, 0x05, 0x15, 0x00, 0x67, 0x80, 0x00, 0x00} // addi a0,a0,1 ; ret
	data := buildELF(elf.EM_RISCV, 0x10000, code)
	if !IsELF(data) {
		t.Fatal("IsELF = false")
	}

	ef, err := Open(writeTemp(t, data))
	if err != nil {
		t.Fatal(err)
	}
	defer ef.Close()

	if ef.FileSize() != int64(len(data)) {
		t.Errorf("FileSize = %d, want %d", ef.FileSize(), len(data))
	}
	if ef.Entry() != 0x10000 {
		t.Errorf("Entry = %#x", ef.Entry())
	}
	segs := ef.LoadSegments()
	if len(segs) != 1 || segs[0].Flags&elf.PF_X == 0 {
		t.Fatalf("segments = %+v", segs)
	}

	base, got, err := ef.Code()
	if err != nil {
		t.Fatal(err)
	}
	if base != 0x10000 {
		t.Errorf("base = %#x", base)
	}
	if !bytes.Equal(got, code) {
		t.Errorf("code = % x, want % x", got, code)
	}

	if _, err := ef.VAToFileOffset(0x20000); !errors.Is(err, ErrNoSegment) {
		t.Errorf("VAToFileOffset outside segment: %v", err)
	}
	if _, _, err := ef.Symbol("main"); !errors.Is(err, ErrNoSymbol) {
		t.Errorf("Symbol without symtab: %v", err)
	}
	if n := len(ef.FuncSymbols()); n != 0 {
		t.Errorf("FuncSymbols = %d entries, want 0", n)
	}
}

func TestOpenRejectsNonELF(t *testing.T) {
	_, err := Open(writeTemp(t, []byte("not an ELF file at all")))
	if !errors.Is(err, ErrNotELF) {
		t.Fatalf("err = %v, want ErrNotELF", err)
	}
	if IsELF([]byte("not an ELF")) {
		t.Error("IsELF on garbage = true")
	}
}

func TestOpenRejectsOtherMachine(t *testing.T) {
	data := buildELF(elf.EM_AARCH64, 0x1000, []byte{0xc0, 0x03, 0x5f, 0xd6})
	_, err := Open(writeTemp(t, data))
	if !errors.Is(err, ErrNotRISCV) {
		t.Fatalf("err = %v, want ErrNotRISCV", err)
	}
}
