// Package trace reads and writes dynamic execution traces as JSON Lines.
//
// Each line is one event:
//
//	{"op":"tb","cpu":0,"pc":4096,"words":[19,32871]}
//	{"op":"tb","cpu":0,"pc":8192,"code":"1300000067800000"}
//	{"op":"exec","cpu":0,"pc":4096}
//	{"op":"exit"}
//
// "tb" announces a translated block, either as instruction words or as raw
// little-endian code bytes in hex. "exec" records one execution of a
// previously announced block. Files ending in .gz are gzip-compressed.
package trace

import (
	"encoding/hex"
	"errors"
	"fmt"

	"instfusion/internal/disasm"
)

// Op is the event kind.
type Op string

const (
	OpTranslate Op = "tb"
	OpExec      Op = "exec"
	OpExit      Op = "exit"
)

// ErrNoCode is returned for a translation event without words or code.
var ErrNoCode = errors.New("translation without code")

// Event is one trace record.
type Event struct {
	Op    Op       `json:"op"`
	CPU   int      `json:"cpu"`
	PC    uint64   `json:"pc"`
	Words []uint32 `json:"words,omitempty"`
	Code  string   `json:"code,omitempty"`
}

// Block returns the instruction words of a translation event.
func (e *Event) Block() ([]uint32, error) {
	if len(e.Words) > 0 {
		return e.Words, nil
	}
	if e.Code == "" {
		return nil, fmt.Errorf("trace: block %#x: %w", e.PC, ErrNoCode)
	}
	data, err := hex.DecodeString(e.Code)
	if err != nil {
		return nil, fmt.Errorf("trace: block %#x: %w", e.PC, err)
	}
	words, err := disasm.Split(data)
	if err != nil {
		return nil, fmt.Errorf("trace: block %#x: %w", e.PC, err)
	}
	return words, nil
}

func (e *Event) validate() error {
	switch e.Op {
	case OpTranslate, OpExec, OpExit:
		return nil
	case "":
		return errors.New("missing op")
	default:
		return fmt.Errorf("unknown op %q", e.Op)
	}
}
