package decode

import "fmt"

// Key identifies "this instruction with these operands" for fusion counting.
// The pattern ID occupies bits 63..32 and the layout's packed operands bits
// 31..0, so keys from different patterns never collide.
type Key uint64

const idShift = 32

// Identity returns the fusion key of in. Equal patterns with equal
// fusion-relevant operands map to the same key.
func Identity(in Inst) Key {
	return Key(uint64(in.Pattern.ID)<<idShift | uint64(in.Pattern.Layout.Pack(in.Operands)))
}

// PatternKey returns the operand-free key of in's pattern. Used when
// counting by mnemonic only.
func PatternKey(in Inst) Key {
	return Key(uint64(in.Pattern.ID) << idShift)
}

// PatternID returns the table index folded into k.
func (k Key) PatternID() int { return int(uint64(k) >> idShift) }

// Operands returns the packed operand lanes of k.
func (k Key) Operands() uint32 { return uint32(k) }

func (k Key) String() string {
	return fmt.Sprintf("%d:%08x", k.PatternID(), k.Operands())
}

// KeyFunc selects how instructions are folded into keys.
type KeyFunc func(Inst) Key
