package decode

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instfusion/internal/isa"
)

func newDecoder(t *testing.T) *Decoder {
	t.Helper()
	d, err := New(nil)
	require.NoError(t, err)
	return d
}

func TestClassifyEcall(t *testing.T) {
	in := newDecoder(t).Classify(0x00000073)
	assert.Equal(t, "ecall", in.Name())
	assert.Equal(t, isa.Operands{}, in.Operands)
	assert.Equal(t, "ecall", in.String())
}

func TestClassifyTotal(t *testing.T) {
	d := newDecoder(t)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20000; i++ {
		w := r.Uint32()
		in := d.Classify(w)
		require.NotNil(t, in.Pattern, "word 0x%08x", w)
		assert.True(t, in.Pattern.Matches(w))
	}
}

func TestClassifyRendersOperands(t *testing.T) {
	d := newDecoder(t)
	tests := []struct {
		word uint32
		want string
	}{
		{0x00b50533, "add$rd@10,$rs1@10,$rs2@11"},
		{0x00b50063, "beq$rs1@10,$rs2@11"},
		{0x02151513, "slli$rd@10,$rs1@10,$sh@33"},
		{0x852e, "c.mv$rd@10,$rs1@0,$rs2@11"},
		{0x8082, "c.jr$rs1@1"},
		{0x0000000f, "fence"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.Classify(tt.word).String(), "word 0x%08x", tt.word)
	}
}

func TestUnclassifiedCounted(t *testing.T) {
	d := newDecoder(t)
	d.Classify(0x00000073)
	in := d.Classify(0xffffffff)
	assert.True(t, in.Unclassified())
	assert.Equal(t, isa.UnclassifiedName, in.Name())

	n, last := d.Unclassified()
	assert.Equal(t, uint64(1), n)
	assert.Equal(t, uint32(0xffffffff), last)
}

func TestClassifyAll(t *testing.T) {
	ins := newDecoder(t).ClassifyAll([]uint32{0x4505, 0x00b50533, 0x8082})
	require.Len(t, ins, 3)
	assert.Equal(t, "c.li", ins[0].Name())
	assert.Equal(t, "add", ins[1].Name())
	assert.Equal(t, "c.jr", ins[2].Name())
}

func TestNewRejectsTableWithoutFallback(t *testing.T) {
	_, err := New(&isa.Table{})
	assert.ErrorIs(t, err, isa.ErrNoFallback)
}
