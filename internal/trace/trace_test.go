package trace

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instfusion/internal/disasm"
)

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var out []Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, ev)
	}
}

func TestWriterFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.Translate(0, 0x1000, []uint32{0x13, 0x8067}))
	require.NoError(t, w.Exec(0, 0x1000))
	require.NoError(t, w.Exit())
	require.NoError(t, w.Close())

	want := `{"op":"tb","cpu":0,"pc":4096,"words":[19,32871]}
{"op":"exec","cpu":0,"pc":4096}
{"op":"exit","cpu":0,"pc":0}
`
	assert.Equal(t, want, buf.String())
}

func TestWriterClosed(t *testing.T) {
	w := NewWriter(io.Discard)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Exec(0, 0), ErrWriterClosed)
	assert.ErrorIs(t, w.Flush(), ErrWriterClosed)
}

func TestReaderSkipsBlankLines(t *testing.T) {
	in := "\n" + `{"op":"tb","cpu":1,"pc":8192,"words":[19]}` + "\n\n" + `{"op":"exec","cpu":1,"pc":8192}` + "\n"
	evs := readAll(t, NewReader(strings.NewReader(in)))
	require.Len(t, evs, 2)
	assert.Equal(t, OpTranslate, evs[0].Op)
	assert.Equal(t, 1, evs[0].CPU)
	assert.Equal(t, uint64(0x2000), evs[0].PC)
	assert.Equal(t, OpExec, evs[1].Op)
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bad json", `{"op":`, "line 1"},
		{"unknown op", `{"op":"jump"}`, `unknown op "jump"`},
		{"missing op", `{"pc":1}`, "missing op"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReader(strings.NewReader(tt.in)).Next()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEventBlock(t *testing.T) {
	ev := Event{Op: OpTranslate, PC: 0x1000, Code: "130000006780000005450100"}
	words, err := ev.Block()
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x13, 0x8067, 0x4505, 0x0001}, words)

	ev = Event{Op: OpTranslate, Words: []uint32{1, 2}, Code: "zz"}
	words, err = ev.Block()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2}, words)

	_, err = (&Event{Op: OpTranslate}).Block()
	assert.ErrorIs(t, err, ErrNoCode)

	_, err = (&Event{Op: OpTranslate, Code: "zz"}).Block()
	assert.Error(t, err)

	_, err = (&Event{Op: OpTranslate, Code: "1300"}).Block()
	assert.ErrorIs(t, err, disasm.ErrTruncated)
}

func TestFileRoundTripGzip(t *testing.T) {
	for _, name := range []string{"run.jsonl", "run.jsonl.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			w, err := Create(path)
			require.NoError(t, err)
			require.NoError(t, w.Translate(0, 0x1000, []uint32{0x4505, 0x00b50533}))
			for i := 0; i < 3; i++ {
				require.NoError(t, w.Exec(0, 0x1000))
			}
			require.NoError(t, w.Exit())
			require.NoError(t, w.Close())

			r, err := Open(path)
			require.NoError(t, err)
			defer r.Close()
			evs := readAll(t, r)
			require.Len(t, evs, 5)
			assert.Equal(t, []uint32{0x4505, 0x00b50533}, evs[0].Words)
			assert.Equal(t, OpExit, evs[4].Op)
			assert.Equal(t, 5, r.Line())
		})
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.jsonl"))
	assert.Error(t, err)
}
