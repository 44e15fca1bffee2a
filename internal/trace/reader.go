package trace

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLine = 16 << 20

// Reader decodes events one line at a time.
type Reader struct {
	sc      *bufio.Scanner
	line    int
	closers []io.Closer
}

// NewReader reads events from r. r is not closed by Close.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc}
}

// Open opens a trace file, decompressing it when the name ends in .gz.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: open %s: %w", path, err)
	}
	if !strings.HasSuffix(path, ".gz") {
		r := NewReader(f)
		r.closers = []io.Closer{f}
		return r, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("trace: gzip %s: %w", path, err)
	}
	r := NewReader(gz)
	r.closers = []io.Closer{gz, f}
	return r, nil
}

// Line returns the number of the last line read.
func (r *Reader) Line() int { return r.line }

// Next returns the next event, or io.EOF after the last one. Blank lines
// are skipped.
func (r *Reader) Next() (Event, error) {
	for r.sc.Scan() {
		r.line++
		b := bytes.TrimSpace(r.sc.Bytes())
		if len(b) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(b, &ev); err != nil {
			return Event{}, fmt.Errorf("trace: line %d: %w", r.line, err)
		}
		if err := ev.validate(); err != nil {
			return Event{}, fmt.Errorf("trace: line %d: %w", r.line, err)
		}
		return ev, nil
	}
	if err := r.sc.Err(); err != nil {
		return Event{}, fmt.Errorf("trace: line %d: %w", r.line+1, err)
	}
	return Event{}, io.EOF
}

// Close releases files opened by Open.
func (r *Reader) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil
	return first
}
