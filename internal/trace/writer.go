package trace

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
)

// ErrWriterClosed is returned by writes after Close.
var ErrWriterClosed = errors.New("trace: writer is closed")

// Writer encodes events as JSON Lines. It is safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	enc     *json.Encoder
	buf     *bufio.Writer
	closers []io.Closer // owned, closed in order
	closed  bool
}

// NewWriter writes events to w. w is not closed by Close.
func NewWriter(w io.Writer) *Writer {
	buf := bufio.NewWriterSize(w, 64*1024)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc, buf: buf}
}

// Create truncates or creates path and returns a Writer owning it. Names
// ending in .gz are gzip-compressed.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		w := NewWriter(f)
		w.closers = []io.Closer{f}
		return w, nil
	}
	gz := gzip.NewWriter(f)
	w := NewWriter(gz)
	w.closers = []io.Closer{gz, f}
	return w, nil
}

// Write encodes one event.
func (w *Writer) Write(ev Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}
	return w.enc.Encode(&ev)
}

// Translate records a block translation.
func (w *Writer) Translate(cpu int, pc uint64, words []uint32) error {
	return w.Write(Event{Op: OpTranslate, CPU: cpu, PC: pc, Words: words})
}

// Exec records one block execution.
func (w *Writer) Exec(cpu int, pc uint64) error {
	return w.Write(Event{Op: OpExec, CPU: cpu, PC: pc})
}

// Exit records the end of the run.
func (w *Writer) Exit() error {
	return w.Write(Event{Op: OpExit})
}

// Flush writes buffered events to the underlying writer.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWriterClosed
	}
	return w.buf.Flush()
}

// Close flushes and closes owned files. Closing twice is a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	err := w.buf.Flush()
	for _, c := range w.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
