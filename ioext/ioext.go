// Package ioext provides small extensions over io.Reader and io.Writer:
// whole-stream reads, fixed-size reads, and write-then-flush.
package ioext

import (
	"bufio"
	"io"
)

// ReadString reads r until EOF and returns the contents as a string.
func ReadString(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBytes reads r until EOF and returns the contents.
func ReadBytes(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// ReadExact reads exactly n bytes from r. If fewer bytes are available the
// error from io.ReadFull (io.ErrUnexpectedEOF, or io.EOF when nothing was
// read) is returned and no data is.
func ReadExact(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

type flusher interface {
	Flush() error
}

// WriteFlush writes s to w, then flushes w if it has a Flush method.
func WriteFlush(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Buffered wraps r in a buffered reader. If r is already a *bufio.Reader it
// is returned unchanged.
func Buffered(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// BufferedWriter wraps w in a buffered writer. If w is already a
// *bufio.Writer it is returned unchanged.
func BufferedWriter(w io.Writer) *bufio.Writer {
	if bw, ok := w.(*bufio.Writer); ok {
		return bw
	}
	return bufio.NewWriter(w)
}
