package fasta

import (
	"bufio"
	"io"
)

// Writer emits single-line FASTA: a header line and the whole sequence on
// the next line. Call Flush when done.
type Writer struct {
	bw *bufio.Writer
	n  int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 64<<10)}
}

// Write appends one record.
func (w *Writer) Write(r Record) error {
	if err := w.bw.WriteByte('>'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(r.Header()); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(r.Seq); err != nil {
		return err
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	w.n++
	return nil
}

// Count is the number of records written.
func (w *Writer) Count() int { return w.n }

func (w *Writer) Flush() error { return w.bw.Flush() }
