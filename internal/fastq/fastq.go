// Package fastq filters sequencing reads by GC content, length and mean quality.
package fastq

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofastq "github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

// phredOffset is the Sanger / Illumina 1.8+ quality encoding offset.
const phredOffset = 33

// Read is one FASTQ entry. Qual holds decoded phred scores.
type Read struct {
	ID   string
	Desc string
	Seq  string
	Qual []byte
}

// MeanQuality is the mean phred score rounded half to even (0 for an empty read).
func (r Read) MeanQuality() int {
	if len(r.Qual) == 0 {
		return 0
	}
	sum := 0
	for _, q := range r.Qual {
		sum += int(q)
	}
	return int(math.RoundToEven(float64(sum) / float64(len(r.Qual))))
}

// Scan reads FASTQ from r, calling emit for every read.
func Scan(ctx context.Context, r io.Reader, emit func(Read) error) error {
	tmpl := linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger)
	sc := seqio.NewScanner(biofastq.NewReader(r, tmpl))
	for sc.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s, ok := sc.Seq().(*linear.QSeq)
		if !ok {
			return fmt.Errorf("fastq: unexpected sequence type %T", sc.Seq())
		}
		rd := Read{
			ID:   s.Name(),
			Desc: s.Description(),
			Qual: make([]byte, len(s.Seq)),
		}
		seq := make([]byte, len(s.Seq))
		for i, ql := range s.Seq {
			seq[i] = byte(ql.L)
			rd.Qual[i] = byte(ql.Q)
		}
		rd.Seq = string(seq)
		if err := emit(rd); err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("fastq scan: %w", err)
	}
	return nil
}

// Write emits r as a four-line FASTQ entry.
func Write(w *bufio.Writer, r Read) error {
	w.WriteByte('@')
	w.WriteString(r.ID)
	if r.Desc != "" {
		w.WriteByte(' ')
		w.WriteString(r.Desc)
	}
	w.WriteByte('\n')
	w.WriteString(r.Seq)
	w.WriteString("\n+\n")
	for _, q := range r.Qual {
		w.WriteByte(q + phredOffset)
	}
	return w.WriteByte('\n')
}

// ErrBounds reports an inverted or out-of-range bound.
var ErrBounds = errors.New("invalid bounds")
