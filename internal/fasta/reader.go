// internal/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"gbkit/internal/fileio"
)

// Record is one FASTA entry with its sequence joined onto a single line.
type Record struct {
	ID   string
	Desc string
	Seq  string
}

// Header returns the header text without the leading '>'.
func (r Record) Header() string {
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// Scan reads FASTA from r, emitting one Record per entry. Sequence lines are
// concatenated without separators; the alphabet is not validated.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := seqio.NewScanner(biofasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein)))
	for sc.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return fmt.Errorf("fasta: unexpected sequence type %T", sc.Seq())
		}
		if err := emit(Record{ID: s.Name(), Desc: s.Description(), Seq: lettersString(s.Seq)}); err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return nil
}

// ScanPath opens path ("-" for stdin, gzip detected) and scans it.
func ScanPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := fileio.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Scan(ctx, rc, emit)
}

// ReadAll returns every record in r.
func ReadAll(r io.Reader) ([]Record, error) {
	var out []Record
	err := Scan(context.Background(), r, func(rec Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

func lettersString(ls alphabet.Letters) string {
	b := make([]byte, len(ls))
	for i, l := range ls {
		b[i] = byte(l)
	}
	return string(b)
}
