package fasta

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gbkit/internal/fileio"
)

// DefaultOnelinePath names the output of Unfold when none is given:
// "output_<base>" next to the input.
func DefaultOnelinePath(in string) string {
	if in == fileio.Stdio {
		return fileio.Stdio
	}
	return filepath.Join(filepath.Dir(in), "output_"+filepath.Base(in))
}

// ErrSameFile reports an output path that names the input file.
var ErrSameFile = errors.New("output would overwrite input")

// sameFile reports whether in and out name one existing file.
func sameFile(in, out string) bool {
	if in == fileio.Stdio || out == fileio.Stdio {
		return false
	}
	if filepath.Clean(in) == filepath.Clean(out) {
		return true
	}
	a, err := os.Stat(in)
	if err != nil {
		return false
	}
	b, err := os.Stat(out)
	if err != nil {
		return false
	}
	return os.SameFile(a, b)
}

// Unfold rewrites the FASTA at in so that every sequence occupies one line,
// writing to out. It returns the number of records written.
func Unfold(ctx context.Context, in, out string) (int, error) {
	if sameFile(in, out) {
		return 0, fmt.Errorf("%s: %w", out, ErrSameFile)
	}
	wc, err := fileio.Create(out)
	if err != nil {
		return 0, err
	}
	fw := NewWriter(wc)
	serr := ScanPath(ctx, in, fw.Write)
	ferr := fw.Flush()
	cerr := wc.Close()
	switch {
	case serr != nil:
		return fw.Count(), serr
	case ferr != nil:
		return fw.Count(), fmt.Errorf("write %s: %w", out, ferr)
	case cerr != nil:
		return fw.Count(), fmt.Errorf("close %s: %w", out, cerr)
	}
	return fw.Count(), nil
}
