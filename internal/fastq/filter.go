package fastq

import (
	"bufio"
	"context"
	"fmt"

	"gbkit/internal/fileio"
	"gbkit/internal/seqtools"
)

// MaxLength is the default upper length bound (2^32).
const MaxLength = 1 << 32

// Bounds is an inclusive [Min, Max] range.
type Bounds struct {
	Min, Max float64
}

func (b Bounds) contains(v float64) bool { return v >= b.Min && v <= b.Max }

// UpperBound is shorthand for a bound that starts at zero.
func UpperBound(hi float64) Bounds { return Bounds{Max: hi} }

// Filter keeps reads whose GC percentage and length fall within bounds and
// whose mean quality reaches MinQuality.
type Filter struct {
	GC         Bounds
	Length     Bounds
	MinQuality int
}

// DefaultFilter keeps everything.
func DefaultFilter() Filter {
	return Filter{
		GC:     Bounds{Min: 0, Max: 100},
		Length: Bounds{Min: 0, Max: MaxLength},
	}
}

// Validate checks that bounds are ordered and non-negative.
func (f Filter) Validate() error {
	for name, b := range map[string]Bounds{"gc": f.GC, "length": f.Length} {
		if b.Min < 0 || b.Max < b.Min {
			return fmt.Errorf("%s %v..%v: %w", name, b.Min, b.Max, ErrBounds)
		}
	}
	if f.MinQuality < 0 {
		return fmt.Errorf("quality %d: %w", f.MinQuality, ErrBounds)
	}
	return nil
}

// Keep reports whether r passes every criterion.
func (f Filter) Keep(r Read) bool {
	if !f.Length.contains(float64(len(r.Seq))) {
		return false
	}
	if !f.GC.contains(seqtools.GCContent(r.Seq)) {
		return false
	}
	return r.MeanQuality() >= f.MinQuality
}

// Stats counts reads seen and kept by FilterFile.
type Stats struct {
	Total int
	Kept  int
}

// FilterFile streams in through f and writes the kept reads to out.
func FilterFile(ctx context.Context, f Filter, in, out string) (Stats, error) {
	var st Stats
	if err := f.Validate(); err != nil {
		return st, err
	}
	src, err := fileio.Open(in)
	if err != nil {
		return st, err
	}
	defer src.Close()
	dst, err := fileio.Create(out)
	if err != nil {
		return st, err
	}
	bw := bufio.NewWriterSize(dst, 64<<10)

	serr := Scan(ctx, src, func(r Read) error {
		st.Total++
		if !f.Keep(r) {
			return nil
		}
		st.Kept++
		return Write(bw, r)
	})
	ferr := bw.Flush()
	cerr := dst.Close()
	switch {
	case serr != nil:
		return st, serr
	case ferr != nil:
		return st, fmt.Errorf("write %s: %w", out, ferr)
	case cerr != nil:
		return st, fmt.Errorf("close %s: %w", out, cerr)
	}
	return st, nil
}
