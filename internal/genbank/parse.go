package genbank

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"gbkit/internal/fileio"
)

// maxLine bounds a single physical line; annotation lines are short, but
// some producers put whole sequences on one line.
const maxLine = 64 * 1024 * 1024

// Each parses r and calls emit for every record in order. It stops at the
// first error from emit, the sink, the reader, or ctx.
func Each(ctx context.Context, r io.Reader, emit func(Record) error, opts ...Option) error {
	c := newConfig(opts)
	p := NewParser(opts...)

	deliver := func(rec Record) error {
		if c.sink != nil {
			if err := c.sink.Add(rec); err != nil {
				return fmt.Errorf("genbank sink: %w", err)
			}
		}
		if emit != nil {
			return emit(rec)
		}
		return nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if rec, ok := p.Feed(sc.Text()); ok {
			if err := deliver(rec); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("genbank scan: line %d: %w", p.line+1, err)
	}
	if rec, ok := p.Close(); ok {
		return deliver(rec)
	}
	return nil
}

// Parse reads every record from r.
func Parse(r io.Reader, opts ...Option) ([]Record, error) {
	return ParseContext(context.Background(), r, opts...)
}

// ParseContext is Parse with cancellation.
func ParseContext(ctx context.Context, r io.Reader, opts ...Option) ([]Record, error) {
	var recs []Record
	err := Each(ctx, r, func(rec Record) error {
		recs = append(recs, rec)
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// ParseLines parses an in-memory line slice.
func ParseLines(lines []string, opts ...Option) ([]Record, error) {
	return Parse(strings.NewReader(strings.Join(lines, "\n")), opts...)
}

// ParseFile parses the file at path ("-" for stdin; gzip and snappy detected).
func ParseFile(ctx context.Context, path string, opts ...Option) ([]Record, error) {
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := ParseContext(ctx, rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}
