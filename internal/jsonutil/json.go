// internal/jsonutil/json.go
package jsonutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// StartLines spins up a goroutine writing one compact JSON value per line.
// conv maps each item to its wire type. The error channel yields exactly one
// value after in is closed (or at the first failure); broken-pipe errors are
// reported as nil when ignore says so.
func StartLines[T, W any](out io.Writer, bufSize int, conv func(T) W, ignore func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err != nil {
				continue // drain so senders never block
			}
			err = enc.Encode(conv(v))
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && ignore != nil && ignore(err) {
			err = nil
		}
		done <- err
	}()
	return in, done
}
