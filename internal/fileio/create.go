package fileio

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// multiWriteCloser closes the encoder first, then the file underneath it.
type multiWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Create opens path for writing, truncating it. "-" writes to stdout and
// Close leaves stdout open. A .gz suffix gzips the stream, .sz frames it
// with snappy.
func Create(path string) (io.WriteCloser, error) {
	return CreateStd(path, os.Stdout)
}

// CreateStd is Create with stdout replaced by std.
func CreateStd(path string, std io.Writer) (io.WriteCloser, error) {
	if path == Stdio {
		return nopWriteCloser{std}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch {
	case strings.HasSuffix(path, ".gz"):
		gw := gzip.NewWriter(fh)
		return &multiWriteCloser{Writer: gw, closers: []io.Closer{gw, fh}}, nil
	case strings.HasSuffix(path, ".sz"):
		sw := snappy.NewBufferedWriter(fh)
		return &multiWriteCloser{Writer: sw, closers: []io.Closer{sw, fh}}, nil
	}
	return fh, nil
}
