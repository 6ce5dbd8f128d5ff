package writers

import (
	"fmt"
	"io"

	"gbkit/internal/genbank"
	"gbkit/internal/jsonutil"
	"gbkit/internal/output"
	"gbkit/pkg/api"
)

// StartRecordWriter spins up a writer goroutine for genbank.Record items.
// JSONL and FASTA stream as records arrive; other formats buffer until the
// channel is closed. The error channel yields one value when done.
func StartRecordWriter(out io.Writer, format string, o Options, bufSize int) (chan<- genbank.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if format == output.FormatJSONL {
		return jsonutil.StartLines(out, bufSize, func(r genbank.Record) api.GeneRecordV1 {
			return output.ToAPIRecord(r)
		}, IsBrokenPipe)
	}

	in := make(chan genbank.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatFASTA:
			err = output.StreamFASTA(out, in, o.Key)
		default:
			var buf []genbank.Record
			for r := range in {
				buf = append(buf, r)
			}
			if _, ok := recordWriters[format]; !ok {
				err = fmt.Errorf("unknown record format %q (no writer registered)", format)
				break
			}
			err = WriteRecords(format, out, buf, o)
		}
		errCh <- DropBrokenPipe(err)
	}()

	return in, errCh
}
