// internal/writers/registry.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gbkit/internal/genbank"
	"gbkit/internal/neighbors"
	"gbkit/internal/output"
)

// Options carries presentation switches shared by all record formats.
type Options struct {
	Header bool
	Key    neighbors.Key
}

// RecordWriterFunc writes a complete batch of records.
type RecordWriterFunc func(w io.Writer, recs []genbank.Record, o Options) error

// Writer registry (format → handler). Register in init(); last wins.
var recordWriters = map[string]RecordWriterFunc{}

func RegisterRecords(format string, fn RecordWriterFunc) { recordWriters[format] = fn }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(recordWriters))
	for f := range recordWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteRecords dispatches to the writer registered for format.
func WriteRecords(format string, w io.Writer, recs []genbank.Record, o Options) error {
	fn, ok := recordWriters[format]
	if !ok {
		return fmt.Errorf("unknown record format %q (no writer registered)", format)
	}
	return fn(w, recs, o)
}

func writeJSONL(w io.Writer, recs []genbank.Record, _ Options) error {
	enc := json.NewEncoder(w)
	for _, r := range recs {
		if err := enc.Encode(output.ToAPIRecord(r)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	RegisterRecords(output.FormatText, func(w io.Writer, recs []genbank.Record, o Options) error {
		return output.WriteText(w, recs, o.Header)
	})
	RegisterRecords(output.FormatTSV, func(w io.Writer, recs []genbank.Record, o Options) error {
		return output.WriteTSV(w, recs, o.Header)
	})
	RegisterRecords(output.FormatJSON, func(w io.Writer, recs []genbank.Record, _ Options) error {
		return output.WriteJSON(w, recs)
	})
	RegisterRecords(output.FormatJSONL, writeJSONL)
	RegisterRecords(output.FormatFASTA, func(w io.Writer, recs []genbank.Record, o Options) error {
		return output.WriteFASTA(w, recs, o.Key)
	})
}
