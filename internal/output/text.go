// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gbkit/internal/genbank"
)

// previewLen caps the translation column of the text format.
const previewLen = 30

func preview(s string) string {
	if len(s) <= previewLen {
		return s
	}
	return s[:previewLen-3] + "..."
}

// WriteTSV prints one tab-separated line per record.
func WriteTSV(w io.Writer, recs []genbank.Record, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, r := range recs {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
			r.Order, r.Gene, len(r.Translation), r.Location, r.Translation); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints an aligned table with shortened translations.
func WriteText(w io.Writer, recs []genbank.Record, header bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if header {
		fmt.Fprintln(tw, "ORDER\tGENE\tLENGTH\tLOCATION\tTRANSLATION")
	}
	for _, r := range recs {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", r.Order, r.Gene, len(r.Translation), r.Location, preview(r.Translation))
	}
	return tw.Flush()
}
