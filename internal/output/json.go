package output

import (
	"io"

	"gbkit/internal/genbank"
	"gbkit/internal/jsonutil"
	"gbkit/pkg/api"
)

// ToAPIRecord converts a domain Record to the stable wire schema (v1).
func ToAPIRecord(r genbank.Record) api.GeneRecordV1 {
	return api.GeneRecordV1{
		Order:       r.Order,
		Gene:        r.Gene,
		Translation: r.Translation,
		Location:    r.Location,
		Line:        r.Line,
	}
}

// WriteJSON writes a single JSON array of v1 records (pretty-indented).
func WriteJSON(w io.Writer, recs []genbank.Record) error {
	out := make([]api.GeneRecordV1, 0, len(recs))
	for _, r := range recs {
		out = append(out, ToAPIRecord(r))
	}
	return jsonutil.EncodePretty(w, out)
}
