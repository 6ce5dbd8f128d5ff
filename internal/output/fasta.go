// internal/output/fasta.go
package output

import (
	"io"
	"strconv"

	"gbkit/internal/fasta"
	"gbkit/internal/genbank"
	"gbkit/internal/neighbors"
)

// FASTARecord builds the FASTA entry for r. The identifier is the key;
// the other field goes to the description.
func FASTARecord(r genbank.Record, key neighbors.Key) fasta.Record {
	if key == neighbors.KeyGene {
		return fasta.Record{ID: r.Gene, Desc: "order=" + strconv.Itoa(r.Order), Seq: r.Translation}
	}
	return fasta.Record{ID: strconv.Itoa(r.Order), Desc: r.Gene, Seq: r.Translation}
}

// WriteFASTA writes recs as single-line FASTA in the given order.
func WriteFASTA(w io.Writer, recs []genbank.Record, key neighbors.Key) error {
	fw := fasta.NewWriter(w)
	for _, r := range recs {
		if r.Translation == "" {
			continue
		}
		if err := fw.Write(FASTARecord(r, key)); err != nil {
			return err
		}
	}
	return fw.Flush()
}

// StreamFASTA writes records from a channel as they arrive.
func StreamFASTA(w io.Writer, in <-chan genbank.Record, key neighbors.Key) error {
	fw := fasta.NewWriter(w)
	var err error
	for r := range in {
		if err != nil || r.Translation == "" {
			continue
		}
		err = fw.Write(FASTARecord(r, key))
	}
	if err != nil {
		return err
	}
	return fw.Flush()
}
