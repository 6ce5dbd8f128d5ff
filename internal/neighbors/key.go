package neighbors

import (
	"fmt"
	"sort"
	"strconv"

	"gbkit/internal/genbank"
)

// Key selects the FASTA identifier and the sort order of an export.
type Key int

const (
	KeyOrder Key = iota // identifier is the order index
	KeyGene             // identifier is the gene name
)

func (k Key) String() string {
	switch k {
	case KeyOrder:
		return "order"
	case KeyGene:
		return "gene"
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// ParseKey accepts "order" or "gene".
func ParseKey(s string) (Key, error) {
	switch s {
	case "order", "":
		return KeyOrder, nil
	case "gene":
		return KeyGene, nil
	}
	return KeyOrder, fmt.Errorf("invalid key %q (want order | gene)", s)
}

// ID returns the identifier of r under k.
func (k Key) ID(r genbank.Record) string {
	if k == KeyGene {
		return r.Gene
	}
	return strconv.Itoa(r.Order)
}

// Sorted returns a copy of the selection's records sorted by k. Gene ties
// fall back to the order index.
func (s *Selection) Sorted(k Key) []genbank.Record {
	out := append([]genbank.Record(nil), s.Records...)
	SortRecords(out, k)
	return out
}

// SortRecords sorts recs in place by k.
func SortRecords(recs []genbank.Record, k Key) {
	sort.SliceStable(recs, func(i, j int) bool {
		if k == KeyGene && recs[i].Gene != recs[j].Gene {
			return recs[i].Gene < recs[j].Gene
		}
		return recs[i].Order < recs[j].Order
	})
}
