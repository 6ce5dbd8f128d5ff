// Package neighbors selects the records surrounding genes of interest.
//
// Adjacency is defined by genbank.Record.Order, never by gene name: the
// window around a match at order m is [m-before, m+after], clipped to the
// orders that exist. Records reached from several windows are kept once.
package neighbors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gbkit/internal/genbank"
)

// ErrWindow reports a non-positive window size.
var ErrWindow = errors.New("window sizes must be >= 1")

// TargetSet is the normalized set of gene names to look for.
type TargetSet map[string]struct{}

// NewTargetSet builds a set from one or more names. Names are trimmed and
// empty names dropped; matching is case-sensitive.
func NewTargetSet(names ...string) TargetSet {
	s := make(TargetSet, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether gene is a target.
func (s TargetSet) Has(gene string) bool {
	_, ok := s[gene]
	return ok
}

// Names returns the targets in ascending order.
func (s TargetSet) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Window is the clipped neighborhood of one matched record.
type Window struct {
	Gene  string
	Order int
	From  int
	To    int
}

// Selection is the deduplicated export set.
type Selection struct {
	// Records are in ascending order index.
	Records []genbank.Record
	// Windows has one entry per matched record, in order index.
	Windows []Window
	// Missing lists targets that matched no record, sorted.
	Missing []string
}

// Select computes the union of the neighbor windows of every record whose
// gene is in targets.
func Select(records []genbank.Record, targets TargetSet, before, after int) (*Selection, error) {
	if before < 1 || after < 1 {
		return nil, fmt.Errorf("%w (before=%d, after=%d)", ErrWindow, before, after)
	}
	sel := &Selection{}
	if len(records) == 0 {
		sel.Missing = targets.Names()
		return sel, nil
	}

	byOrder := make(map[int]int, len(records))
	lo, hi := records[0].Order, records[0].Order
	for i, r := range records {
		byOrder[r.Order] = i
		if r.Order < lo {
			lo = r.Order
		}
		if r.Order > hi {
			hi = r.Order
		}
	}

	keep := make(map[int]struct{})
	matched := make(map[string]bool, len(targets))
	for _, r := range records {
		if !targets.Has(r.Gene) {
			continue
		}
		matched[r.Gene] = true
		w := Window{
			Gene:  r.Gene,
			Order: r.Order,
			From:  max(r.Order-before, lo),
			To:    min(r.Order+after, hi),
		}
		sel.Windows = append(sel.Windows, w)
		for o := w.From; o <= w.To; o++ {
			if _, ok := byOrder[o]; ok {
				keep[o] = struct{}{}
			}
		}
	}
	sort.Slice(sel.Windows, func(i, j int) bool { return sel.Windows[i].Order < sel.Windows[j].Order })

	orders := make([]int, 0, len(keep))
	for o := range keep {
		orders = append(orders, o)
	}
	sort.Ints(orders)
	sel.Records = make([]genbank.Record, 0, len(orders))
	for _, o := range orders {
		sel.Records = append(sel.Records, records[byOrder[o]])
	}

	for _, n := range targets.Names() {
		if !matched[n] {
			sel.Missing = append(sel.Missing, n)
		}
	}
	return sel, nil
}
