package neighbors

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"gbkit/internal/genbank"
)

// tenRecords returns orders 1..10 with genes g1..g10.
func tenRecords() []genbank.Record {
	recs := make([]genbank.Record, 10)
	for i := range recs {
		recs[i] = genbank.Record{
			Order:       i + 1,
			Gene:        fmt.Sprintf("g%d", i+1),
			Translation: fmt.Sprintf("M%03d", i+1),
		}
	}
	return recs
}

func orders(recs []genbank.Record) []int {
	out := make([]int, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Order)
	}
	return out
}

func TestSelectWindow(t *testing.T) {
	tests := []struct {
		name          string
		targets       []string
		before, after int
		want          []int
	}{
		{"middle", []string{"g5"}, 2, 1, []int{3, 4, 5, 6}},
		{"clipped at start", []string{"g1"}, 3, 1, []int{1, 2}},
		{"clipped at end", []string{"g10"}, 1, 4, []int{9, 10}},
		{"overlap deduped", []string{"g4", "g5"}, 1, 1, []int{3, 4, 5, 6}},
		{"disjoint", []string{"g2", "g9"}, 1, 1, []int{1, 2, 3, 8, 9, 10}},
		{"whole list", []string{"g5"}, 20, 20, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := Select(tenRecords(), NewTargetSet(tc.targets...), tc.before, tc.after)
			if err != nil {
				t.Fatalf("select: %v", err)
			}
			if got := orders(sel.Records); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("orders: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestSelectNoDuplicates(t *testing.T) {
	sel, err := Select(tenRecords(), NewTargetSet("g3", "g4", "g5", "g6"), 2, 2)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	seen := map[string]bool{}
	for _, r := range sel.Sorted(KeyOrder) {
		id := KeyOrder.ID(r)
		if seen[id] {
			t.Fatalf("duplicate identifier %s", id)
		}
		seen[id] = true
	}
	if len(sel.Windows) != 4 {
		t.Fatalf("want 4 windows, got %+v", sel.Windows)
	}
}

func TestSelectMissingTarget(t *testing.T) {
	sel, err := Select(tenRecords(), NewTargetSet("nope", "g7", "zzz"), 1, 1)
	if err != nil {
		t.Fatalf("missing target must not fail: %v", err)
	}
	if got := orders(sel.Records); !reflect.DeepEqual(got, []int{6, 7, 8}) {
		t.Fatalf("other targets should still export, got %v", got)
	}
	if !reflect.DeepEqual(sel.Missing, []string{"nope", "zzz"}) {
		t.Fatalf("missing: %v", sel.Missing)
	}
}

func TestSelectNothingMatches(t *testing.T) {
	sel, err := Select(tenRecords(), NewTargetSet("nope"), 1, 1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(sel.Records) != 0 || len(sel.Windows) != 0 {
		t.Fatalf("want empty selection, got %+v", sel)
	}
	sel, err = Select(nil, NewTargetSet("a"), 1, 1)
	if err != nil || len(sel.Records) != 0 || len(sel.Missing) != 1 {
		t.Fatalf("empty records: sel=%+v err=%v", sel, err)
	}
}

func TestSelectRepeatedGeneMatchesEveryRecord(t *testing.T) {
	recs := tenRecords()
	recs[1].Gene = "dup"
	recs[7].Gene = "dup"
	sel, err := Select(recs, NewTargetSet("dup"), 1, 1)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := orders(sel.Records); !reflect.DeepEqual(got, []int{1, 2, 3, 7, 8, 9}) {
		t.Fatalf("got %v", got)
	}
}

func TestSelectRejectsBadWindow(t *testing.T) {
	for _, w := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		if _, err := Select(tenRecords(), NewTargetSet("g5"), w[0], w[1]); !errors.Is(err, ErrWindow) {
			t.Fatalf("window %v: want ErrWindow, got %v", w, err)
		}
	}
}

func TestNewTargetSet(t *testing.T) {
	s := NewTargetSet(" dnaK ", "", "dnaK", "DnaK")
	if !reflect.DeepEqual(s.Names(), []string{"DnaK", "dnaK"}) {
		t.Fatalf("names: %v", s.Names())
	}
	if s.Has("dnak") {
		t.Fatalf("matching must be case-sensitive")
	}
}

func TestSortedByGene(t *testing.T) {
	sel := &Selection{Records: []genbank.Record{
		{Order: 1, Gene: "zeta"},
		{Order: 2, Gene: "alpha"},
		{Order: 3, Gene: "mu"},
		{Order: 4, Gene: "alpha"},
	}}
	got := sel.Sorted(KeyGene)
	want := []int{2, 4, 3, 1}
	if !reflect.DeepEqual(orders(got), want) {
		t.Fatalf("got %v want %v", orders(got), want)
	}
	if !reflect.DeepEqual(orders(sel.Records), []int{1, 2, 3, 4}) {
		t.Fatalf("Sorted must not reorder the selection")
	}
}

func TestParseKey(t *testing.T) {
	if k, err := ParseKey("gene"); err != nil || k != KeyGene {
		t.Fatalf("gene: %v %v", k, err)
	}
	if k, err := ParseKey(""); err != nil || k != KeyOrder {
		t.Fatalf("default: %v %v", k, err)
	}
	if _, err := ParseKey("name"); err == nil {
		t.Fatalf("want error for unknown key")
	}
}
