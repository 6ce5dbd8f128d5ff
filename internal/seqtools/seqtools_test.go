package seqtools

import (
	"errors"
	"reflect"
	"testing"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		seq            string
		dna, rna, nucl bool
	}{
		{"ATGC", true, false, true},
		{"augc", false, true, true},
		{"AGC", true, true, true},
		{"TTUU", false, false, false},
		{"ATGN", false, false, false},
		{"", true, true, true},
	}
	for _, tc := range tests {
		if IsDNA(tc.seq) != tc.dna || IsRNA(tc.seq) != tc.rna || IsNucleicAcid(tc.seq) != tc.nucl {
			t.Errorf("%q: dna=%v rna=%v nucl=%v", tc.seq, IsDNA(tc.seq), IsRNA(tc.seq), IsNucleicAcid(tc.seq))
		}
	}
}

func TestTransforms(t *testing.T) {
	if got, _ := Transcribe("ATg"); got != "AUg" {
		t.Errorf("transcribe: %q", got)
	}
	if _, err := Transcribe("AUG"); !errors.Is(err, ErrNotDNA) {
		t.Errorf("transcribe RNA: %v", err)
	}
	if got := Reverse("ATG"); got != "GTA" {
		t.Errorf("reverse: %q", got)
	}
	if got, _ := Complement("AtG"); got != "TaC" {
		t.Errorf("complement DNA: %q", got)
	}
	if got, _ := Complement("AuG"); got != "UaC" {
		t.Errorf("complement RNA: %q", got)
	}
	if got, _ := ReverseComplement("ATg"); got != "cAT" {
		t.Errorf("reverse complement: %q", got)
	}
	if _, err := Complement("ATUX"); !errors.Is(err, ErrNotNucleic) {
		t.Errorf("complement invalid: %v", err)
	}
}

func TestGCContent(t *testing.T) {
	if got := GCContent("GGCCAATT"); got != 50 {
		t.Errorf("gc: %v", got)
	}
	if got := GCContent("gcgc"); got != 100 {
		t.Errorf("gc lower: %v", got)
	}
	if got := GCContent(""); got != 0 {
		t.Errorf("gc empty: %v", got)
	}
	if got := Count("AaTa", 'A'); got != 3 {
		t.Errorf("count: %d", got)
	}
}

func TestApply(t *testing.T) {
	got, err := Apply("reverse_complement", "ATG", "aacc")
	if err != nil || !reflect.DeepEqual(got, []string{"CAT", "ggtt"}) {
		t.Fatalf("apply: %v %v", got, err)
	}
	got, err = Apply("is_dna", "ATG", "AUG")
	if err != nil || !reflect.DeepEqual(got, []string{"true", "false"}) {
		t.Fatalf("apply predicate: %v %v", got, err)
	}
	if _, err := Apply("translate", "ATG"); !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("unknown op: %v", err)
	}
}
