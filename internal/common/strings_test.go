package common

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	got := SplitList("alpA, betB", "", "alpA,ALPA", " ,gamC")
	want := []string{"alpA", "betB", "ALPA", "gamC"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	if got := SplitList(); len(got) != 0 {
		t.Fatalf("empty input: %v", got)
	}
}
