package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTSVHeader_Stable(t *testing.T) {
	const want = "order\tgene\tlength\tlocation\ttranslation"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestWriteTSV(t *testing.T) {
	var b bytes.Buffer
	if err := WriteTSV(&b, recs[:1], true); err != nil {
		t.Fatalf("tsv: %v", err)
	}
	want := TSVHeader + "\n3\tgamC\t4\t\tMCCC\n"
	if b.String() != want {
		t.Fatalf("got %q", b.String())
	}
}

func TestWriteTextPreview(t *testing.T) {
	var b bytes.Buffer
	if err := WriteText(&b, recs, false); err != nil {
		t.Fatalf("text: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %q", b.String())
	}
	if !strings.HasSuffix(lines[1], "...") || strings.Contains(lines[1], strings.Repeat("MD", 20)) {
		t.Fatalf("long translation not shortened: %q", lines[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, recs[:1]); err != nil {
		t.Fatalf("json: %v", err)
	}
	want := "[\n  {\n    \"order\": 3,\n    \"gene\": \"gamC\",\n    \"translation\": \"MCCC\"\n  }\n]\n"
	if b.String() != want {
		t.Fatalf("got %q", b.String())
	}
}
