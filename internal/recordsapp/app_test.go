package recordsapp

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gbkit/pkg/api"
)

const toy = "../genbank/testdata/toy.gb"

func TestTSVDump(t *testing.T) {
	var out, errb bytes.Buffer
	code := Run([]string{toy, "-f", "tsv", "--log-level", "error"}, &out, &errb)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errb.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 || !strings.HasPrefix(lines[0], "order\tgene") {
		t.Fatalf("tsv:\n%s", out.String())
	}
	if !strings.HasPrefix(lines[1], "1\talpA\t") {
		t.Fatalf("first row %q", lines[1])
	}
}

func TestJSONLWithCache(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "c.json")
	var out, errb bytes.Buffer
	code := Run([]string{"-i", toy, "-f", "jsonl", "--cache", cachePath, "-q"}, &out, &errb)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errb.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("want 5 jsonl lines, got %d", len(lines))
	}
	var rec api.GeneRecordV1
	if err := json.Unmarshal([]byte(lines[2]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Order != 3 || rec.Gene != "delD" {
		t.Fatalf("third record %+v", rec)
	}
	b, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatal(err)
	}
	var c api.RecordCacheV1
	if err := json.Unmarshal(b, &c); err != nil {
		t.Fatal(err)
	}
	if len(c) != 5 || c[2].Gene != "betB" {
		t.Fatalf("cache %+v", c)
	}
}

func TestUsageAndErrors(t *testing.T) {
	var out, errb bytes.Buffer
	if code := Run(nil, &out, &errb); code != 0 || !strings.Contains(out.String(), "gbrecords") {
		t.Fatalf("help exit %d: %s", code, out.String())
	}
	out.Reset()
	if code := Run([]string{toy, "-f", "xml"}, &out, &errb); code != 2 {
		t.Fatalf("bad format exit %d", code)
	}
	if code := Run([]string{filepath.Join(t.TempDir(), "none.gb"), "-q"}, &out, &errb); code != 3 {
		t.Fatalf("missing file exit %d", code)
	}
}
