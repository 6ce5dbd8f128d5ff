package genbank

import (
	"strings"
	"testing"
)

const qcol = "                     "

func featureHead(key, loc string) string {
	return "     " + key + strings.Repeat(" ", 16-len(key)) + loc
}

func mustParseLines(t *testing.T, lines []string, opts ...Option) []Record {
	t.Helper()
	recs, err := ParseLines(lines, opts...)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return recs
}

func TestSingleLineTranslationVerbatim(t *testing.T) {
	cases := []string{"MKV", "M K V", "mkvLLL*", "X"}
	for _, tr := range cases {
		recs := mustParseLines(t, []string{
			featureHead("CDS", "1..9"),
			qcol + `/gene="abc"`,
			qcol + `/translation="` + tr + `"`,
		})
		if len(recs) != 1 || recs[0].Translation != tr {
			t.Fatalf("translation %q: got %+v", tr, recs)
		}
	}
}

func TestWrappedTranslationConcatenatesTrimmedLines(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("CDS", "1..300"),
		qcol + `/gene="abc"`,
		qcol + `/translation="MKVL`,
		qcol + `AAAA   `,
		qcol + `  CCCC`,
		qcol + `DD"`,
		qcol + `/note="after"`,
	})
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %d", len(recs))
	}
	if got, want := recs[0].Translation, "MKVLAAAACCCCDD"; got != want {
		t.Fatalf("translation: got %q want %q", got, want)
	}
}

func TestIncompleteFeaturesDropped(t *testing.T) {
	geneOnly := []string{
		featureHead("CDS", "1..9"),
		qcol + `/gene="abc"`,
		qcol + `/product="x"`,
	}
	translationOnly := []string{
		featureHead("CDS", "1..9"),
		qcol + `/locus_tag="T_1"`,
		qcol + `/translation="MKV"`,
	}
	emptyTranslation := []string{
		featureHead("CDS", "1..9"),
		qcol + `/gene="abc"`,
		qcol + `/translation=""`,
	}
	for name, lines := range map[string][]string{
		"gene only":         geneOnly,
		"translation only":  translationOnly,
		"empty translation": emptyTranslation,
	} {
		if recs := mustParseLines(t, lines); len(recs) != 0 {
			t.Fatalf("%s: want no records, got %+v", name, recs)
		}
	}
}

func TestOrderIncreasesByOneAcrossDroppedFeatures(t *testing.T) {
	var lines []string
	for i, g := range []string{"a", "", "b", "c", "", "d"} {
		lines = append(lines, featureHead("CDS", "1..9"))
		if g != "" {
			lines = append(lines, qcol+`/gene="`+g+`"`)
		}
		if i != 3 { // c has no translation
			lines = append(lines, qcol+`/translation="MK"`)
		}
	}
	recs := mustParseLines(t, lines)
	want := []string{"a", "b", "d"}
	if len(recs) != len(want) {
		t.Fatalf("want %d records, got %+v", len(want), recs)
	}
	for i, r := range recs {
		if r.Order != i+1 || r.Gene != want[i] {
			t.Fatalf("record %d: %+v", i, r)
		}
	}
}

func TestLineClosesAndOpensFeature(t *testing.T) {
	p := NewParser()
	feed := func(line string) (Record, bool) { return p.Feed(line) }

	if _, ok := feed(featureHead("CDS", "1..9")); ok {
		t.Fatalf("opener should not emit")
	}
	feed(qcol + `/gene="one"`)
	feed(qcol + `/translation="MA"`)

	rec, ok := feed(featureHead("CDS", "10..19"))
	if !ok || rec.Gene != "one" || rec.Order != 1 {
		t.Fatalf("second opener should close first feature, got %+v ok=%v", rec, ok)
	}
	if p.state != stateFeature {
		t.Fatalf("second opener should leave parser inside a feature, state=%d", p.state)
	}
	feed(qcol + `/gene="two"`)
	feed(qcol + `/translation="MB"`)

	rec, ok = p.Close()
	if !ok || rec.Gene != "two" || rec.Order != 2 || rec.Location != "10..19" {
		t.Fatalf("flush on close: %+v ok=%v", rec, ok)
	}
	if _, ok := p.Close(); ok {
		t.Fatalf("second Close must not emit")
	}
}

func TestOtherFeatureTypesIgnored(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("gene", "1..9"),
		qcol + `/gene="g"`,
		qcol + `/translation="MX"`,
		featureHead("mat_peptide", "1..9"),
		qcol + `/gene="m"`,
		qcol + `/translation="MY"`,
		featureHead("CDSX", "1..9"),
		qcol + `/gene="x"`,
		qcol + `/translation="MZ"`,
	})
	if len(recs) != 0 {
		t.Fatalf("want no records, got %+v", recs)
	}
}

func TestFeatureKeyOption(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("CDS", "1..9"),
		qcol + `/gene="c"`,
		qcol + `/translation="MC"`,
		featureHead("mat_peptide", "1..9"),
		qcol + `/gene="m"`,
		qcol + `/translation="MM"`,
	}, WithFeatureKey("mat_peptide"))
	if len(recs) != 1 || recs[0].Gene != "m" {
		t.Fatalf("got %+v", recs)
	}
}

func TestFirstGeneWins(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("CDS", "1..9"),
		qcol + `/gene="first"`,
		qcol + `/gene="second"`,
		qcol + `/translation="MK"`,
	})
	if len(recs) != 1 || recs[0].Gene != "first" {
		t.Fatalf("got %+v", recs)
	}
}

func TestGeneValueForms(t *testing.T) {
	cases := map[string]string{
		`"dnaK"`:          "dnaK",
		`"Dna K" extra`:   "Dna K",
		`dnaK trailing`:   "dnaK",
		`"unterminated  `: "unterminated",
		``:                "",
	}
	for in, want := range cases {
		if got := geneValue(in); got != want {
			t.Errorf("geneValue(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnterminatedQuoteClosedByQualifier(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("CDS", "1..9"),
		qcol + `/translation="MKV`,
		qcol + `LLL`,
		qcol + `/gene="late"`,
		qcol + `/note="not part of translation"`,
	})
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %+v", recs)
	}
	if recs[0].Translation != "MKVLLL" || recs[0].Gene != "late" {
		t.Fatalf("got %+v", recs[0])
	}
}

func TestUnterminatedQuoteClosedByNextFeature(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("CDS", "1..9"),
		qcol + `/gene="a"`,
		qcol + `/translation="MK`,
		featureHead("CDS", "20..29"),
		qcol + `/gene="b"`,
		qcol + `/translation="MZ"`,
	})
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %+v", recs)
	}
	if recs[0].Gene != "a" || recs[0].Translation != "MK" || recs[0].Order != 1 {
		t.Fatalf("first: %+v", recs[0])
	}
	if recs[1].Gene != "b" || recs[1].Translation != "MZ" || recs[1].Order != 2 || recs[1].Location != "20..29" {
		t.Fatalf("second: %+v", recs[1])
	}
}

func TestFirstTranslationWins(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("CDS", "1..9"),
		qcol + `/gene="g"`,
		qcol + `/translation="MAAA"`,
		qcol + `/translation="MBBB"`,
	})
	if len(recs) != 1 || recs[0].Translation != "MAAA" {
		t.Fatalf("got %+v", recs)
	}
}

func TestUnquotedTranslationIsSingleLine(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("CDS", "1..9"),
		qcol + `/gene="g"`,
		qcol + `/translation=MKV`,
		qcol + `/note="x"`,
	})
	if len(recs) != 1 || recs[0].Translation != "MKV" {
		t.Fatalf("got %+v", recs)
	}
}

func TestBlankLinesInsideFeature(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("CDS", "1..9"),
		"",
		qcol + `/gene="g"`,
		"   ",
		qcol + `/translation="MK`,
		"",
		qcol + `VV"`,
	})
	if len(recs) != 1 || recs[0].Translation != "MKVV" {
		t.Fatalf("got %+v", recs)
	}
}

func TestCRLFInput(t *testing.T) {
	in := featureHead("CDS", "1..9") + "\r\n" +
		qcol + `/gene="g"` + "\r\n" +
		qcol + `/translation="MK` + "\r\n" +
		qcol + `VV"` + "\r\n"
	recs, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 1 || recs[0].Gene != "g" || recs[0].Translation != "MKVV" {
		t.Fatalf("got %+v", recs)
	}
}

func TestWrappedLocation(t *testing.T) {
	recs := mustParseLines(t, []string{
		featureHead("CDS", "join(1..10,"),
		qcol + "20..30)",
		qcol + `/gene="g"`,
		qcol + `/translation="MK"`,
	})
	if len(recs) != 1 || recs[0].Location != "join(1..10,20..30)" || recs[0].Line != 1 {
		t.Fatalf("got %+v", recs)
	}
}
