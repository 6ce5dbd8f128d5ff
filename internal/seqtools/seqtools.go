// Package seqtools holds per-character nucleic acid helpers: alphabet
// predicates, transcription, reversal and complementing.
package seqtools

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotNucleic = errors.New("not a DNA or RNA sequence")
	ErrNotDNA     = errors.New("not a DNA sequence")
	ErrUnknownOp  = errors.New("unknown operation")
)

func onlyOf(seq, set string) bool {
	for i := 0; i < len(seq); i++ {
		if strings.IndexByte(set, seq[i]) < 0 {
			return false
		}
	}
	return true
}

// IsDNA reports whether seq only holds A, C, G, T in either case.
func IsDNA(seq string) bool { return onlyOf(seq, "ACGTacgt") }

// IsRNA reports whether seq only holds A, C, G, U in either case.
func IsRNA(seq string) bool { return onlyOf(seq, "ACGUacgu") }

// IsNucleicAcid reports whether seq is DNA or RNA. Mixed T and U is neither.
func IsNucleicAcid(seq string) bool { return IsDNA(seq) || IsRNA(seq) }

// Transcribe replaces T with U, keeping case.
func Transcribe(seq string) (string, error) {
	if !IsDNA(seq) {
		return "", fmt.Errorf("transcribe %q: %w", seq, ErrNotDNA)
	}
	return strings.NewReplacer("T", "U", "t", "u").Replace(seq), nil
}

// Reverse reverses seq byte-wise.
func Reverse(seq string) string {
	b := []byte(seq)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

var (
	dnaComplement = strings.NewReplacer("A", "T", "T", "A", "C", "G", "G", "C", "a", "t", "t", "a", "c", "g", "g", "c")
	rnaComplement = strings.NewReplacer("A", "U", "U", "A", "C", "G", "G", "C", "a", "u", "u", "a", "c", "g", "g", "c")
)

// Complement pairs A with T (or U for RNA) and C with G, keeping case.
// Sequences made only of A, C and G are treated as DNA.
func Complement(seq string) (string, error) {
	switch {
	case IsDNA(seq):
		return dnaComplement.Replace(seq), nil
	case IsRNA(seq):
		return rnaComplement.Replace(seq), nil
	}
	return "", fmt.Errorf("complement %q: %w", seq, ErrNotNucleic)
}

// ReverseComplement is Reverse(Complement(seq)).
func ReverseComplement(seq string) (string, error) {
	c, err := Complement(seq)
	if err != nil {
		return "", err
	}
	return Reverse(c), nil
}

// Count returns the number of occurrences of nt in seq, ignoring case.
func Count(seq string, nt byte) int {
	lower := nt | 0x20
	n := 0
	for i := 0; i < len(seq); i++ {
		if seq[i]|0x20 == lower {
			n++
		}
	}
	return n
}

// GCContent returns the G+C percentage of seq (0 for an empty sequence).
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	return float64(Count(seq, 'G')+Count(seq, 'C')) * 100 / float64(len(seq))
}
