package seqtools

import (
	"fmt"
	"sort"
	"strconv"
)

// Op transforms one sequence into a printable result.
type Op func(seq string) (string, error)

func wrap(f func(string) string) Op {
	return func(s string) (string, error) { return f(s), nil }
}

func predicate(f func(string) bool) Op {
	return func(s string) (string, error) { return strconv.FormatBool(f(s)), nil }
}

var ops = map[string]Op{
	"is_nucleic_acid":    predicate(IsNucleicAcid),
	"is_dna":             predicate(IsDNA),
	"is_rna":             predicate(IsRNA),
	"transcribe":         Transcribe,
	"reverse":            wrap(Reverse),
	"complement":         Complement,
	"reverse_complement": ReverseComplement,
	"gc_content": func(s string) (string, error) {
		return strconv.FormatFloat(GCContent(s), 'f', 2, 64), nil
	},
}

// Ops lists the operation names accepted by Apply.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for n := range ops {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply runs the named operation over every sequence, stopping at the first error.
func Apply(op string, seqs ...string) ([]string, error) {
	fn, ok := ops[op]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOp, op)
	}
	out := make([]string, 0, len(seqs))
	for _, s := range seqs {
		r, err := fn(s)
		if err != nil {
			return out, err
		}
		out = append(out, r)
	}
	return out, nil
}
