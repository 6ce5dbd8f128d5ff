// internal/fastqcli/options.go
package fastqcli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gbkit/internal/clibase"
	"gbkit/internal/cliutil"
	"gbkit/internal/fastq"
)

// Options holds fastq-filter flags.
type Options struct {
	clibase.Common

	Input  string
	Output string
	Filter fastq.Filter
}

// ParseBounds reads "lo,hi" or a single "hi" (lower bound 0).
func ParseBounds(s string) (fastq.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 2 {
		return fastq.Bounds{}, fmt.Errorf("bounds %q: want HI or LO,HI", s)
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fastq.Bounds{}, fmt.Errorf("bounds %q: %w", s, err)
		}
		vals[i] = v
	}
	if len(vals) == 1 {
		return fastq.UpperBound(vals[0]), nil
	}
	return fastq.Bounds{Min: vals[0], Max: vals[1]}, nil
}

// ParseArgs registers and parses fastq-filter flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	opt := Options{Filter: fastq.DefaultFilter()}
	clibase.Register(fs, &opt.Common, false)
	clibase.UsageCommon(fs, fs.Name(), "filter FASTQ reads by GC, length and quality", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [flags] <reads.fastq>\n", fs.Name())
		fmt.Fprintln(out, "\nFilter:")
		fmt.Fprintf(out, "      --gc LO,HI | HI         GC percent bounds, inclusive [%s]\n", def("gc"))
		fmt.Fprintf(out, "      --length LO,HI | HI     Read length bounds, inclusive [%s]\n", def("length"))
		fmt.Fprintf(out, "      --min-quality int       Minimum mean phred quality [%s]\n", def("min-quality"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output file           Output FASTQ, '-' for STDOUT, .gz/.sz compress [%s]\n", def("output"))
	})

	gc := fs.String("gc", "0,100", "GC percent bounds")
	length := fs.String("length", "0,"+strconv.FormatInt(fastq.MaxLength, 10), "length bounds")
	fs.IntVar(&opt.Filter.MinQuality, "min-quality", 0, "minimum mean quality")
	fs.StringVar(&opt.Output, "output", "-", "output path")
	fs.StringVar(&opt.Output, "o", "-", "alias of --output")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if len(posArgs) != 1 {
		return opt, errors.New("exactly one FASTQ input is required")
	}
	opt.Input = posArgs[0]

	var err error
	if opt.Filter.GC, err = ParseBounds(*gc); err != nil {
		return opt, fmt.Errorf("--gc: %w", err)
	}
	if opt.Filter.Length, err = ParseBounds(*length); err != nil {
		return opt, fmt.Errorf("--length: %w", err)
	}
	if err := clibase.Validate(&opt.Common); err != nil {
		return opt, err
	}
	return opt, opt.Filter.Validate()
}
