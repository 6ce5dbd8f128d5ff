// internal/recordscli/options.go
package recordscli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"gbkit/internal/clibase"
	"gbkit/internal/cliutil"
	"gbkit/internal/genbank"
	"gbkit/internal/neighbors"
	"gbkit/internal/output"
)

// Options holds gbrecords flags.
type Options struct {
	clibase.Common

	Input   string
	Feature string
	Format  string
	Output  string
	ID      string
	Key     neighbors.Key
	Header  bool
	Cache   string
}

// ParseArgs registers and parses gbrecords flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common, false)
	clibase.UsageCommon(fs, fs.Name(), "dump gene records parsed from a GenBank file", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [flags] <file.gb>\n", fs.Name())
		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input file            GenBank file (.gz ok) or '-' for STDIN [*]")
		fmt.Fprintf(out, "      --feature string        Feature key to parse [%s]\n", def("feature"))
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -f, --format string         text | tsv | json | jsonl | fasta [%s]\n", def("format"))
		fmt.Fprintf(out, "  -o, --output file           Output path, '-' for STDOUT [%s]\n", def("output"))
		fmt.Fprintf(out, "      --id string             FASTA identifier: order | gene [%s]\n", def("id"))
		fmt.Fprintln(out, "      --no-header             Suppress header line (text/tsv)")
		fmt.Fprintln(out, "      --cache file            Also write records as cache JSON (.sz ok)")
	})

	fs.StringVar(&opt.Input, "input", "", "GenBank input file or '-'")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Feature, "feature", genbank.DefaultFeatureKey, "feature key to parse")
	fs.StringVar(&opt.Format, "format", output.FormatText, "output format")
	fs.StringVar(&opt.Format, "f", output.FormatText, "alias of --format")
	fs.StringVar(&opt.Output, "output", "-", "output path")
	fs.StringVar(&opt.Output, "o", "-", "alias of --output")
	fs.StringVar(&opt.ID, "id", neighbors.KeyOrder.String(), "FASTA identifier: order | gene")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line")
	fs.StringVar(&opt.Cache, "cache", "", "write records to this cache file")

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
	opt.Header = !noHeader

	switch {
	case len(posArgs) > 1:
		return opt, fmt.Errorf("expected one input file, got %d", len(posArgs))
	case len(posArgs) == 1 && opt.Input != "":
		return opt, errors.New("input given both as --input and positional")
	case len(posArgs) == 1:
		opt.Input = posArgs[0]
	}
	if opt.Input == "" {
		return opt, errors.New("an input file is required")
	}
	if err := clibase.Validate(&opt.Common); err != nil {
		return opt, err
	}
	valid := false
	for _, f := range output.Formats {
		if f == opt.Format {
			valid = true
		}
	}
	if !valid {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	k, err := neighbors.ParseKey(opt.ID)
	if err != nil {
		return opt, fmt.Errorf("invalid --id %q", opt.ID)
	}
	opt.Key = k
	return opt, nil
}
