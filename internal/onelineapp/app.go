// internal/onelineapp/app.go
package onelineapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gbkit/internal/cli"
	"gbkit/internal/clibase"
	"gbkit/internal/cliutil"
	"gbkit/internal/fasta"
	"gbkit/internal/version"
	"gbkit/internal/writers"
)

const name = "fasta-oneline"

type options struct {
	clibase.Common
	Inputs []string
	Output string
}

func parseArgs(fs *flag.FlagSet, argv []string) (options, error) {
	var o options
	clibase.Register(fs, &o.Common, false)
	clibase.UsageCommon(fs, name, "rewrite multi-line FASTA with one line per sequence", func(out io.Writer, _ func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [flags] <in.fa>...\n", name)
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintln(out, "  -o, --output file           Output path (single input only) [output_<input>]")
	})
	fs.StringVar(&o.Output, "output", "", "output path")
	fs.StringVar(&o.Output, "o", "", "alias of --output")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if o.Help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	in, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return o, err
	}
	switch {
	case len(in) == 0:
		return o, errors.New("at least one FASTA input is required")
	case len(in) > 1 && o.Output != "":
		return o, errors.New("--output needs exactly one input")
	}
	o.Inputs = in
	return o, clibase.Validate(&o.Common)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := parseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return clibase.Finish(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return clibase.Finish(outw, stderr, 2)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return clibase.Finish(outw, stderr, 0)
	}

	logger, err := opts.Logger(stderr, name)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	for _, in := range opts.Inputs {
		out := opts.Output
		if out == "" {
			out = fasta.DefaultOnelinePath(in)
		}
		n, err := fasta.Unfold(parent, in, out)
		if err != nil {
			switch {
			case errors.Is(err, context.Canceled):
				return 130
			case writers.IsBrokenPipe(err):
				return 0
			case errors.Is(err, fasta.ErrSameFile):
				logger.Error("refusing to unfold in place", "input", in, "output", out)
				return 2
			}
			logger.Error("unfold failed", "input", in, "err", err)
			return 3
		}
		logger.Info("unfolded", "input", in, "output", out, "records", n)
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
