// internal/fastqapp/app.go
package fastqapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gbkit/internal/cli"
	"gbkit/internal/clibase"
	"gbkit/internal/fastq"
	"gbkit/internal/fastqcli"
	"gbkit/internal/version"
	"gbkit/internal/writers"
)

const name = "fastq-filter"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := fastqcli.ParseArgs(fs, argv)
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

	st, err := fastq.FilterFile(parent, opts.Filter, opts.Input, opts.Output)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return 130
		case writers.IsBrokenPipe(err):
			return 0
		}
		logger.Error("filter failed", "input", opts.Input, "err", err)
		return 3
	}
	logger.Info("filtered reads", "input", opts.Input, "total", st.Total, "kept", st.Kept, "output", opts.Output)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
