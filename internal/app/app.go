// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gbkit/internal/cli"
	"gbkit/internal/clibase"
	"gbkit/internal/pipeline"
	"gbkit/internal/version"
	"gbkit/internal/writers"
)

const name = "gbneighbors"

var examples = []string{
	name + " -g recA -b 3 -a 3 genome.gb > neighbors.fa",
	name + " -g recA,lexA --id gene -o neighbors.fa genome.gb.gz",
	name + " --genes-file targets.txt --cache genome.json.sz genome.gb",
	name + " --from-cache genome.json.sz -g recA -b 5 -a 5",
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return clibase.Finish(outw, stderr, 0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(outw, name, examples...)
			return clibase.Finish(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
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

	cfg := pipeline.Config{
		Input:     opts.Input,
		FromCache: opts.FromCache,
		Feature:   opts.Feature,
		Cache:     opts.Cache,
		Targets:   opts.Genes,
		Before:    opts.Before,
		After:     opts.After,
		Output:    opts.Output,
		Key:       opts.Key,
		Stdout:    outw,
	}

	sum, err := pipeline.Run(parent, cfg, logger)
	if code := clibase.Finish(outw, stderr, 0); code != 0 {
		return code
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		if writers.IsBrokenPipe(err) {
			return 0
		}
		logger.Error("gbneighbors failed", "err", err)
		return 3
	}
	if !sum.Matched() {
		logger.Warn("no target gene found", "targets", len(opts.Genes))
		return opts.NoMatchExitCode
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
