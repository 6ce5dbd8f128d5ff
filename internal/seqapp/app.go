// internal/seqapp/app.go
package seqapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"gbkit/internal/cli"
	"gbkit/internal/clibase"
	"gbkit/internal/cliutil"
	"gbkit/internal/seqtools"
	"gbkit/internal/version"
)

const name = "seqtool"

func usage(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, name, "DNA/RNA sequence helpers", func(out io.Writer, _ func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s <op> <seq>...\n", name)
		fmt.Fprintf(out, "\nOperations:\n  %s\n", strings.Join(seqtools.Ops(), "\n  "))
	})
}

func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	var common clibase.Common
	clibase.Register(fs, &common, false)
	usage(fs)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return clibase.Finish(outw, stderr, 2)
	}
	switch {
	case common.Help:
		fs.SetOutput(outw)
		fs.Usage()
		return clibase.Finish(outw, stderr, 0)
	case common.Version:
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return clibase.Finish(outw, stderr, 0)
	}
	if len(posArgs) < 2 {
		_, _ = fmt.Fprintln(stderr, "need an operation and at least one sequence")
		return clibase.Finish(outw, stderr, 2)
	}

	res, err := seqtools.Apply(posArgs[0], posArgs[1:]...)
	for _, r := range res {
		_, _ = fmt.Fprintln(outw, r)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		code := 3
		if errors.Is(err, seqtools.ErrUnknownOp) {
			code = 2
		}
		return clibase.Finish(outw, stderr, code)
	}
	return clibase.Finish(outw, stderr, 0)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
