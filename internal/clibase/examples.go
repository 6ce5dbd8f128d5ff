// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a quickstart block for a tool followed by a help tip.
func PrintExamples(out io.Writer, name string, lines ...string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s examples:\n\n", name)
	for _, l := range lines {
		_, _ = fmt.Fprintf(out, "  %s\n", l)
	}
	_, _ = fmt.Fprintln(out, "\nRun with --help for all flags.")
}
