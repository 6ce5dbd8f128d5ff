package clibase

import (
	"bufio"
	"fmt"
	"io"

	"gbkit/internal/writers"
)

// Finish flushes outw and returns code, or 3 when the flush fails.
// A closed downstream pipe counts as success.
func Finish(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
