// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Log output formats accepted by --log-format.
const (
	LogText   = "text"
	LogJSON   = "json"
	LogLogfmt = "logfmt"
)

// NewLogger builds the stderr logger shared by all tools.
// quiet forces error level regardless of level.
func NewLogger(w io.Writer, prefix, level, format string, quiet bool) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		l, err := log.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("invalid --log-level %q", level)
		}
		lvl = l
	}
	if quiet {
		lvl = log.ErrorLevel
	}

	var f log.Formatter
	switch format {
	case "", LogText:
		f = log.TextFormatter
	case LogJSON:
		f = log.JSONFormatter
	case LogLogfmt:
		f = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("invalid --log-format %q", format)
	}

	return log.NewWithOptions(w, log.Options{
		Level:     lvl,
		Prefix:    prefix,
		Formatter: f,
	}), nil
}
