// internal/clibase/common.go
package clibase

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"gbkit/internal/cmdutil"
	"gbkit/internal/config"
)

// Common holds CLI fields shared by every gbkit tool.
type Common struct {
	LogLevel   string
	LogFormat  string
	ConfigPath string
	Quiet      bool
	Version    bool
	Help       bool
}

// ListValue appends each value to a *[]string (repeatable flags).
type ListValue struct{ Dst *[]string }

func (s ListValue) String() string {
	if s.Dst == nil {
		return ""
	}
	return strings.Join(*s.Dst, ",")
}

func (s ListValue) Set(v string) error {
	*s.Dst = append(*s.Dst, v)
	return nil
}

// Register wires the shared flags onto fs. withConfig adds --config.
func Register(fs *flag.FlagSet, c *Common, withConfig bool) {
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.StringVar(&c.LogFormat, "log-format", cmdutil.LogText, "log format: text | json | logfmt [text]")
	if withConfig {
		fs.StringVar(&c.ConfigPath, "config", "", "JSON config file; explicit flags win")
	}
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help and exit")
	fs.BoolVar(&c.Help, "help", false, "show this help and exit")
}

// Logger builds the tool logger from the shared flags.
func (c Common) Logger(w io.Writer, name string) (*log.Logger, error) {
	return cmdutil.NewLogger(w, name, c.LogLevel, c.LogFormat, c.Quiet)
}

// SetFlags records which flags were given explicitly on the command line.
func SetFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func anySet(set map[string]bool, names ...string) bool {
	for _, n := range names {
		if set[n] {
			return true
		}
	}
	return false
}

// ApplyConfig fills the shared fields from cfg unless set on the command line.
func ApplyConfig(set map[string]bool, c *Common, cfg *config.Config) {
	if cfg.LogLevel != "" && !anySet(set, "log-level") {
		c.LogLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !anySet(set, "log-format") {
		c.LogFormat = cfg.LogFormat
	}
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	switch c.LogFormat {
	case cmdutil.LogText, cmdutil.LogJSON, cmdutil.LogLogfmt:
	default:
		return fmt.Errorf("invalid --log-format %q", c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid --log-level %q", c.LogLevel)
	}
	return nil
}
