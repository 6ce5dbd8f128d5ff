// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"gbkit/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints the tool-specific sections.
func UsageCommon(fs *flag.FlagSet, name, tagline string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s - %s\n\n", name, tagline)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nLogging:")
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "      --log-format string     text | json | logfmt [%s]\n", def("log-format"))
		fmt.Fprintln(out, "  -q, --quiet                 Only log errors")

		fmt.Fprintln(out, "\nMiscellaneous:")
		if fs.Lookup("config") != nil {
			fmt.Fprintln(out, "      --config file           JSON config; explicit flags override it")
		}
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
