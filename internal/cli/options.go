// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"gbkit/internal/clibase"
	"gbkit/internal/cliutil"
	"gbkit/internal/common"
	"gbkit/internal/config"
	"gbkit/internal/genbank"
	"gbkit/internal/neighbors"
)

// Options holds all gbneighbors flags and arguments.
type Options struct {
	clibase.Common

	// Input
	Input     string
	FromCache string
	Genes     []string
	GenesFile string

	// Window
	Before int
	After  int

	// Output
	Output          string
	ID              string
	Key             neighbors.Key
	Feature         string
	Cache           string
	NoMatchExitCode int

	Examples bool
}

func registerUsage(fs *flag.FlagSet, name string) {
	clibase.UsageCommon(fs, name, "export neighbor proteins from a GenBank file", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [flags] -g GENE[,GENE...] <file.gb>\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --input file            GenBank file (.gz ok) or '-' for STDIN [*]")
		fmt.Fprintln(out, "      --from-cache file       Read records from a cache written by --cache [*]")
		fmt.Fprintln(out, "  -g, --gene list             Target gene(s); repeatable, comma-separated")
		fmt.Fprintln(out, "      --genes-file file       Target genes, one per line")
		fmt.Fprintf(out, "      --feature string        Feature key to parse [%s]\n", def("feature"))

		fmt.Fprintln(out, "\nWindow:")
		fmt.Fprintf(out, "  -b, --before int            Genes before each target (>= 1) [%s]\n", def("before"))
		fmt.Fprintf(out, "  -a, --after int             Genes after each target (>= 1) [%s]\n", def("after"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output file           FASTA output, '-' for STDOUT, .gz/.sz compress [%s]\n", def("output"))
		fmt.Fprintf(out, "      --id string             FASTA identifier: order | gene [%s]\n", def("id"))
		fmt.Fprintln(out, "      --cache file            Also write parsed records as JSON (.sz ok)")
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no target is found [%s]\n", def("no-match-exit-code"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common, true)
	registerUsage(fs, fs.Name())

	fs.StringVar(&opt.Input, "input", "", "GenBank input file or '-'")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.FromCache, "from-cache", "", "read records from cache JSON")
	genes := clibase.ListValue{Dst: &opt.Genes}
	fs.Var(genes, "gene", "target gene(s), repeatable, comma-separated")
	fs.Var(genes, "g", "alias of --gene")
	fs.StringVar(&opt.GenesFile, "genes-file", "", "target genes, one per line")
	fs.StringVar(&opt.Feature, "feature", genbank.DefaultFeatureKey, "feature key to parse")

	fs.IntVar(&opt.Before, "before", 1, "genes before each target")
	fs.IntVar(&opt.Before, "b", 1, "alias of --before")
	fs.IntVar(&opt.After, "after", 1, "genes after each target")
	fs.IntVar(&opt.After, "a", 1, "alias of --after")

	fs.StringVar(&opt.Output, "output", "-", "FASTA output path")
	fs.StringVar(&opt.Output, "o", "-", "alias of --output")
	fs.StringVar(&opt.ID, "id", neighbors.KeyOrder.String(), "FASTA identifier: order | gene")
	fs.StringVar(&opt.Cache, "cache", "", "write parsed records to this JSON file")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no target is found")
	fs.BoolVar(&opt.Examples, "examples", false, "print usage examples and exit")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Help {
		return opt, flag.ErrHelp
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}

	if len(posArgs) > 1 {
		return opt, fmt.Errorf("expected one input file, got %d", len(posArgs))
	}
	if len(posArgs) == 1 {
		if opt.Input != "" {
			return opt, errors.New("input given both as --input and positional")
		}
		opt.Input = posArgs[0]
	}

	// A positional input counts as explicit and beats the config file.
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return opt, err
	}
	applyConfig(clibase.SetFlags(fs), &opt, cfg)

	if opt.GenesFile != "" {
		more, err := cliutil.ReadList(opt.GenesFile)
		if err != nil {
			return opt, err
		}
		opt.Genes = append(opt.Genes, more...)
	}
	opt.Genes = common.SplitList(opt.Genes...)

	if err := Validate(&opt); err != nil {
		return opt, err
	}
	return opt, nil
}

func applyConfig(set map[string]bool, o *Options, cfg *config.Config) {
	clibase.ApplyConfig(set, &o.Common, cfg)
	given := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}
	if cfg.Input != "" && o.Input == "" && !given("input", "i") {
		o.Input = cfg.Input
	}
	if len(cfg.Genes) > 0 && !given("gene", "g") {
		o.Genes = append(o.Genes, cfg.Genes...)
	}
	if cfg.GenesFile != "" && !given("genes-file") {
		o.GenesFile = cfg.GenesFile
	}
	if cfg.Before != 0 && !given("before", "b") {
		o.Before = cfg.Before
	}
	if cfg.After != 0 && !given("after", "a") {
		o.After = cfg.After
	}
	if cfg.Output != "" && !given("output", "o") {
		o.Output = cfg.Output
	}
	if cfg.ID != "" && !given("id") {
		o.ID = cfg.ID
	}
	if cfg.Feature != "" && !given("feature") {
		o.Feature = cfg.Feature
	}
	if cfg.Cache != "" && !given("cache") {
		o.Cache = cfg.Cache
	}
	if cfg.NoMatchExitCode != 0 && !given("no-match-exit-code") {
		o.NoMatchExitCode = cfg.NoMatchExitCode
	}
}

// Validate applies the gbneighbors invariants.
func Validate(o *Options) error {
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	switch {
	case o.Input == "" && o.FromCache == "":
		return errors.New("provide an input file (--input or positional) or --from-cache")
	case o.Input != "" && o.FromCache != "":
		return errors.New("--input conflicts with --from-cache")
	}
	if len(o.Genes) == 0 {
		return errors.New("at least one target gene is required (--gene or --genes-file)")
	}
	if o.Before < 1 {
		return errors.New("--before must be >= 1")
	}
	if o.After < 1 {
		return errors.New("--after must be >= 1")
	}
	k, err := neighbors.ParseKey(o.ID)
	if err != nil {
		return fmt.Errorf("invalid --id %q", o.ID)
	}
	o.Key = k
	if o.Feature == "" {
		return errors.New("--feature must not be empty")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
