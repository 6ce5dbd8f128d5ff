// internal/pipeline/pipeline.go
package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"gbkit/internal/cache"
	"gbkit/internal/fileio"
	"gbkit/internal/genbank"
	"gbkit/internal/neighbors"
	"gbkit/internal/output"
)

// Config controls one gbneighbors run.
type Config struct {
	Input     string // GenBank path, "-" for stdin
	FromCache string // record cache path; replaces Input when set
	Feature   string // feature key, genbank.DefaultFeatureKey when empty
	Cache     string // optional record cache to write while parsing

	Targets []string
	Before  int
	After   int

	Output string // FASTA path, "-" for Stdout
	Key    neighbors.Key
	Stdout io.Writer // os.Stdout when nil
}

// Summary reports what a run did.
type Summary struct {
	Records  int
	Exported int
	Windows  []neighbors.Window
	Missing  []string
}

// Matched reports whether at least one target was found.
func (s Summary) Matched() bool { return len(s.Windows) > 0 }

// Load returns the ordered records named by cfg. When cfg.Cache is set the
// parsed records are also written there.
func Load(ctx context.Context, cfg Config, logger *log.Logger) ([]genbank.Record, error) {
	if cfg.FromCache != "" {
		recs, err := cache.Load(cfg.FromCache)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded record cache", "path", cfg.FromCache, "records", len(recs))
		return recs, nil
	}

	var opts []genbank.Option
	if cfg.Feature != "" {
		opts = append(opts, genbank.WithFeatureKey(cfg.Feature))
	}
	var sink *cache.FileSink
	if cfg.Cache != "" {
		sink = cache.NewFileSink(cfg.Cache)
		opts = append(opts, genbank.WithSink(sink))
	}

	recs, err := genbank.ParseFile(ctx, cfg.Input, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed annotation file", "path", cfg.Input, "records", len(recs))

	if sink != nil {
		if err := sink.Close(); err != nil {
			return nil, err
		}
		logger.Debug("wrote record cache", "path", cfg.Cache, "records", sink.Len())
	}
	return recs, nil
}

// SelectAndExport selects the neighbor windows of targets and writes the
// union to outputPath as single-line FASTA sorted by key. It fails only on
// a bad window or when the output cannot be opened or written.
func SelectAndExport(records []genbank.Record, targets neighbors.TargetSet, before, after int, outputPath string, key neighbors.Key) (*neighbors.Selection, error) {
	return selectAndExport(records, targets, before, after, outputPath, key, os.Stdout)
}

func selectAndExport(records []genbank.Record, targets neighbors.TargetSet, before, after int, outputPath string, key neighbors.Key, std io.Writer) (*neighbors.Selection, error) {
	sel, err := neighbors.Select(records, targets, before, after)
	if err != nil {
		return nil, err
	}
	wc, err := fileio.CreateStd(outputPath, std)
	if err != nil {
		return nil, err
	}
	if err := writeFASTA(wc, sel.Sorted(key), key); err != nil {
		_ = wc.Close()
		return nil, fmt.Errorf("%s: %w", outputPath, err)
	}
	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", outputPath, err)
	}
	return sel, nil
}

func writeFASTA(w io.Writer, recs []genbank.Record, key neighbors.Key) error {
	bw := bufio.NewWriter(w)
	if err := output.WriteFASTA(bw, recs, key); err != nil {
		return err
	}
	return bw.Flush()
}

// Run loads records, selects and exports. Missing targets are logged as
// warnings, never returned as errors.
func Run(ctx context.Context, cfg Config, logger *log.Logger) (Summary, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var sum Summary

	recs, err := Load(ctx, cfg, logger)
	if err != nil {
		return sum, err
	}
	sum.Records = len(recs)
	if err := ctx.Err(); err != nil {
		return sum, err
	}

	targets := neighbors.NewTargetSet(cfg.Targets...)
	if len(targets) == 0 {
		return sum, errors.New("no target genes")
	}
	std := cfg.Stdout
	if std == nil {
		std = os.Stdout
	}
	sel, err := selectAndExport(recs, targets, cfg.Before, cfg.After, cfg.Output, cfg.Key, std)
	if err != nil {
		return sum, err
	}
	sum.Exported = len(sel.Records)
	sum.Windows = sel.Windows
	sum.Missing = sel.Missing

	for _, w := range sel.Windows {
		logger.Debug("window", "gene", w.Gene, "order", w.Order, "from", w.From, "to", w.To)
	}
	for _, g := range sel.Missing {
		logger.Warn("target gene not found", "gene", g)
	}
	logger.Info("exported neighbors", "records", sum.Records, "targets", len(targets),
		"windows", len(sel.Windows), "exported", sum.Exported, "output", cfg.Output)
	return sum, nil
}
