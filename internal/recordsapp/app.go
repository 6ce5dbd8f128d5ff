// internal/recordsapp/app.go
package recordsapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"gbkit/internal/cache"
	"gbkit/internal/cli"
	"gbkit/internal/clibase"
	"gbkit/internal/fileio"
	"gbkit/internal/genbank"
	"gbkit/internal/recordscli"
	"gbkit/internal/version"
	"gbkit/internal/writers"
)

const name = "gbrecords"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := recordscli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
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

	dst, err := fileio.CreateStd(opts.Output, outw)
	if err != nil {
		logger.Error("cannot open output", "path", opts.Output, "err", err)
		return 3
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	popts := []genbank.Option{genbank.WithFeatureKey(opts.Feature)}
	var sink *cache.FileSink
	if opts.Cache != "" {
		sink = cache.NewFileSink(opts.Cache)
		popts = append(popts, genbank.WithSink(sink))
	}

	in, writeErr := writers.StartRecordWriter(dst, opts.Format, writers.Options{Header: opts.Header, Key: opts.Key}, 64)

	rc, perr := fileio.Open(opts.Input)
	total := 0
	if perr == nil {
		perr = genbank.Each(ctx, rc, func(r genbank.Record) error {
			select {
			case in <- r:
				total++
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}, popts...)
		_ = rc.Close()
		if perr != nil {
			perr = fmt.Errorf("%s: %w", opts.Input, perr)
		}
	}
	close(in)

	if werr := <-writeErr; werr != nil {
		logger.Error("write failed", "err", werr)
		return 3
	}
	if err := dst.Close(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		logger.Error("close output", "path", opts.Output, "err", err)
		return 3
	}
	if code := clibase.Finish(outw, stderr, 0); code != 0 {
		return code
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		logger.Error("parse failed", "err", perr)
		return 3
	}
	if sink != nil {
		if err := sink.Close(); err != nil {
			logger.Error("write cache", "path", opts.Cache, "err", err)
			return 3
		}
		logger.Debug("wrote record cache", "path", opts.Cache, "records", sink.Len())
	}
	logger.Info("parsed records", "path", opts.Input, "records", total, "format", opts.Format)
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
