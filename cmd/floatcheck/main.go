// Package main provides the floatcheck command, an exhaustive verifier for
// the float32 formatter.
//
// floatcheck formats every bit pattern in a range and checks that the text
// parses back to the same value, carries the sign, and has no more
// significant digits than the shortest round-trip representation:
//
//	floatcheck                         # all 2^32 patterns
//	floatcheck --from 0x3f800000 --to 0x3fffffff --notation scientific
//
// The first violation is logged with its bit pattern and the command exits 1.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	_ "go.uber.org/automaxprocs"

	"github.com/born-ml/floatdump/internal/config"
	"github.com/born-ml/floatdump/internal/corpus"
	"github.com/born-ml/floatdump/internal/format"
	"github.com/born-ml/floatdump/internal/logging"
	"github.com/born-ml/floatdump/internal/parallel"
	"github.com/born-ml/floatdump/internal/verify"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	name := "floatcheck"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}

	var (
		from, to   uint32
		workers    int
		notation   string
		corpusSize int
		seed       uint64
	)
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Uint32Var(&from, "from", 0, "first bit pattern to check")
	fs.Uint32Var(&to, "to", math.MaxUint32, "last bit pattern to check (inclusive)")
	fs.IntVar(&workers, "workers", 0, "worker goroutines (0 means GOMAXPROCS)")
	fs.StringVar(&notation, "notation", "", "plain, scientific or fixed (default from config)")
	fs.IntVar(&corpusSize, "corpus", 0, "also check a stress corpus of this many values")
	fs.Uint64Var(&seed, "seed", corpus.DefaultSeed, "stress corpus seed")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "%s: unexpected arguments %q\n", name, fs.Args())
		return 1
	}

	cfg, err := config.Load(getenv)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}
	logger, err := logging.New(stderr, cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}

	n, err := cfg.NotationValue()
	if notation != "" {
		n, err = format.ParseNotation(notation)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}

	pcfg := parallel.DefaultConfig()
	if workers > 0 {
		pcfg.NumWorkers = workers
		pcfg.Enabled = workers > 1
	}

	if corpusSize > 0 {
		failures := verify.Values(corpus.Build(corpusSize, seed), n, pcfg)
		for _, f := range failures {
			logger.Error().Err(f.Err).Str("bits", fmt.Sprintf("%#010x", f.Bits)).Str("text", f.Text).Msg("corpus value failed")
		}
		if len(failures) > 0 {
			fmt.Fprintf(stdout, "corpus: %d of %d values failed\n", len(failures), corpusSize)
			return 1
		}
		fmt.Fprintf(stdout, "corpus: %d values ok\n", corpusSize)
	}

	logger.Info().
		Str("from", fmt.Sprintf("%#010x", from)).
		Str("to", fmt.Sprintf("%#010x", to)).
		Stringer("notation", n).
		Int("workers", pcfg.NumWorkers).
		Msg("checking range")

	report, err := verify.Range(ctx, from, to, n, pcfg)
	if err != nil {
		var failure *verify.Failure
		if errors.As(err, &failure) {
			logger.Error().
				Err(failure.Err).
				Str("bits", fmt.Sprintf("%#010x", failure.Bits)).
				Str("text", failure.Text).
				Msg("check failed")
		} else {
			logger.Error().Err(err).Msg("check aborted")
		}
		fmt.Fprintf(stdout, "FAIL after %d patterns: %v\n", report.Checked, err)
		return 1
	}

	fmt.Fprintf(stdout, "ok: %d patterns in [%#010x, %#010x], %s notation, %s\n",
		report.Checked, report.From, report.To, n, report.Elapsed.Round(time.Millisecond))
	return 0
}
