// Package main provides the floatgen command, which writes a binary32 stress
// corpus for floatdump.
//
// Usage:
//
//	floatgen -o corpus.bin [-n 1000000] [--seed 123456789] [--byte-order native]
//
// The corpus mixes special values, powers of two and ten, log-space random
// values, subnormals and values around powers of ten, shuffled with a seeded
// generator so the same flags always produce the same file. --partial-tail
// appends stray bytes after the last record to build malformed fixtures.
package main

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/born-ml/floatdump/internal/config"
	"github.com/born-ml/floatdump/internal/corpus"
	"github.com/born-ml/floatdump/internal/logging"
	"github.com/born-ml/floatdump/internal/record"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, os.Getenv))
}

type options struct {
	out         string
	count       int
	seed        uint64
	byteOrder   string
	partialTail int
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	name := "floatgen"
	if len(args) > 0 {
		name = filepath.Base(args[0])
		args = args[1:]
	}

	var opts options
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.out, "out", "o", "", "output file (required)")
	fs.IntVarP(&opts.count, "count", "n", 1_000_000, "number of records")
	fs.Uint64Var(&opts.seed, "seed", corpus.DefaultSeed, "shuffle and sampling seed")
	fs.StringVar(&opts.byteOrder, "byte-order", "native", "record byte order: native, little or big")
	fs.IntVar(&opts.partialTail, "partial-tail", 0, "stray bytes to append after the last record, 0..3")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
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

	if err := opts.validate(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		fs.Usage()
		return 1
	}
	order, err := record.ParseByteOrder(opts.byteOrder)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}

	n, sum, err := generate(opts, order)
	if err != nil {
		logger.Error().Err(err).Str("path", opts.out).Msg("generation failed")
		return 1
	}
	logger.Info().
		Str("path", opts.out).
		Int64("records", n).
		Uint64("seed", opts.seed).
		Stringer("byte_order", order).
		Int("partial_tail", opts.partialTail).
		Hex("sha256", sum[:]).
		Msg("corpus written")
	fmt.Fprintf(stdout, "wrote %d records to %s\nsha256 %x\n", n, opts.out, sum)
	return 0
}

func (o options) validate() error {
	switch {
	case o.out == "":
		return errors.New("--out is required")
	case o.count < 0:
		return fmt.Errorf("--count must not be negative, got %d", o.count)
	case o.partialTail < 0 || o.partialTail >= record.Size:
		return fmt.Errorf("--partial-tail must be in [0, %d], got %d", record.Size-1, o.partialTail)
	}
	return nil
}

// generate writes the corpus and returns the number of whole records and the
// SHA-256 of the file contents.
func generate(opts options, order binary.ByteOrder) (n int64, sum [sha256.Size]byte, err error) {
	//nolint:gosec // G304: the output path is operator supplied.
	f, err := os.Create(opts.out)
	if err != nil {
		return 0, sum, fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	w := record.NewWriter(f, order)
	for _, v := range corpus.Build(opts.count, opts.seed) {
		if err := w.WriteFloat32(v); err != nil {
			return w.Count(), sum, fmt.Errorf("failed to write record %d: %w", w.Count(), err)
		}
	}
	if opts.partialTail > 0 {
		tail := []byte{0xde, 0xad, 0xbe}[:opts.partialTail]
		if err := w.WriteRaw(tail); err != nil {
			return w.Count(), sum, fmt.Errorf("failed to write partial tail: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return w.Count(), sum, fmt.Errorf("failed to flush output: %w", err)
	}
	return w.Count(), w.Checksum(), nil
}
