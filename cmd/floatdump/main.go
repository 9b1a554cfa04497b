// Package main provides the floatdump command.
//
// floatdump prints a file of raw binary32 values as text, one value per line,
// using the shortest decimal that parses back to the identical value:
//
//	floatdump weights.bin > weights.txt
//
// The file holds concatenated 4-byte values in host byte order. Settings that
// are not part of the command line (byte order, notation, partial record
// policy, logging) come from FLOATDUMP_* environment variables or the YAML
// file named by FLOATDUMP_CONFIG.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/born-ml/floatdump/internal/config"
	"github.com/born-ml/floatdump/internal/dump"
	"github.com/born-ml/floatdump/internal/logging"
	"github.com/born-ml/floatdump/internal/record"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, os.Getenv))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	name := "floatdump"
	if len(args) > 0 {
		name = filepath.Base(args[0])
	}
	if len(args) != 2 {
		fmt.Fprintf(stderr, "Usage: %s <input_float_bin_file>\n", name)
		return 1
	}
	path := args[1]

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

	// Validated by config.Load.
	order, _ := cfg.ByteOrderValue()
	notation, _ := cfg.NotationValue()
	partial, _ := cfg.PartialValue()

	f, err := record.Open(path, order)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("cannot open input")
		return 1
	}
	defer func() { _ = f.Close() }()

	logger.Debug().
		Str("path", path).
		Stringer("byte_order", order).
		Stringer("notation", notation).
		Stringer("partial", partial).
		Msg("dumping records")

	stats, err := dump.Run(f.Reader, stdout, dump.Options{
		Notation: notation,
		Partial:  partial,
		Logger:   &logger,
	})
	if err != nil {
		logger.Error().Err(err).Str("path", path).Int64("records", stats.Records).Msg("dump failed")
		return 1
	}

	logger.Debug().
		Int64("records", stats.Records).
		Int("trailing_bytes", stats.TrailingBytes).
		Msg("done")
	return 0
}
