// Package dump drives the record-to-text conversion: it pulls records from a
// record.Reader, formats each one and writes one line per record, in order.
package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/born-ml/floatdump/internal/format"
	"github.com/born-ml/floatdump/internal/record"
)

// ErrUnknownPartialPolicy is returned by ParsePartialPolicy.
var ErrUnknownPartialPolicy = errors.New("unknown partial record policy")

// PartialPolicy decides what a trailing partial record means.
type PartialPolicy uint8

const (
	// PartialIgnore drops the incomplete tail and reports success.
	PartialIgnore PartialPolicy = iota
	// PartialFail reports the incomplete tail as an error, after all complete
	// records have been written.
	PartialFail
)

// String returns the configuration name of p.
func (p PartialPolicy) String() string {
	switch p {
	case PartialIgnore:
		return "ignore"
	case PartialFail:
		return "fail"
	default:
		return fmt.Sprintf("partial(%d)", p)
	}
}

// ParsePartialPolicy converts "ignore" or "fail" (case-insensitive) into a
// PartialPolicy. The empty string yields PartialIgnore.
func ParsePartialPolicy(s string) (PartialPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return PartialIgnore, nil
	case "fail", "error":
		return PartialFail, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPartialPolicy, s)
	}
}

// Options configures Run. The zero value formats in plain notation, ignores
// partial tails and logs nothing.
type Options struct {
	Notation format.Notation
	Partial  PartialPolicy
	Logger   *zerolog.Logger // nil disables logging
}

// Stats summarizes a run.
type Stats struct {
	Records       int64 // Lines written
	TrailingBytes int   // Bytes of a dropped partial record, 0..3
}

// Run formats every record of r as a line on w until the input ends.
//
// Output is buffered and flushed before Run returns, on success and on
// failure, so every line for a complete record preceding an error is
// written. With PartialFail a partial tail yields a *record.PartialRecordError.
func Run(r *record.Reader, w io.Writer, opts Options) (stats Stats, err error) {
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	out := bufio.NewWriter(w)
	defer func() {
		if ferr := out.Flush(); ferr != nil && err == nil {
			err = fmt.Errorf("failed to flush output: %w", ferr)
		}
	}()

	line := make([]byte, 0, format.MaxLen+1)
	for {
		bits, rerr := r.Next()
		if rerr != nil {
			return stats, finish(&stats, rerr, opts.Partial, logger)
		}

		line = format.AppendBits(line[:0], bits, opts.Notation)
		line = append(line, '\n')
		if _, err := out.Write(line); err != nil {
			return stats, fmt.Errorf("failed to write record %d: %w", stats.Records, err)
		}
		stats.Records++
	}
}

// finish maps the reader's terminal error to the result of Run.
func finish(stats *Stats, err error, policy PartialPolicy, logger zerolog.Logger) error {
	if errors.Is(err, io.EOF) {
		logger.Debug().Int64("records", stats.Records).Msg("end of input")
		return nil
	}

	var partial *record.PartialRecordError
	if errors.As(err, &partial) {
		if policy == PartialFail {
			logger.Error().
				Int64("offset", partial.Offset).
				Int("bytes", partial.Got).
				Msg("input ends with a partial record")
			return err
		}
		stats.TrailingBytes = partial.Got
		logger.Info().
			Int64("offset", partial.Offset).
			Int("bytes", partial.Got).
			Int64("records", stats.Records).
			Msg("ignoring partial record at end of input")
		return nil
	}

	return err
}
