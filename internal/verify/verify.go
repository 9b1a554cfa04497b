// Package verify checks the formatter against the round-trip, shortest-length
// and sign-preservation laws over ranges of binary32 bit patterns.
package verify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/born-ml/floatdump/internal/format"
	"github.com/born-ml/floatdump/internal/parallel"
)

// Violations.
var (
	ErrRoundTrip   = errors.New("does not round-trip")
	ErrNotShortest = errors.New("is not the shortest representation")
	ErrSign        = errors.New("does not preserve the sign")
)

// Failure describes a bit pattern whose text breaks one of the laws.
type Failure struct {
	Bits uint32
	Text string
	Err  error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%#010x: %q %v", f.Bits, f.Text, f.Err)
}

// Unwrap returns the violated law.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Report summarizes a successful sweep.
type Report struct {
	From, To uint32 // Inclusive bounds
	Checked  uint64
	Elapsed  time.Duration
}

// Check formats bits in notation n, using buf as scratch space, and returns
// a *Failure if any law is broken. It returns the scratch buffer for reuse.
func Check(bits uint32, n format.Notation, buf []byte) ([]byte, error) {
	buf = format.AppendBits(buf[:0], bits, n)
	text := string(buf)

	f := math.Float32frombits(bits)
	parsed, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return buf, &Failure{Bits: bits, Text: text, Err: fmt.Errorf("%w: %w", ErrRoundTrip, err)}
	}
	if math.IsNaN(float64(f)) {
		if !math.IsNaN(parsed) {
			return buf, &Failure{Bits: bits, Text: text, Err: ErrRoundTrip}
		}
		return buf, nil
	}
	if math.Float32bits(float32(parsed)) != bits {
		return buf, &Failure{Bits: bits, Text: text, Err: ErrRoundTrip}
	}

	if strings.HasPrefix(text, "-") != math.Signbit(float64(f)) {
		return buf, &Failure{Bits: bits, Text: text, Err: ErrSign}
	}

	if !math.IsInf(float64(f), 0) {
		want := SignificantDigits(strconv.FormatFloat(float64(f), 'e', -1, 32))
		if got := SignificantDigits(text); got != want {
			return buf, &Failure{
				Bits: bits,
				Text: text,
				Err:  fmt.Errorf("%w: %d digits, want %d", ErrNotShortest, got, want),
			}
		}
	}
	return buf, nil
}

// SignificantDigits counts the significant digits of a decimal string,
// ignoring sign, exponent and leading or trailing zeros. Zero has one.
func SignificantDigits(s string) int {
	s = strings.TrimPrefix(s, "-")
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	s = strings.Replace(s, ".", "", 1)
	s = strings.Trim(s, "0")
	if s == "" {
		return 1
	}
	return len(s)
}

// Range checks every bit pattern in [from, to] in parallel and stops at the
// first failure.
func Range(ctx context.Context, from, to uint32, n format.Notation, cfg parallel.Config) (Report, error) {
	if to < from {
		return Report{}, fmt.Errorf("invalid range [%#010x, %#010x]", from, to)
	}

	start := time.Now()
	var checked atomic.Uint64
	err := parallel.ForRange(ctx, uint64(from), uint64(to)+1, func(ctx context.Context, lo, hi uint64) error {
		buf := make([]byte, 0, format.MaxLen)
		var err error
		for b := lo; b < hi; b++ {
			if b&0xffff == 0 && ctx.Err() != nil {
				return ctx.Err()
			}
			if buf, err = Check(uint32(b), n, buf); err != nil {
				return err
			}
		}
		checked.Add(hi - lo)
		return nil
	}, cfg)

	return Report{
		From:    from,
		To:      to,
		Checked: checked.Load(),
		Elapsed: time.Since(start),
	}, err
}

// Values checks each value and returns the failures found, in no particular
// order.
func Values(values []float32, n format.Notation, cfg parallel.Config) []*Failure {
	results := make([]*Failure, len(values))
	parallel.For(len(values), func(i int) {
		var buf [format.MaxLen]byte
		if _, err := Check(math.Float32bits(values[i]), n, buf[:0]); err != nil {
			var failure *Failure
			if errors.As(err, &failure) {
				results[i] = failure
			}
		}
	}, cfg)

	var failures []*Failure
	for _, f := range results {
		if f != nil {
			failures = append(failures, f)
		}
	}
	return failures
}
