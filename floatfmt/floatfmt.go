// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package floatfmt

import (
	"github.com/born-ml/floatdump/internal/format"
	"github.com/born-ml/floatdump/internal/ryu"
)

// Notation selects how digits are laid out.
type Notation = format.Notation

// Supported notations.
const (
	Plain      Notation = format.Plain      // Shorter of fixed and scientific
	Scientific Notation = format.Scientific // d.ddde±XX
	Fixed      Notation = format.Fixed      // Positional, never an exponent
)

// Decimal is a shortest decimal Mantissa × 10^Exponent.
type Decimal = ryu.Decimal

// MaxLen bounds the length of any formatted value.
const MaxLen = format.MaxLen

// Format returns the shortest round-trip text of f in Plain notation.
func Format(f float32) string {
	return format.Float32(f)
}

// FormatNotation returns the shortest round-trip text of f in notation n.
func FormatNotation(f float32, n Notation) string {
	return format.Format(f, n)
}

// Append appends the shortest round-trip text of f to dst.
func Append(dst []byte, f float32, n Notation) []byte {
	return format.AppendFloat32(dst, f, n)
}

// AppendBits is Append for a raw binary32 bit pattern.
func AppendBits(dst []byte, bits uint32, n Notation) []byte {
	return format.AppendBits(dst, bits, n)
}

// Shortest returns the shortest decimal digits and exponent of a finite,
// non-zero f. The sign of f is ignored.
func Shortest(f float32) Decimal {
	return ryu.Float32ToDecimal(f)
}

// ParseNotation resolves "plain", "scientific" or "fixed".
func ParseNotation(s string) (Notation, error) {
	return format.ParseNotation(s)
}
