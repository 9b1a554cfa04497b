package format

import (
	"math"
	"strconv"

	"github.com/born-ml/floatdump/internal/ryu"
)

const (
	signBit = 1 << 31
	infBits = 0x7f800000
)

// Spellings of the special values.
const (
	NaN    = "nan"
	Inf    = "inf"
	NegInf = "-inf"
)

// MaxLen is an upper bound on the length of any formatted float32 in any
// notation, excluding the line terminator.
const MaxLen = 1 + 2 + 45 + 9

// Float32 formats f in Plain notation.
func Float32(f float32) string {
	return Format(f, Plain)
}

// Format formats f in the given notation.
func Format(f float32, n Notation) string {
	var buf [MaxLen]byte
	return string(AppendFloat32(buf[:0], f, n))
}

// AppendFloat32 appends the shortest round-trip text of f to dst.
func AppendFloat32(dst []byte, f float32, n Notation) []byte {
	return AppendBits(dst, math.Float32bits(f), n)
}

// AppendBits appends the shortest round-trip text of the binary32 value with
// the given bit pattern to dst. It is total over all 2^32 patterns.
func AppendBits(dst []byte, bits uint32, n Notation) []byte {
	abs := bits &^ signBit
	if abs > infBits {
		return append(dst, NaN...)
	}
	if bits&signBit != 0 {
		dst = append(dst, '-')
	}
	switch abs {
	case infBits:
		return append(dst, Inf...)
	case 0:
		if n == Scientific {
			return append(dst, "0e+00"...)
		}
		return append(dst, '0')
	}

	d := ryu.Float32BitsToDecimal(abs)
	var buf [10]byte
	digits := strconv.AppendUint(buf[:0], uint64(d.Mantissa), 10)
	exp := d.SciExponent()

	switch n {
	case Scientific:
		return appendScientific(dst, digits, exp)
	case Fixed:
		return appendFixed(dst, digits, exp)
	default:
		if fixedLen(len(digits), exp) <= scientificLen(len(digits), exp) {
			return appendFixed(dst, digits, exp)
		}
		return appendScientific(dst, digits, exp)
	}
}

// fixedLen is the length of appendFixed's output for n digits whose leading
// digit has weight 10^exp.
func fixedLen(n, exp int) int {
	switch {
	case exp >= n-1:
		return exp + 1
	case exp >= 0:
		return n + 1
	default:
		return n + 1 - exp
	}
}

func scientificLen(n, exp int) int {
	l := n + 2 // digits, 'e', sign
	if n > 1 {
		l++ // '.'
	}
	if exp < 0 {
		exp = -exp
	}
	if exp >= 10 {
		return l + len(strconv.Itoa(exp))
	}
	return l + 2
}

func appendFixed(dst, digits []byte, exp int) []byte {
	n := len(digits)
	switch {
	case exp >= n-1:
		dst = append(dst, digits...)
		return appendZeros(dst, exp-n+1)
	case exp >= 0:
		dst = append(dst, digits[:exp+1]...)
		dst = append(dst, '.')
		return append(dst, digits[exp+1:]...)
	default:
		dst = append(dst, '0', '.')
		dst = appendZeros(dst, -exp-1)
		return append(dst, digits...)
	}
}

func appendScientific(dst, digits []byte, exp int) []byte {
	dst = append(dst, digits[0])
	if len(digits) > 1 {
		dst = append(dst, '.')
		dst = append(dst, digits[1:]...)
	}
	dst = append(dst, 'e')
	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	} else {
		dst = append(dst, '+')
	}
	if exp < 10 {
		dst = append(dst, '0')
	}
	return strconv.AppendInt(dst, int64(exp), 10)
}

func appendZeros(dst []byte, n int) []byte {
	for ; n > 0; n-- {
		dst = append(dst, '0')
	}
	return dst
}
