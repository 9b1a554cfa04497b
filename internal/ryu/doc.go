// Package ryu computes shortest round-trip decimal representations of
// IEEE-754 single-precision values.
//
// The implementation follows Ryū (Ulf Adams, PLDI 2018) specialized for
// binary32. For a finite, non-zero input it finds the decimal m × 10^e with
// the fewest digits inside the rounding interval of the value, preferring the
// candidate closest to the exact binary value and breaking exact ties towards
// an even last digit.
//
// All arithmetic is done in 32 and 64 bit integers using two precomputed
// tables of 5^i and 5^-i multipliers, so the cost depends only on the number
// of digits produced, never on the magnitude of the input.
//
// Formatting of digits into text (signs, decimal point, exponent) and the
// special values NaN, ±Inf and ±0 are handled by package format.
package ryu
