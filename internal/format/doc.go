// Package format renders float32 values as shortest round-trip decimal text.
//
// Digits come from package ryu; this package adds the sign, the decimal point
// or exponent, and the spelling of special values:
//
//	NaN (any payload, any sign)  nan
//	+Inf, -Inf                   inf, -inf
//	+0, -0                       0, -0
//
// In Plain notation the output matches what a C++ std::to_chars call without
// a format argument produces, for example 1, 0.1, 1e+20, 1e-07 and 3.4028235e+38.
// The one difference is that large integers chosen for fixed notation are
// padded with zeros after the shortest digits (123456790) rather than printed
// as their exact binary value (123456792), so the digit count stays minimal.
//
// Every output parses back, with strconv.ParseFloat(s, 32), to the original
// bit pattern (any NaN for NaN inputs).
package format
