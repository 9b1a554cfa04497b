// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package floatfmt formats float32 values as their shortest round-trip
// decimal text.
//
// The output of Format parses back, with strconv.ParseFloat(s, 32), to the
// exact same bit pattern, and no decimal with fewer significant digits does.
// Special values are spelled nan, inf, -inf, 0 and -0.
//
// Example usage:
//
//	fmt.Println(floatfmt.Format(0.1))                          // 0.1
//	fmt.Println(floatfmt.Format(1e20))                         // 1e+20
//	fmt.Println(floatfmt.FormatNotation(1e20, floatfmt.Fixed)) // 100000000000000000000
//
//	buf := floatfmt.Append(nil, 3.1415927, floatfmt.Plain)
package floatfmt
