package ryu

import "math"

// IEEE-754 binary32 layout.
const (
	MantissaBits = 23
	ExponentBits = 8
	Bias         = 127
)

// Decimal is a finite, positive decimal Mantissa × 10^Exponent.
// Mantissa never carries trailing zero digits.
type Decimal struct {
	Mantissa uint32
	Exponent int32
}

// Digits returns the number of decimal digits in d.Mantissa.
func (d Decimal) Digits() int {
	return DecimalLength(d.Mantissa)
}

// SciExponent returns the exponent of d in d.ddd×10^x form.
func (d Decimal) SciExponent() int {
	return int(d.Exponent) + d.Digits() - 1
}

// DecimalLength returns the number of decimal digits of v, with
// DecimalLength(0) == 1.
func DecimalLength(v uint32) int {
	switch {
	case v >= 1000000000:
		return 10
	case v >= 100000000:
		return 9
	case v >= 10000000:
		return 8
	case v >= 1000000:
		return 7
	case v >= 100000:
		return 6
	case v >= 10000:
		return 5
	case v >= 1000:
		return 4
	case v >= 100:
		return 3
	case v >= 10:
		return 2
	default:
		return 1
	}
}

// Float32ToDecimal is Float32BitsToDecimal(math.Float32bits(f)).
func Float32ToDecimal(f float32) Decimal {
	return Float32BitsToDecimal(math.Float32bits(f))
}

// Float32BitsToDecimal returns the shortest decimal that rounds to the
// binary32 value with the given bits. The sign bit is ignored. The value must
// be finite and non-zero; the result for zero, infinity and NaN patterns is
// meaningless.
func Float32BitsToDecimal(bits uint32) Decimal {
	ieeeMantissa := bits & (1<<MantissaBits - 1)
	ieeeExponent := (bits >> MantissaBits) & (1<<ExponentBits - 1)

	// Step 1: decode into m2 × 2^e2. Two extra bits of exponent leave room
	// for the halfway points computed below.
	var e2 int32
	var m2 uint32
	if ieeeExponent == 0 {
		e2 = 1 - Bias - MantissaBits - 2
		m2 = ieeeMantissa
	} else {
		e2 = int32(ieeeExponent) - Bias - MantissaBits - 2
		m2 = 1<<MantissaBits | ieeeMantissa
	}
	acceptBounds := m2&1 == 0

	// Step 2: the interval of valid representations, scaled by 4.
	mv := 4 * m2
	mp := 4*m2 + 2
	var mmShift uint32
	if ieeeMantissa != 0 || ieeeExponent <= 1 {
		mmShift = 1
	}
	mm := 4*m2 - 1 - mmShift

	// Step 3: convert the interval to a decimal power base.
	var (
		vr, vp, vm        uint32
		e10               int32
		vmIsTrailingZeros bool
		vrIsTrailingZeros bool
		lastRemovedDigit  uint32
	)
	if e2 >= 0 {
		q := log10Pow2(e2)
		e10 = int32(q)
		k := pow5InvBitCount + pow5bits(int32(q)) - 1
		i := -e2 + int32(q) + k
		vr = mulPow5InvDivPow2(mv, q, i)
		vp = mulPow5InvDivPow2(mp, q, i)
		vm = mulPow5InvDivPow2(mm, q, i)
		if q != 0 && (vp-1)/10 <= vm/10 {
			// One removed digit is needed even when the loop below does not
			// run; computing it with q-1 keeps the arithmetic in 32 bits.
			l := pow5InvBitCount + pow5bits(int32(q-1)) - 1
			lastRemovedDigit = mulPow5InvDivPow2(mv, q-1, -e2+int32(q)-1+l) % 10
		}
		if q <= 9 {
			// At most one of mp, mv and mm is a multiple of 5.
			switch {
			case mv%5 == 0:
				vrIsTrailingZeros = multipleOfPowerOf5(mv, q)
			case acceptBounds:
				vmIsTrailingZeros = multipleOfPowerOf5(mm, q)
			case multipleOfPowerOf5(mp, q):
				vp--
			}
		}
	} else {
		q := log10Pow5(-e2)
		e10 = int32(q) + e2
		i := -e2 - int32(q)
		k := pow5bits(i) - pow5BitCount
		j := int32(q) - k
		vr = mulPow5DivPow2(mv, uint32(i), j)
		vp = mulPow5DivPow2(mp, uint32(i), j)
		vm = mulPow5DivPow2(mm, uint32(i), j)
		if q != 0 && (vp-1)/10 <= vm/10 {
			j = int32(q) - 1 - (pow5bits(i+1) - pow5BitCount)
			lastRemovedDigit = mulPow5DivPow2(mv, uint32(i+1), j) % 10
		}
		switch {
		case q <= 1:
			// mv = 4*m2 always has at least two trailing zero bits.
			vrIsTrailingZeros = true
			if acceptBounds {
				// mm = mv-1-mmShift has one trailing zero bit iff mmShift == 1.
				vmIsTrailingZeros = mmShift == 1
			} else {
				// mp = mv+2 always has at least one trailing zero bit.
				vp--
			}
		case q < 31:
			vrIsTrailingZeros = multipleOfPowerOf2(mv, q-1)
		}
	}

	// Step 4: find the shortest representation in the interval.
	var removed int32
	var output uint32
	if vmIsTrailingZeros || vrIsTrailingZeros {
		// Rare general case.
		for vp/10 > vm/10 {
			vmIsTrailingZeros = vmIsTrailingZeros && vm%10 == 0
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = vr % 10
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		if vmIsTrailingZeros {
			for vm%10 == 0 {
				vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = vr % 10
				vr /= 10
				vp /= 10
				vm /= 10
				removed++
			}
		}
		if vrIsTrailingZeros && lastRemovedDigit == 5 && vr%2 == 0 {
			// Exactly halfway: round to even.
			lastRemovedDigit = 4
		}
		output = vr
		if (vr == vm && (!acceptBounds || !vmIsTrailingZeros)) || lastRemovedDigit >= 5 {
			output++
		}
	} else {
		for vp/10 > vm/10 {
			lastRemovedDigit = vr % 10
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		output = vr
		if vr == vm || lastRemovedDigit >= 5 {
			output++
		}
	}

	return Decimal{Mantissa: output, Exponent: e10 + removed}
}

// pow5bits returns ceil(log2(5^e)) for e > 0, and 1 for e == 0.
func pow5bits(e int32) int32 {
	return int32((uint32(e)*1217359)>>19) + 1
}

// log10Pow2 returns floor(log10(2^e)) for 0 <= e <= 1650.
func log10Pow2(e int32) uint32 {
	return (uint32(e) * 78913) >> 18
}

// log10Pow5 returns floor(log10(5^e)) for 0 <= e <= 2620.
func log10Pow5(e int32) uint32 {
	return (uint32(e) * 732923) >> 20
}

func pow5Factor(v uint32) uint32 {
	var count uint32
	for v%5 == 0 {
		v /= 5
		count++
	}
	return count
}

func multipleOfPowerOf5(v, p uint32) bool {
	return pow5Factor(v) >= p
}

func multipleOfPowerOf2(v, p uint32) bool {
	return v&(1<<p-1) == 0
}

// mulShift returns (m × factor) >> shift for a 32-bit m, a 64-bit factor and
// shift >= 32.
func mulShift(m uint32, factor uint64, shift int32) uint32 {
	factorLo := factor & math.MaxUint32
	factorHi := factor >> 32
	bits0 := uint64(m) * factorLo
	bits1 := uint64(m) * factorHi
	sum := bits0>>32 + bits1
	return uint32(sum >> uint(shift-32))
}

func mulPow5InvDivPow2(m, q uint32, j int32) uint32 {
	return mulShift(m, pow5InvSplit[q], j)
}

func mulPow5DivPow2(m, i uint32, j int32) uint32 {
	return mulShift(m, pow5Split[i], j)
}
