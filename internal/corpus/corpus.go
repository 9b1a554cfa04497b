// Package corpus generates deterministic float32 stress corpora for the
// formatter: special values, exact powers of two and ten, log-uniform random
// values, subnormals and values straddling powers of ten.
package corpus

import (
	"math"
	"math/rand/v2"
)

// Notable binary32 constants.
const (
	MaxFloat32         float32 = math.MaxFloat32
	MinNormalFloat32   float32 = 0x1p-126
	MinSubnormal       float32 = math.SmallestNonzeroFloat32
	Epsilon            float32 = 0x1p-23
	minExp2, maxExp2           = -149, 127
	minExp10, maxExp10         = -45, 38
)

// DefaultSeed matches the seed of the reference dataset scripts.
const DefaultSeed = 123456789

// CoreRepeat is how often each special value appears in a corpus.
const CoreRepeat = 64

// SpecialValues returns the fixed set of values every corpus starts with.
func SpecialValues() []float32 {
	negZero := math.Float32frombits(1 << 31)
	return []float32{
		0, negZero,
		1, -1,
		10, -10,
		0.1, -0.1,
		MaxFloat32, -MaxFloat32,
		MinNormalFloat32, -MinNormalFloat32,
		MinSubnormal, -MinSubnormal,
		Epsilon, -Epsilon,
		float32(math.Inf(1)), float32(math.Inf(-1)),
		float32(math.NaN()),
	}
}

// SpecialCore returns SpecialValues with each value repeated repeat times.
func SpecialCore(repeat int) []float32 {
	base := SpecialValues()
	out := make([]float32, 0, len(base)*repeat)
	for _, v := range base {
		for i := 0; i < repeat; i++ {
			out = append(out, v)
		}
	}
	return out
}

// PowersOfTwo cycles through 2^e for e in [-149, 127] with alternating sign.
func PowersOfTwo(n int) []float32 {
	out := make([]float32, 0, max(n, 0))
	span := maxExp2 - minExp2 + 1
	for i := 0; i < n; i++ {
		e := minExp2 + i%span
		out = append(out, float32(math.Ldexp(sign(i), e)))
	}
	return out
}

// PowersOfTen cycles through the float32 nearest to 10^e for e in [-45, 38]
// with alternating sign.
func PowersOfTen(n int) []float32 {
	out := make([]float32, 0, max(n, 0))
	span := maxExp10 - minExp10 + 1
	for i := 0; i < n; i++ {
		e := minExp10 + i%span
		out = append(out, float32(sign(i)*math.Pow10(e)))
	}
	return out
}

// LogSpace draws m × 10^e with m uniform in [1, 10), e uniform in [-45, 38]
// and a random sign, keeping only finite non-zero results.
func LogSpace(rng *rand.Rand, n int) []float32 {
	out := make([]float32, 0, max(n, 0))
	for len(out) < n {
		e := minExp10 + rng.IntN(maxExp10-minExp10+1)
		m := 1 + rng.Float64()*9
		if rng.IntN(2) == 1 {
			m = -m
		}
		f := float32(m * math.Pow10(e))
		if f == 0 || math.IsInf(float64(f), 0) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Subnormals samples n subnormal values evenly over the 23-bit mantissa,
// alternating sign.
func Subnormals(n int) []float32 {
	out := make([]float32, 0, max(n, 0))
	const maxMant = 1<<23 - 1
	step := uint64(1)
	if n > 0 && maxMant/n > 1 {
		step = uint64(maxMant / n)
	}
	for i := 0; i < n; i++ {
		mant := 1 + uint32((uint64(i)*step)%maxMant)
		bits := uint32(i&1)<<31 | mant
		out = append(out, math.Float32frombits(bits))
	}
	return out
}

// NearPowersOfTen returns values within one ulp-scale epsilon of selected
// powers of ten, alternating sign, to stress rounding at digit boundaries.
func NearPowersOfTen(n int) []float32 {
	exps := []int{-45, -38, -30, -20, -10, -1, 0, 1, 10, 20, 30, 38}
	deltas := []float64{-float64(Epsilon), -float64(Epsilon) / 2, float64(Epsilon) / 2, float64(Epsilon)}

	out := make([]float32, 0, max(n, 0))
	for i := 0; len(out) < n; i++ {
		e := exps[i%len(exps)]
		d := deltas[(i/len(exps))%len(deltas)]
		f := float32(sign(i) * math.Pow10(e) * (1 + d))
		if math.IsInf(float64(f), 0) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Build returns a shuffled corpus of exactly n values: the special core
// followed by equal shares of each generator.
func Build(n int, seed uint64) []float32 {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	values := SpecialCore(CoreRepeat)
	if len(values) >= n {
		values = values[:n]
	} else {
		remaining := n - len(values)
		share := remaining / 5
		values = append(values, PowersOfTwo(share)...)
		values = append(values, PowersOfTen(share)...)
		values = append(values, LogSpace(rng, share)...)
		values = append(values, Subnormals(share)...)
		values = append(values, NearPowersOfTen(remaining-4*share)...)
	}

	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}

func sign(i int) float64 {
	if i&1 == 0 {
		return 1
	}
	return -1
}
