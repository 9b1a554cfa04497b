package format

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// significantDigits counts the digits of s excluding sign, exponent, leading
// zeros and trailing zeros.
func significantDigits(s string) int {
	s = strings.TrimPrefix(s, "-")
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		s = s[:i]
	}
	s = strings.Replace(s, ".", "", 1)
	s = strings.TrimLeft(s, "0")
	s = strings.TrimRight(s, "0")
	if s == "" {
		return 1
	}
	return len(s)
}

func requireRoundTrip(t *testing.T, bits uint32, s string) {
	t.Helper()
	v, err := strconv.ParseFloat(s, 32)
	require.NoError(t, err, "bits %#010x: %q", bits, s)
	if math.IsNaN(float64(math.Float32frombits(bits))) {
		require.True(t, math.IsNaN(v), "bits %#010x: %q", bits, s)
		return
	}
	require.Equal(t, bits, math.Float32bits(float32(v)), "bits %#010x: %q", bits, s)
}

func TestFloat32_Plain(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{1, "1"},
		{0.1, "0.1"},
		{0.3, "0.3"},
		{0.5, "0.5"},
		{-2.5, "-2.5"},
		{100, "100"},
		{10000, "10000"},
		{65504, "65504"},
		{1234567, "1234567"},
		{12345678, "12345678"},
		{16777216, "16777216"},
		{123456789, "123456790"},
		{1e5, "1e+05"},
		{1e6, "1e+06"},
		{1e7, "1e+07"},
		{1e9, "1e+09"},
		{1e10, "1e+10"},
		{1e15, "1e+15"},
		{1e20, "1e+20"},
		{0.001, "0.001"},
		{0.0001, "1e-04"},
		{1e-5, "1e-05"},
		{1.5e-5, "1.5e-05"},
		{1e-7, "1e-07"},
		{123.456, "123.456"},
		{3.1415927, "3.1415927"},
		{math.MaxFloat32, "3.4028235e+38"},
		{math.SmallestNonzeroFloat32, "1e-45"},
		{1.17549435e-38, "1.1754944e-38"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Float32(tt.in))
		})
	}
}

func TestFloat32_SpecialValues(t *testing.T) {
	negZero := math.Float32frombits(signBit)

	assert.Equal(t, "0", Float32(0))
	assert.Equal(t, "-0", Float32(negZero))
	assert.Equal(t, "inf", Float32(float32(math.Inf(1))))
	assert.Equal(t, "-inf", Float32(float32(math.Inf(-1))))
	assert.Equal(t, "nan", Float32(float32(math.NaN())))

	// Every NaN payload and sign maps to the canonical spelling.
	for _, bits := range []uint32{0x7f800001, 0x7fc00000, 0x7fffffff, 0xff800001, 0xffc00001, 0xffffffff} {
		for _, n := range []Notation{Plain, Scientific, Fixed} {
			assert.Equal(t, NaN, string(AppendBits(nil, bits, n)), "bits %#010x %v", bits, n)
		}
	}
}

func TestFloat32_SignedZeroDistinct(t *testing.T) {
	pos := Float32(0)
	neg := Float32(math.Float32frombits(signBit))
	require.NotEqual(t, pos, neg)
	assert.False(t, strings.HasPrefix(pos, "-"))
	assert.True(t, strings.HasPrefix(neg, "-"))
	requireRoundTrip(t, 0, pos)
	requireRoundTrip(t, signBit, neg)
}

func TestFormat_Scientific(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0e+00"},
		{1, "1e+00"},
		{0.1, "1e-01"},
		{-123.456, "-1.23456e+02"},
		{1e20, "1e+20"},
		{math.MaxFloat32, "3.4028235e+38"},
		{math.SmallestNonzeroFloat32, "1e-45"},
		{123456789, "1.2345679e+08"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in, Scientific))
	}
}

func TestFormat_Fixed(t *testing.T) {
	tests := []struct {
		in   float32
		want string
	}{
		{0, "0"},
		{1, "1"},
		{1e-7, "0.0000001"},
		{1.5e-5, "0.000015"},
		{-123.456, "-123.456"},
		{1e20, "100000000000000000000"},
		{123456789, "123456790"},
		{math.SmallestNonzeroFloat32, "0." + strings.Repeat("0", 44) + "1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in, Fixed))
	}
}

func TestAppendFloat32_Appends(t *testing.T) {
	dst := []byte("x=")
	dst = AppendFloat32(dst, 0.1, Plain)
	dst = append(dst, '\n')
	assert.Equal(t, "x=0.1\n", string(dst))
}

func TestFormat_MaxLen(t *testing.T) {
	// The longest outputs are fixed-notation subnormals with many digits.
	for _, bits := range []uint32{0x807fffff, 0x80000001, 0x800fffff, 0xff7fffff} {
		for _, n := range []Notation{Plain, Scientific, Fixed} {
			assert.LessOrEqual(t, len(AppendBits(nil, bits, n)), MaxLen, "bits %#010x %v", bits, n)
		}
	}
}

// TestAppendBits_Sweep checks the round-trip and shortest-length laws for all
// notations over a strided sweep of the full 32-bit space plus random samples.
func TestAppendBits_Sweep(t *testing.T) {
	stride := uint32(4099)
	if testing.Short() {
		stride = 65537
	}
	check := func(bits uint32) {
		want := 1
		if abs := bits &^ signBit; abs != 0 && abs < infBits {
			std := strconv.FormatFloat(math.Abs(float64(math.Float32frombits(bits))), 'e', -1, 32)
			want = significantDigits(std)
		}
		for _, n := range []Notation{Plain, Scientific, Fixed} {
			s := string(AppendBits(nil, bits, n))
			requireRoundTrip(t, bits, s)
			if abs := bits &^ signBit; abs < infBits {
				require.Equal(t, want, significantDigits(s), "bits %#010x %v: %q", bits, n, s)
			}
		}
	}

	for bits := uint64(0); bits <= math.MaxUint32; bits += uint64(stride) {
		check(uint32(bits))
	}
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 50000; i++ {
		check(rng.Uint32())
	}
}

func TestPlainIsShorterOrEqual(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 20000; i++ {
		bits := rng.Uint32()
		plain := AppendBits(nil, bits, Plain)
		assert.LessOrEqual(t, len(plain), len(AppendBits(nil, bits, Scientific)))
		assert.LessOrEqual(t, len(plain), len(AppendBits(nil, bits, Fixed)))
	}
}

func BenchmarkAppendFloat32(b *testing.B) {
	values := []float32{1, 0.1, 3.1415927, math.MaxFloat32, math.SmallestNonzeroFloat32, 123.456}
	buf := make([]byte, 0, MaxLen)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = AppendFloat32(buf[:0], values[i%len(values)], Plain)
	}
}
