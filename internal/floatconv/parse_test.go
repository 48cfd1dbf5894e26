package floatconv

import (
	"errors"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

// Битовые образцы проверены внешним арбитром с точной арифметикой.
var parse64Cases = []struct {
	in   string
	bits uint64
}{
	{"0", 0x0000000000000000},
	{"-0", 0x8000000000000000},
	{"1", 0x3FF0000000000000},
	{"-1", 0xBFF0000000000000},
	{"0.1", 0x3FB999999999999A},
	{"2.5", 0x4004000000000000},
	{"16777217", 0x4170000010000000},
	{"9007199254740993", 0x4340000000000000},
	{"9007199254740992", 0x4340000000000000},
	{"1e309", 0x7FF0000000000000},
	{"-1e309", 0xFFF0000000000000},
	{"5e-324", 0x0000000000000001},
	{"2.4703282292062327e-324", 0x0000000000000000},
	{"2.4703282292062328e-324", 0x0000000000000001},
	{"2.2250738585072014e-308", 0x0010000000000000},
	{"2.2250738585072011e-308", 0x000FFFFFFFFFFFFF},
	{"2.2250738585072012e-308", 0x0010000000000000},
	{"1.7976931348623157e308", 0x7FEFFFFFFFFFFFFF},
	{"1.7976931348623158e308", 0x7FEFFFFFFFFFFFFF},
	{"1.7976931348623159e308", 0x7FF0000000000000},
	{"0.500000000000000166533453693773481063544750213623046875", 0x3FE0000000000002},
	{"3.141592653589793238462643383279502884197169399375105820974944", 0x400921FB54442D18},
	{"123456789012345678901234567890", 0x45F8EE90FF6C373E},
	{"1e-400", 0x0000000000000000},
	{"1e400", 0x7FF0000000000000},
	{"1.23e45", 0x494B93DA907BD0A4},
	{"0.000000000000000000000000000000000000001234", 0x37DADFC7A71DD86B},
	{"18014398509481993", 0x4350000000000002},
	{"36028797018963977", 0x4360000000000001},
	{"9999999999999999999999999999999999999999999999999999999999999e-62", 0x3FB999999999999A},
	{"0.00000000000000000000000000000000000000000000000000000000000001e62", 0x3FF0000000000000},
	{"1090544144181609348835077142190", 0x462B8779F2474DFB},
	{"0.2316419", 0x3FCDA6711871100E},
	{"7.2057594037927933e16", 0x4370000000000000},
}

var parse32Cases = []struct {
	in   string
	bits uint32
}{
	{"0", 0x00000000},
	{"-0", 0x80000000},
	{"1", 0x3F800000},
	{"0.1", 0x3DCCCCCD},
	{"16777216", 0x4B800000},
	{"16777217", 0x4B800000},
	{"16777218", 0x4B800001},
	{"33554435", 0x4C000001},
	{"2.5", 0x40200000},
	{"1e39", 0x7F800000},
	{"-1e39", 0xFF800000},
	{"1e-46", 0x00000000},
	{"1.1754944e-38", 0x00800000},
	{"1.1754942e-38", 0x007FFFFF},
	{"0.000000000000000000000000000000000000011754943508222875", 0x00800000},
	{"1.4e-45", 0x00000001},
	{"7.0064923216240853e-46", 0x00000000},
	{"7.0064923216240854e-46", 0x00000001},
	{"3.4028235e38", 0x7F7FFFFF},
	{"3.4028236e38", 0x7F800000},
	{"4.7019774e-38", 0x01800000},
}

func TestParseFloat64Bits(t *testing.T) {
	for _, tc := range parse64Cases {
		v, err := ParseFloat64(tc.in)
		if err != nil {
			t.Errorf("ParseFloat64(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got := math.Float64bits(v); got != tc.bits {
			t.Errorf("ParseFloat64(%q) = 0x%016X, want 0x%016X", tc.in, got, tc.bits)
		}
	}
}

func TestParseFloat32Bits(t *testing.T) {
	for _, tc := range parse32Cases {
		v, err := ParseFloat32(tc.in)
		if err != nil {
			t.Errorf("ParseFloat32(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got := math.Float32bits(v); got != tc.bits {
			t.Errorf("ParseFloat32(%q) = 0x%08X, want 0x%08X", tc.in, got, tc.bits)
		}
	}
}

// TestSpecials проверяет inf/infinity/nan во всех регистрах и со знаками.
func TestSpecials(t *testing.T) {
	infs := []string{"inf", "INF", "Inf", "infinity", "INFINITY", "Infinity"}
	for _, s := range infs {
		v, err := ParseFloat64(s)
		if err != nil || !math.IsInf(v, 1) {
			t.Errorf("ParseFloat64(%q) = %v, %v; want +Inf", s, v, err)
		}
		v, err = ParseFloat64("-" + s)
		if err != nil || !math.IsInf(v, -1) {
			t.Errorf("ParseFloat64(-%q) = %v, %v; want -Inf", s, v, err)
		}
	}
	for _, s := range []string{"nan", "NaN", "NAN", "+nan", "-nan"} {
		v, err := ParseFloat64(s)
		if err != nil || !math.IsNaN(v) {
			t.Errorf("ParseFloat64(%q) = %v, %v; want NaN", s, v, err)
		}
	}
	if v, _ := ParseFloat64("nan"); math.Float64bits(v) != quietNaN64 {
		t.Errorf("nan payload = 0x%016X, want 0x%016X", math.Float64bits(v), uint64(quietNaN64))
	}
	if v, _ := ParseFloat32("nan"); math.Float32bits(v) != quietNaN32 {
		t.Errorf("nan payload = 0x%08X, want 0x%08X", math.Float32bits(v), uint32(quietNaN32))
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrConversion},
		{"+", ErrUnexpectedEnd},
		{"-", ErrUnexpectedEnd},
		{".", errNoDigits},
		{"e5", errNoDigits}, // 'e' не открывает числа
		{"abc", errNoDigits},
		{"in", errBadSpecial},
		{"na", errBadSpecial},
		{"1e", ErrUnexpectedEnd},
		{"1e+", ErrUnexpectedEnd},
		{"1e-", ErrUnexpectedEnd},
		{"1.5x", ErrConversion},
		{"1..5", ErrConversion},
		{"infinit", ErrConversion},
		{"0x", errNoHexDigits},
		{"0x.p1", errNoHexDigits},
		{"0x1", ErrUnexpectedEnd},
		{"0x1.8", ErrUnexpectedEnd},
		{"0x1q2", ErrConversion},
		{"0x1p", ErrUnexpectedEnd},
		{"0x1p+", ErrUnexpectedEnd},
		{"0x1pz", ErrConversion},
		{"0x1p99999999999", ErrRange},
	}
	for _, tc := range cases {
		_, err := ParseFloat64(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("ParseFloat64(%q) error = %v, want %v", tc.in, err, tc.want)
		}
	}
}

func TestParsePrefix(t *testing.T) {
	cases := []struct {
		in       string
		value    float64
		consumed int
	}{
		{"1.5abc", 1.5, 3},
		{"1e5x", 1e5, 3},
		{"1ex", 1, 1},
		{"1e+x", 1, 1},
		{"-2.5, rest", -2.5, 4},
		{"infinity and beyond", math.Inf(1), 8},
		{"infernal", math.Inf(1), 3},
		{"3]", 3, 1},
		{"+.5;", 0.5, 3},
		{"7.", 7, 2},
	}
	for _, tc := range cases {
		v, n, err := ParseFloat64Prefix(tc.in)
		if err != nil {
			t.Errorf("ParseFloat64Prefix(%q): unexpected error %v", tc.in, err)
			continue
		}
		if v != tc.value || n != tc.consumed {
			t.Errorf("ParseFloat64Prefix(%q) = (%v, %d), want (%v, %d)",
				tc.in, v, n, tc.value, tc.consumed)
		}
	}
}

// TestStrictRequiresFullConsumption: строгий режим падает ровно тогда, когда
// частичный оставляет хвост.
func TestStrictRequiresFullConsumption(t *testing.T) {
	inputs := []string{"1", "1.5", "1.5 ", " 1.5", "2e7;", "inf", "infx", "0x1p3", "0x1p3h"}
	for _, s := range inputs {
		_, n, perr := ParseFloat64Prefix(s)
		_, serr := ParseFloat64(s)
		tail := perr == nil && n != len(s)
		if tail != (serr != nil && perr == nil) {
			t.Errorf("%q: prefix (n=%d, err=%v) inconsistent with strict err %v", s, n, perr, serr)
		}
	}
}

// TestAgainstStrconv сверяет разбор с эталоном стандартной библиотеки на
// детерминированном псевдослучайном корпусе.
func TestAgainstStrconv(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	digits := "0123456789"
	for i := 0; i < 20000; i++ {
		var sb strings.Builder
		if rng.Intn(2) == 0 {
			sb.WriteByte('-')
		}
		n := 1 + rng.Intn(30)
		for j := 0; j < n; j++ {
			sb.WriteByte(digits[rng.Intn(10)])
		}
		if rng.Intn(2) == 0 {
			sb.WriteByte('.')
			n = 1 + rng.Intn(30)
			for j := 0; j < n; j++ {
				sb.WriteByte(digits[rng.Intn(10)])
			}
		}
		if rng.Intn(2) == 0 {
			sb.WriteByte('e')
			sb.WriteString(strconv.Itoa(rng.Intn(700) - 350))
		}
		s := sb.String()

		want, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			t.Fatalf("reference rejected %q: %v", s, err)
		}
		got, err := ParseFloat64(s)
		if err != nil {
			t.Fatalf("ParseFloat64(%q): %v", s, err)
		}
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Fatalf("ParseFloat64(%q) = 0x%016X, want 0x%016X",
				s, math.Float64bits(got), math.Float64bits(want))
		}

		want32, err := strconv.ParseFloat(s, 32)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			t.Fatalf("reference rejected %q: %v", s, err)
		}
		got32, err := ParseFloat32(s)
		if err != nil {
			t.Fatalf("ParseFloat32(%q): %v", s, err)
		}
		if math.Float32bits(got32) != math.Float32bits(float32(want32)) {
			t.Fatalf("ParseFloat32(%q) = 0x%08X, want 0x%08X",
				s, math.Float32bits(got32), math.Float32bits(float32(want32)))
		}
	}
}

func TestSignSymmetry(t *testing.T) {
	for _, tc := range parse64Cases {
		if strings.HasPrefix(tc.in, "-") {
			continue
		}
		pos, err1 := ParseFloat64(tc.in)
		neg, err2 := ParseFloat64("-" + tc.in)
		if err1 != nil || err2 != nil {
			t.Fatalf("%q: errors %v, %v", tc.in, err1, err2)
		}
		if math.Float64bits(neg) != math.Float64bits(pos)^(1<<63) {
			t.Errorf("sign symmetry broken for %q: +0x%016X -0x%016X",
				tc.in, math.Float64bits(pos), math.Float64bits(neg))
		}
	}
}

// TestIdempotence: напечатанное с запасом точности значение разбирается в те
// же биты.
func TestIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 5000; i++ {
		bits := rng.Uint64()
		v := math.Float64frombits(bits)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		s := strconv.FormatFloat(v, 'g', 17, 64)
		got, err := ParseFloat64(s)
		if err != nil {
			t.Fatalf("ParseFloat64(%q): %v", s, err)
		}
		if math.Float64bits(got) != bits {
			t.Fatalf("round trip %q: got 0x%016X, want 0x%016X", s, math.Float64bits(got), bits)
		}
	}
	for i := 0; i < 5000; i++ {
		bits := uint32(rng.Uint64())
		v := math.Float32frombits(bits)
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			continue
		}
		s := strconv.FormatFloat(float64(v), 'g', 9, 32)
		got, err := ParseFloat32(s)
		if err != nil {
			t.Fatalf("ParseFloat32(%q): %v", s, err)
		}
		if math.Float32bits(got) != bits {
			t.Fatalf("round trip %q: got 0x%08X, want 0x%08X", s, math.Float32bits(got), bits)
		}
	}
}

// TestSubnormals гоняет весь субнормальный диапазон double по краям и
// псевдослучайной выборке.
func TestSubnormals(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	check := func(bits uint64) {
		v := math.Float64frombits(bits)
		s := strconv.FormatFloat(v, 'e', 20, 64)
		got, err := ParseFloat64(s)
		if err != nil {
			t.Fatalf("ParseFloat64(%q): %v", s, err)
		}
		if math.Float64bits(got) != bits {
			t.Fatalf("subnormal %q: got 0x%016X, want 0x%016X", s, math.Float64bits(got), bits)
		}
	}
	for bits := uint64(1); bits < 64; bits++ {
		check(bits)
	}
	for i := 0; i < 2000; i++ {
		check(1 + rng.Uint64()%((1<<52)-1))
	}
	check(1<<52 - 1) // largest subnormal
}

func TestParseHexFloats(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0x1p0", 1},
		{"0x1p1", 2},
		{"0x1.8p1", 3},
		{"0x10p-4", 1},
		{"0xA.8p0", 10.5},
		{"0x0p0", 0},
		{"0X1P+4", 16},
		{"0x1.921fb54442d18p+1", math.Float64frombits(0x400921FB54442D18)},
		{"-0x1.921fb54442d18p+1", math.Float64frombits(0xC00921FB54442D18)},
		{"0x1p1024", math.Inf(1)},
		{"0x1p-1074", math.Float64frombits(1)},
	}
	for _, tc := range cases {
		got, err := ParseFloat64(tc.in)
		if err != nil {
			t.Errorf("ParseFloat64(%q): unexpected error %v", tc.in, err)
			continue
		}
		if math.Float64bits(got) != math.Float64bits(tc.want) {
			t.Errorf("ParseFloat64(%q) = %v (0x%016X), want %v", tc.in, got, math.Float64bits(got), tc.want)
		}
	}
	if v, err := ParseFloat32("0x1.8p1"); err != nil || v != 3 {
		t.Errorf("ParseFloat32(0x1.8p1) = %v, %v; want 3", v, err)
	}
}
