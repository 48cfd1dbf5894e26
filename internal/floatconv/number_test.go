package floatconv

import "testing"

// TestDecompose проверяет лексическое разложение: мантисса, десятичная
// экспонента, флаг усечения и число прочитанных байт.
func TestDecompose(t *testing.T) {
	cases := []struct {
		in       string
		mantissa uint64
		exponent int64
		many     bool
		consumed int
	}{
		{"0", 0, 0, false, 1},
		{"1", 1, 0, false, 1},
		{"123", 123, 0, false, 3},
		{"1.5", 15, -1, false, 3},
		{".5", 5, -1, false, 2},
		{"5.", 5, 0, false, 2},
		{"1e3", 1, 3, false, 3},
		{"1E+3", 1, 3, false, 4},
		{"1e-3", 1, -3, false, 4},
		{"2.5e-7", 25, -8, false, 6},
		{"1ex", 1, 0, false, 1},
		{"1e+", 1, 0, false, 1},
		{"0.000001", 1, -6, false, 8},
		// ровно 19 цифр — ещё точное представление
		{"9999999999999999999", 9999999999999999999, 0, false, 19},
		// 20 цифр: окно усечено, экспонента компенсирует хвост
		{"99999999999999999999", 9999999999999999999, 1, true, 20},
		{"12345678901234567890123", 1234567890123456789, 4, true, 23},
		{"12345678901234567890123e-5", 1234567890123456789, -1, true, 26},
		// точка внутри окна
		{"1234567890.1234567890123", 1234567890123456789, -9, true, 24},
		// ведущие нули значимости не добавляют
		{"00000000000000000000001", 1, 0, false, 23},
		{"0.00000000000000000000123", 123, -23, false, 25},
		{"1.00000000000000011102230246251565404236316680908203125",
			1000000000000000111, -18, true, 55},
	}
	for _, tc := range cases {
		n, consumed, err := decompose([]byte(tc.in))
		if err != nil {
			t.Errorf("decompose(%q): unexpected error %v", tc.in, err)
			continue
		}
		if n.mantissa != tc.mantissa || n.exponent != tc.exponent ||
			n.manyDigits != tc.many || consumed != tc.consumed {
			t.Errorf("decompose(%q) = {m=%d e=%d many=%v}, n=%d; want {m=%d e=%d many=%v}, n=%d",
				tc.in, n.mantissa, n.exponent, n.manyDigits, consumed,
				tc.mantissa, tc.exponent, tc.many, tc.consumed)
		}
	}
}

func TestDecomposeNoDigits(t *testing.T) {
	for _, in := range []string{"", ".", "e5", "x", ".e5"} {
		if _, _, err := decompose([]byte(in)); err == nil {
			t.Errorf("decompose(%q): expected error", in)
		}
	}
}

// TestDecomposeExponentClamp: гигантская явная экспонента зажимается, не
// переполняясь.
func TestDecomposeExponentClamp(t *testing.T) {
	n, _, err := decompose([]byte("1e99999999999999999999"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.exponent <= 0 || n.exponent > 1<<31 {
		t.Errorf("clamped exponent out of range: %d", n.exponent)
	}
}
