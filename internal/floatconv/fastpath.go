package floatconv

import "math/bits"

// Exactly representable powers of ten per target.
var float64Pow10 = [23]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
	1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

var float32Pow10 = [11]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

var uint64Pow10 = [16]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000,
}

// fastPathEligible проверяет общие предусловия: обе стороны умножения должны
// быть точно представимы в целевом типе.
func fastPathEligible(n number, fs *floatSpec) bool {
	return !n.manyDigits &&
		n.mantissa <= fs.maxMantissaFastPath &&
		fs.minExponentFastPath <= n.exponent &&
		n.exponent <= fs.maxExponentFastPathDisguised
}

// disguisedMantissa folds excess exponent into the mantissa for the
// "disguised" fast path. ok is false when the folded mantissa no longer fits.
func disguisedMantissa(n number, fs *floatSpec) (uint64, bool) {
	shift := n.exponent - fs.maxExponentFastPath
	hi, lo := bits.Mul64(n.mantissa, uint64Pow10[shift])
	if hi != 0 || lo > fs.maxMantissaFastPath {
		return 0, false
	}
	return lo, true
}

// fastPath64 resolves a short literal with one native multiplication or
// division. IEEE-754 guarantees correct rounding of a single operation on
// exactly representable operands.
func fastPath64(n number) (float64, bool) {
	fs := &float64Spec
	if !fastPathEligible(n, fs) {
		return 0, false
	}
	if n.exponent <= fs.maxExponentFastPath {
		value := float64(n.mantissa)
		if n.exponent < 0 {
			return value / float64Pow10[-n.exponent], true
		}
		return value * float64Pow10[n.exponent], true
	}
	m, ok := disguisedMantissa(n, fs)
	if !ok {
		return 0, false
	}
	return float64(m) * float64Pow10[fs.maxExponentFastPath], true
}

// fastPath32 is the single-precision twin of fastPath64.
func fastPath32(n number) (float32, bool) {
	fs := &float32Spec
	if !fastPathEligible(n, fs) {
		return 0, false
	}
	if n.exponent <= fs.maxExponentFastPath {
		value := float32(n.mantissa)
		if n.exponent < 0 {
			return value / float32Pow10[-n.exponent], true
		}
		return value * float32Pow10[n.exponent], true
	}
	m, ok := disguisedMantissa(n, fs)
	if !ok {
		return 0, false
	}
	return float32(m) * float32Pow10[fs.maxExponentFastPath], true
}
